// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/go-fea/gofea2d/internal/mesh"
)

func square() *mesh.Mesh {
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	conn := [][3]int{{0, 1, 2}, {0, 2, 3}}
	m, _ := mesh.New(coords, conn)
	return m
}

func Test_bc01(tst *testing.T) {

	chk.PrintTitle("Test bc01: left edge clamped, right edge loaded")

	m := square()
	rules := []Rule{
		{XMin: 0, XMax: 0, YMin: -1e30, YMax: 1e30, HasUx: true, HasUy: true, Ux: 0, Uy: 0},
		{XMin: 1, XMax: 1, YMin: -1e30, YMax: 1e30, HasFx: true, HasFy: true, Fx: 10, Fy: 0},
	}
	if err := Bind(m, rules); err != nil {
		tst.Fatal(err)
	}

	// nodes 0,3 are on x=0: both displacement DOFs known
	if !m.Nodes[0].Dofs[0].UKnown || !m.Nodes[0].Dofs[1].UKnown {
		tst.Errorf("node 0 should have both displacement DOFs prescribed")
	}
	// nodes 1,2 are on x=1: both force DOFs known
	if !m.Nodes[1].Dofs[0].FKnown || m.Nodes[1].Dofs[0].FValue != 10 {
		tst.Errorf("node 1 should have Fx=10 prescribed")
	}
	if CountKnownDisplacements(m) != 4 {
		tst.Errorf("expected 4 known-displacement dofs, got %d", CountKnownDisplacements(m))
	}
}

func Test_bc02(tst *testing.T) {

	chk.PrintTitle("Test bc02: later rule overrides earlier rule field-by-field")

	m := square()
	rules := []Rule{
		Unbounded(), // matches every node but sets no targets, so Bind's own Fx=Fy=0 default stays
		{XMin: 0, XMax: 0, YMin: -1e30, YMax: 1e30, HasUx: true, Ux: 5}, // switch the x-DOF to Ux=5 at x=0, leave the y-DOF
	}
	if err := Bind(m, rules); err != nil {
		tst.Fatal(err)
	}
	if !m.Nodes[0].Dofs[0].UKnown || m.Nodes[0].Dofs[0].UValue != 5 {
		tst.Errorf("node 0 ux should be overridden to 5")
	}
	if !m.Nodes[0].Dofs[1].FKnown {
		tst.Errorf("node 0 uy should remain force-known (untouched by the override rule)")
	}
}

func Test_bc03(tst *testing.T) {

	chk.PrintTitle("Test bc03: a node touched by no rule defaults to free (Fknown=0)")

	m := square()
	if err := Bind(m, nil); err != nil {
		tst.Fatal(err)
	}
	for _, n := range m.Nodes {
		for axis, d := range n.Dofs {
			if !d.FKnown || d.FValue != 0 {
				tst.Errorf("node %d axis %d should default to Fknown=0", n.Id, axis)
			}
		}
	}
}
