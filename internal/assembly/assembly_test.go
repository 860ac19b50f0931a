// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/go-fea/gofea2d/internal/material"
	"github.com/go-fea/gofea2d/internal/mesh"
)

func unitSquare() *mesh.Mesh {
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	conn := [][3]int{{0, 1, 2}, {0, 2, 3}}
	m, _ := mesh.New(coords, conn)
	return m
}

func Test_assembly01(tst *testing.T) {

	chk.PrintTitle("Test assembly01: global K is symmetric for a two-element mesh")

	m := unitSquare()
	mat := material.Elastic{E: 1000.0, Nu: 0.25, T: 1.0}
	sys, kernels, err := FromMesh(m, mat)
	if err != nil {
		tst.Fatal(err)
	}
	if len(kernels) != 2 {
		tst.Errorf("expected 2 kernels, got %d", len(kernels))
	}
	if err := sys.CheckSymmetric(1e-9); err != nil {
		tst.Errorf("K should be symmetric: %v", err)
	}
}

func Test_assembly02(tst *testing.T) {

	chk.PrintTitle("Test assembly02: node relabeling does not change K's entries, only their layout")

	mat := material.Elastic{E: 1000.0, Nu: 0.25, T: 1.0}

	coordsA := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	connA := [][3]int{{0, 1, 2}, {0, 2, 3}}
	mA, _ := mesh.New(coordsA, connA)
	sysA, _, err := FromMesh(mA, mat)
	if err != nil {
		tst.Fatal(err)
	}

	// relabel: swap node 0 and node 3
	coordsB := [][2]float64{{0, 1}, {1, 0}, {1, 1}, {0, 0}}
	connB := [][3]int{{3, 1, 2}, {3, 2, 0}}
	mB, _ := mesh.New(coordsB, connB)
	sysB, _, err := FromMesh(mB, mat)
	if err != nil {
		tst.Fatal(err)
	}

	traceA, traceB := 0.0, 0.0
	for i := 0; i < sysA.NDof; i++ {
		traceA += sysA.K[i][i]
		traceB += sysB.K[i][i]
	}
	chk.Scalar(tst, "trace(K) invariant under relabeling", 1e-8, traceA, traceB)

	// node i of mesh A is node perm[i] of mesh B
	perm := []int{3, 1, 2, 0}
	for i := 0; i < sysA.NDof; i++ {
		for j := 0; j < sysA.NDof; j++ {
			bi := mesh.DofEq(perm[i/2], i%2)
			bj := mesh.DofEq(perm[j/2], j%2)
			chk.Scalar(tst, "K entry invariant under relabeling", 1e-8, sysB.K[bi][bj], sysA.K[i][j])
		}
	}
}

func Test_assembly03(tst *testing.T) {

	chk.PrintTitle("Test assembly03: degenerate element surfaces as an error from FromMesh")

	coords := [][2]float64{{0, 0}, {1, 0}, {2, 0}}
	conn := [][3]int{{0, 1, 2}} // collinear
	m, _ := mesh.New(coords, conn)

	mat := material.Elastic{E: 1000.0, Nu: 0.25, T: 1.0}
	_, _, err := FromMesh(m, mat)
	if err == nil {
		tst.Errorf("expected a degenerate-element error")
	}
}

func Test_assembly04(tst *testing.T) {

	chk.PrintTitle("Test assembly04: invalid material surfaces as an error from FromMesh")

	m := unitSquare()
	mat := material.Elastic{E: -1, Nu: 0.25, T: 1.0}
	_, _, err := FromMesh(m, mat)
	if err == nil {
		tst.Errorf("expected an invalid-material error")
	}
}
