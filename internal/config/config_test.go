// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_config01(tst *testing.T) {

	chk.PrintTitle("Test config01: BuildRules expands unset bounds to +-Inf")

	xmin := 0.0
	ux := 0.0
	j := &Job{
		Rules: []RuleData{
			{XMin: &xmin, XMax: &xmin, Ux: &ux}, // Ymin/Ymax left unset
		},
	}
	rules := j.BuildRules()
	if len(rules) != 1 {
		tst.Fatalf("expected 1 rule, got %d", len(rules))
	}
	r := rules[0]
	if !math.IsInf(r.YMin, -1) || !math.IsInf(r.YMax, 1) {
		tst.Errorf("unset Y bounds should expand to -Inf/+Inf")
	}
	if !r.HasUx || r.Ux != 0 {
		tst.Errorf("Ux should be set from the JSON pointer")
	}
	if r.HasFx || r.HasFy || r.HasUy {
		tst.Errorf("unset targets should not be marked Has*")
	}
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("Test config02: SolverData.SetDefault fills zero values only")

	var s SolverData
	s.SetDefault()
	chk.Scalar(tst, "symtol default", 0, s.SymTol, 1e-8)
	chk.Scalar(tst, "eqtol default", 0, s.EqTol, 1e-6)
	if s.LinSolver != "umfpack" {
		tst.Errorf("expected default linsolver umfpack, got %q", s.LinSolver)
	}

	s2 := SolverData{LinSolver: "mumps", SymTol: 1e-3, EqTol: 1e-3}
	s2.SetDefault()
	if s2.LinSolver != "mumps" || s2.SymTol != 1e-3 || s2.EqTol != 1e-3 {
		tst.Errorf("SetDefault should not overwrite already-set fields")
	}
}

func Test_config03(tst *testing.T) {

	chk.PrintTitle("Test config03: BuildMesh/BuildMaterial round-trip from decoded data")

	j := &Job{
		Mesh: MeshData{
			Coords: [][2]float64{{0, 0}, {1, 0}, {0, 1}},
			Conn:   [][3]int{{0, 1, 2}},
		},
		Material: MaterialData{E: 1000, Nu: 0.3, T: 1.0},
	}
	m, err := j.BuildMesh()
	if err != nil {
		tst.Fatal(err)
	}
	if len(m.Nodes) != 3 || len(m.Elements) != 1 {
		tst.Errorf("unexpected mesh shape")
	}
	mat := j.BuildMaterial()
	chk.Scalar(tst, "E", 0, mat.E, 1000)
	chk.Scalar(tst, "Nu", 0, mat.Nu, 0.3)
}
