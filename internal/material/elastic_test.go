// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_elastic01(tst *testing.T) {

	chk.PrintTitle("Test elastic01: D matrix symmetry and known values")

	mat := Elastic{E: 1000.0, Nu: 0.25, T: 1.0}
	if err := mat.Validate(); err != nil {
		tst.Fatal(err)
	}
	D := mat.DMatrix()

	c := mat.E / (1 - mat.Nu*mat.Nu)
	chk.Scalar(tst, "D00", 1e-12, D[0][0], c)
	chk.Scalar(tst, "D01", 1e-12, D[0][1], c*mat.Nu)
	chk.Scalar(tst, "D22", 1e-12, D[2][2], c*(1-mat.Nu)/2)
	chk.Scalar(tst, "D01-D10", 0, D[0][1], D[1][0])
}

func Test_elastic02(tst *testing.T) {

	chk.PrintTitle("Test elastic02: invalid material parameters are rejected")

	cases := []Elastic{
		{E: 0, Nu: 0.25, T: 1.0},
		{E: -1, Nu: 0.25, T: 1.0},
		{E: 1000, Nu: 0.25, T: 0},
		{E: 1000, Nu: 0.5, T: 1.0},
		{E: 1000, Nu: -1, T: 1.0},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			tst.Errorf("case %d: expected a validation error", i)
		}
	}
}
