// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("Test mesh01: unit square, two triangles")

	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	conn := [][3]int{{0, 1, 2}, {0, 2, 3}}

	m, err := New(coords, conn)
	if err != nil {
		tst.Fatal(err)
	}
	if m.NumDofs() != 8 {
		tst.Errorf("expected 8 dofs, got %d", m.NumDofs())
	}

	x1, y1, x2, y2, x3, y3 := m.Elements[0].Coords(m)
	chk.Vector(tst, "tri0", 1e-15, []float64{x1, y1, x2, y2, x3, y3}, []float64{0, 0, 1, 0, 1, 1})
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("Test mesh02: out-of-range node index is rejected")

	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}}
	conn := [][3]int{{0, 1, 3}} // node 3 does not exist

	_, err := New(coords, conn)
	if err == nil {
		tst.Errorf("expected an error for out-of-range node index")
	}
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("Test mesh03: repeated node index is rejected")

	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}}
	conn := [][3]int{{0, 1, 1}}

	_, err := New(coords, conn)
	if err == nil {
		tst.Errorf("expected an error for repeated node index")
	}
}

func Test_mesh04(tst *testing.T) {

	chk.PrintTitle("Test mesh04: DofEq ordering")

	if DofEq(0, 0) != 0 || DofEq(0, 1) != 1 || DofEq(3, 0) != 6 || DofEq(3, 1) != 7 {
		tst.Errorf("DofEq does not follow the 2i,2i+1 convention")
	}
}
