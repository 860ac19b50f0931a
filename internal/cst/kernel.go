// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cst implements the constant-strain-triangle element kernel
// (§4.2): area, the strain-displacement matrix B, and the element
// stiffness k_e = Bᵀ D B · t · A, derived in closed form (no Gauss
// quadrature — B and D are constant over a CST, so ∫∫_A dA = A).
//
// Grounded on shp.Tri3 (the isoparametric shape functions of a 3-node
// triangle) and fem.ElemU.AddToKb's "K += coef * Bᵀ D B" assembly idiom
// (e_u.go), specialised from the general Gauss-point loop down to the
// single closed-form evaluation a CST permits.
package cst

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/go-fea/gofea2d/internal/ferr"
)

// areaTol is the relative tolerance (of the triangle's bounding-box area,
// floored at 1 so it never drops below areaTol itself) below which a
// triangle is rejected as degenerate (§4.2).
const areaTol = 1e-12

// Kernel is the per-element result of §4.2: area, un-normalised B, and the
// 6x6 element stiffness. B is cached unnormalised (without the 1/(2A)
// factor) so that D·B and Bᵀ·D·B can be formed and then scaled once by
// 1/(4A²), per the spec's numerical note — this avoids squaring rounding
// error on small-area elements relative to normalising B first.
type Kernel struct {
	Area float64     // A (always positive)
	Bu   [][]float64 // 3x6 un-normalised strain-displacement matrix
	Ke   [][]float64 // 6x6 element stiffness
}

// Build computes the element kernel for a triangle with the given vertex
// coordinates (in CST order 1,2,3) and material matrix D (3x3, plane
// stress). elementID is used only to annotate a DegenerateElement error.
func Build(elementID int, x1, y1, x2, y2, x3, y3 float64, t float64, D [][]float64) (k *Kernel, err error) {

	// signed area, §4.2
	area2Signed := x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2)
	area := math.Abs(area2Signed) / 2.0

	// degeneracy check against a tolerance scaled by the bounding-box area
	xs := []float64{x1, x2, x3}
	ys := []float64{y1, y2, y3}
	bboxArea := (maxOf(xs) - minOf(xs)) * (maxOf(ys) - minOf(ys))
	tol := areaTol * math.Max(bboxArea, 1.0)
	if area < tol {
		return nil, ferr.New(ferr.DegenerateElement,
			"triangle area %.6e is below tolerance %.6e (collinear nodes?)", area, tol).AtElement(elementID)
	}

	// shorthand differences, §4.2
	y23, y31, y12 := y2-y3, y3-y1, y1-y2
	x32, x13, x21 := x3-x2, x1-x3, x2-x1

	// un-normalised strain-displacement matrix Bu (3x6); B == Bu/(2A)
	Bu := la.MatAlloc(3, 6)
	Bu[0][0], Bu[0][2], Bu[0][4] = y23, y31, y12
	Bu[1][1], Bu[1][3], Bu[1][5] = x32, x13, x21
	Bu[2][0], Bu[2][1] = x32, y23
	Bu[2][2], Bu[2][3] = x13, y31
	Bu[2][4], Bu[2][5] = x21, y12

	// the entries above are scaled by the signed 2A; flip them for clockwise
	// triangles so that B == Bu/(2A) holds with the positive area A
	if area2Signed < 0 {
		for i := range Bu {
			for j := range Bu[i] {
				Bu[i][j] = -Bu[i][j]
			}
		}
	}

	// k_e = (1/(4A²)) * Buᵀ D Bu * t * A = Buᵀ D Bu * (t / (4A))
	coef := t / (4.0 * area)
	Ke := la.MatAlloc(6, 6)
	la.MatTrMulAdd3(Ke, coef, Bu, D, Bu) // Ke += coef * Buᵀ * D * Bu

	return &Kernel{Area: area, Bu: Bu, Ke: Ke}, nil
}

// BMatrix returns the normalised strain-displacement matrix B = Bu/(2A),
// used by stress recovery (§4.5). It is recomputed on demand rather than
// cached on Kernel, since assembly only ever needs Bu.
func (k *Kernel) BMatrix() (B [][]float64) {
	B = la.MatAlloc(3, 6)
	inv2A := 1.0 / (2.0 * k.Area)
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			B[i][j] = k.Bu[i][j] * inv2A
		}
	}
	return
}

// CheckSymmetric panics (via chk.Panic) if Ke is not symmetric to the given
// relative tolerance — used by property tests (§8 "Symmetry of k_e").
func (k *Kernel) CheckSymmetric(tol float64) {
	n := len(k.Ke)
	largest := la.MatLargest(k.Ke, 1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff := math.Abs(k.Ke[i][j] - k.Ke[j][i])
			if diff > tol*math.Max(largest, 1.0) {
				chk.Panic("element stiffness is not symmetric: Ke[%d][%d]=%g != Ke[%d][%d]=%g", i, j, k.Ke[i][j], j, i, k.Ke[j][i])
			}
		}
	}
}

func maxOf(v []float64) (m float64) {
	m = v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return
}

func minOf(v []float64) (m float64) {
	m = v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return
}
