// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress implements stress recovery (§4.5): for every element,
// gather its six nodal displacements from the global U vector and compute
// σ_e = D · B · q_e, a constant 3-vector (σx, σy, τxy) over the element.
// Grounded on fem.ElemU.Update's "σ = D·ε" pattern (e_u.go), specialised to
// the single-Gauss-point CST case where no integration loop is needed.
package stress

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/go-fea/gofea2d/internal/assembly"
	"github.com/go-fea/gofea2d/internal/cst"
	"github.com/go-fea/gofea2d/internal/material"
	"github.com/go-fea/gofea2d/internal/mesh"
)

// Element holds the recovered constant stress state of one element.
type Element struct {
	ElementID int
	Sx, Sy    float64 // σx, σy
	Txy       float64 // τxy
}

// Recover computes the per-element stress for every element of m, given the
// solved global displacement vector U and the kernels cached by
// assembly.FromMesh (so B is not recomputed from the raw coordinates).
func Recover(m *mesh.Mesh, mat material.Elastic, kernels []*cst.Kernel, U []float64) []Element {
	D := mat.DMatrix()
	out := make([]Element, len(m.Elements))
	for i, e := range m.Elements {
		umap := assembly.ElementMap(e.N1, e.N2, e.N3)
		qe := make([]float64, 6)
		for a, I := range umap {
			qe[a] = U[I]
		}
		B := kernels[i].BMatrix()
		eps := make([]float64, 3) // ε = B · q_e
		la.MatVecMul(eps, 1, B, qe)
		sig := make([]float64, 3) // σ = D · ε
		la.MatVecMul(sig, 1, D, eps)
		out[i] = Element{ElementID: e.Id, Sx: sig[0], Sy: sig[1], Txy: sig[2]}
	}
	return out
}

// VonMises returns the plane-stress von Mises equivalent stress of an
// element, a common derived quantity reported alongside the raw components.
func (e Element) VonMises() float64 {
	return math.Sqrt(e.Sx*e.Sx - e.Sx*e.Sy + e.Sy*e.Sy + 3*e.Txy*e.Txy)
}
