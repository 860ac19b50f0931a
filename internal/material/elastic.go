// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the constant, global isotropic material
// parameters (§3) and the plane-stress elasticity matrix D (§4.2). Adapted
// from msolid.SmallElasticity, specialised to the single plane-stress case
// this engine supports (no plane-strain, no nonlinear K/G calculator).
package material

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/go-fea/gofea2d/internal/ferr"
)

// Elastic holds the global, constant material constants.
type Elastic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson ratio
	T  float64 // thickness
}

// Validate rejects non-physical parameters (§7 InvalidMaterial).
func (o Elastic) Validate() error {
	if !(o.E > 0) || math.IsInf(o.E, 0) || math.IsNaN(o.E) {
		return ferr.New(ferr.InvalidMaterial, "E must be finite and positive, got %g", o.E)
	}
	if !(o.T > 0) || math.IsInf(o.T, 0) || math.IsNaN(o.T) {
		return ferr.New(ferr.InvalidMaterial, "t must be finite and positive, got %g", o.T)
	}
	if !(o.Nu > -1 && o.Nu < 0.5) {
		return ferr.New(ferr.InvalidMaterial, "nu must lie in (-1, 0.5), got %g", o.Nu)
	}
	return nil
}

// DMatrix returns the plane-stress elasticity matrix D (3x3), §4.2:
//
//	D = E/(1-ν²) · [[1, ν, 0], [ν, 1, 0], [0, 0, (1-ν)/2]]
func (o Elastic) DMatrix() (D [][]float64) {
	D = la.MatAlloc(3, 3)
	c := o.E / (1.0 - o.Nu*o.Nu)
	D[0][0] = c
	D[0][1] = c * o.Nu
	D[1][0] = c * o.Nu
	D[1][1] = c
	D[2][2] = c * (1.0 - o.Nu) / 2.0
	return
}
