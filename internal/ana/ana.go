// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements closed-form analytical solutions used as
// regression oracles (§4.8, §8 "Regression against analytical solutions").
// Grounded on ana.CteStressPstrain (mallano-gofem/ana/constantstress.go),
// ana.PlateHole (PaddySchmidt-gofem/ana/plate_hole.go) and ana.Hill's
// elastic branch (mallano-gofem/ana/pressurised_cylinder.go), re-derived
// for the plane-stress, 3-component (σx, σy, τxy) convention this engine
// uses rather than gofem's general 4-component Mandel-like tensor.
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// ConstantStress is the patch-test oracle for a rectangular plate loaded by
// uniform normal tractions qnH (horizontal) and qnV (vertical) on its edges,
// under plane stress. Every element of a correctly assembled mesh should
// recover exactly this constant stress state, and every node the
// corresponding constant strain (§8's "uniaxial tension" scenario is the
// special case qnV = 0). The shear stress of this oracle is always zero.
type ConstantStress struct {
	QnH, QnV float64 // horizontal, vertical distributed load (tension positive)
	E, Nu    float64
}

// Init reads parameters the fun.Prms way other ana solutions in the corpus
// use, defaulting to a 1 MPa / 0 MPa uniaxial state.
func (o *ConstantStress) Init(prms fun.Prms) {
	o.QnH, o.QnV = 1.0, 0.0
	o.E, o.Nu = 1000.0, 0.25
	for _, p := range prms {
		switch p.N {
		case "qnH":
			o.QnH = p.V
		case "qnV":
			o.QnV = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}
}

// Stress returns the (constant, position-independent) plane-stress state.
func (o ConstantStress) Stress() (sx, sy, sxy float64) {
	return o.QnH, o.QnV, 0.0
}

// Displacement returns the analytical displacement at (x,y), measured from
// an origin fixed at (0,0) (§8's patch test fixes one node there).
func (o ConstantStress) Displacement(x, y float64) (ux, uy float64) {
	sx, sy, _ := o.Stress()
	ex := (sx - o.Nu*sy) / o.E
	ey := (sy - o.Nu*sx) / o.E
	return ex * x, ey * y
}

// PlateHole implements Kirsch's solution for an infinite plate with a
// circular hole of radius R, loaded at infinity by qnH (horizontal) and qnV
// (vertical) uniform tension — §4.8's "zero or more inner holes" oracle.
type PlateHole struct {
	R        float64 // hole radius
	E, Nu    float64
	QnH, QnV float64
}

// Init defaults to a unit hole under uniaxial tension, the textbook case.
func (o *PlateHole) Init(prms fun.Prms) {
	o.R = 1.0
	o.E, o.Nu = 1e5, 0.3
	o.QnH, o.QnV = 10.0, 0.0
	for _, p := range prms {
		switch p.N {
		case "r":
			o.R = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "qnH":
			o.QnH = p.V
		case "qnV":
			o.QnV = p.V
		}
	}
}

// RadialSamples returns npts distances evenly spaced from the hole's edge (R)
// out to L, for probing a ray from the hole's center — the grid ana.PlateHole.CalcSigmaXY builds by
// hand for its far-field check — here generated once with utl.LinSpace so
// callers can probe the same ray at any density.
func (o PlateHole) RadialSamples(L float64, npts int) []float64 {
	return utl.LinSpace(o.R, L, npts)
}

// Stress computes (σx, σy, τxy) at (x,y), x,y measured from the hole's
// center. The point must lie outside the hole (d >= R).
func (o PlateHole) Stress(x, y float64) (sx, sy, sxy float64) {
	d := math.Sqrt(x*x + y*y)
	c, s := x/d, y/d
	cc, ss := c*c, s*s
	cs := c * s
	c2t := cc - ss
	s2t := 2.0 * cs

	pm := (o.QnH + o.QnV) / 2.0
	pd := (o.QnH - o.QnV) / 2.0
	b := o.R * o.R / (d * d)
	sr := pm*(1.0-b) + pd*(1.0-4.0*b+3.0*b*b)*c2t
	st := pm*(1.0+b) - pd*(1.0+3.0*b*b)*c2t
	srt := -pd * (1.0 + 2.0*b - 3.0*b*b) * s2t

	sx = cc*sr + ss*st - 2.0*cs*srt
	sy = ss*sr + cc*st + 2.0*cs*srt
	sxy = cs*sr - cs*st + (cc-ss)*srt
	return
}

// ThickCylinder is Lamé's elastic solution for a cylinder of inner radius A
// and outer radius B under internal pressure P, dropping the elastoplastic
// branch ana.Hill carries (§4.8 only needs the purely elastic case).
type ThickCylinder struct {
	A, B  float64
	E, Nu float64
	P     float64 // internal pressure
}

// Init defaults to a 100/200 mm steel cylinder under 50 MPa internal pressure.
func (o *ThickCylinder) Init(prms fun.Prms) {
	o.A, o.B = 100.0, 200.0
	o.E, o.Nu = 210000.0, 0.3
	o.P = 50.0
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "P":
			o.P = p.V
		}
	}
}

// RadialSamples returns npts radii evenly spaced across the cylinder's wall
// (A to B), the grid ana.Hill's cylinder plots build by hand — generated
// here with utl.LinSpace for use by oracle tests that sweep the wall.
func (o ThickCylinder) RadialSamples(npts int) []float64 {
	return utl.LinSpace(o.A, o.B, npts)
}

// Polar returns the radial and hoop stress at radius r (A <= r <= B).
func (o ThickCylinder) Polar(r float64) (sr, st float64) {
	a2, b2, r2 := o.A*o.A, o.B*o.B, r*r
	c := o.P * a2 / (b2 - a2)
	sr = c * (1.0 - b2/r2)
	st = c * (1.0 + b2/r2)
	return
}

// Stress rotates the polar (σr, σθ) state to Cartesian (σx, σy, τxy) at the
// point (x,y) measured from the cylinder's axis.
func (o ThickCylinder) Stress(x, y float64) (sx, sy, sxy float64) {
	r := math.Sqrt(x*x + y*y)
	sr, st := o.Polar(r)
	c, s := x/r, y/r
	cc, ss, cs := c*c, s*s, c*s
	sx = cc*sr + ss*st
	sy = ss*sr + cc*st
	sxy = cs * (sr - st)
	return
}

// RadialDisplacement returns the elastic radial displacement u(r) under
// plane-stress assumptions, the closed form ana.Hill.ub_e specialises to
// the outer radius.
func (o ThickCylinder) RadialDisplacement(r float64) float64 {
	sr, st := o.Polar(r)
	// plane stress: ε_θ = u/r = (σθ - ν·σr)/E
	return r * (st - o.Nu*sr) / o.E
}
