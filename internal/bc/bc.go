// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc implements the boundary binder (§4.1): it applies an ordered
// list of rectangular-region rules to a mesh's nodes, writing the per-DOF
// known-force / known-displacement state that the rest of the pipeline
// reads thereafter.
package bc

import (
	"math"

	"github.com/go-fea/gofea2d/internal/ferr"
	"github.com/go-fea/gofea2d/internal/mesh"
)

// Rule is a rectangular region together with a target vector. Bounds that
// are absent from a JSON rule are set to ±Inf by internal/config; a Rule
// built directly in Go code must do the same for "unbounded" sides.
type Rule struct {
	XMin, XMax float64 // inclusive bounds; use math.Inf(-1)/math.Inf(+1) for open sides
	YMin, YMax float64

	// target values; a field is "absent" by setting its Has flag false
	HasUx, HasUy, HasFx, HasFy bool
	Ux, Uy, Fx, Fy             float64
}

// Unbounded returns a Rule covering the whole plane, useful as a base rule
// applied first so every node gets a default before more specific rules
// override it.
func Unbounded() Rule {
	return Rule{XMin: math.Inf(-1), XMax: math.Inf(1), YMin: math.Inf(-1), YMax: math.Inf(1)}
}

// contains reports whether (x,y) lies in the rule's region, bounds inclusive.
func (r Rule) contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Bind applies rules in order to every node of m, then validates that every
// DOF ended up with exactly one of UKnown/FKnown set (nodes touched by no
// rule default to FKnown=0 on both axes — free, zero external load).
// Later rules override earlier rules on the same node+DOF, field by field.
func Bind(m *mesh.Mesh, rules []Rule) (err error) {
	for i := range m.Nodes {
		n := &m.Nodes[i]
		n.Dofs[0] = mesh.Dof{FKnown: true, FValue: 0}
		n.Dofs[1] = mesh.Dof{FKnown: true, FValue: 0}
		for _, r := range rules {
			if !r.contains(n.X, n.Y) {
				continue
			}
			applyAxis(&n.Dofs[0], r.HasUx, r.Ux, r.HasFx, r.Fx)
			applyAxis(&n.Dofs[1], r.HasUy, r.Uy, r.HasFy, r.Fy)
		}
	}
	return validate(m)
}

// applyAxis overwrites a single DOF's known state from one rule's targets,
// field by field — a rule that only sets Ux leaves Fy (say) untouched from
// a previous rule.
func applyAxis(d *mesh.Dof, hasU bool, u float64, hasF bool, f float64) {
	if hasU {
		d.UKnown, d.UValue = true, u
		d.FKnown = false
	}
	if hasF {
		d.FKnown, d.FValue = true, f
		d.UKnown = false
	}
}

// validate checks the §3 invariant: exactly one of UKnown/FKnown per DOF.
func validate(m *mesh.Mesh) error {
	for _, n := range m.Nodes {
		for axis, d := range n.Dofs {
			if d.UKnown == d.FKnown {
				return ferr.New(ferr.IllPosedBoundary,
					"DOF has %s of u_known/f_known set", whichFault(d)).
					AtNode(n.Id).AtDof(axis)
			}
		}
	}
	return nil
}

func whichFault(d mesh.Dof) string {
	if d.UKnown && d.FKnown {
		return "both"
	}
	return "neither"
}

// CountKnownDisplacements returns how many DOFs across the whole mesh have
// UKnown set. A properly constrained 2D model needs at least 3 independent
// such DOFs to remove rigid-body modes (§4.4). solve.Partition makes the
// same count itself as an early rejection; it does not call this function.
func CountKnownDisplacements(m *mesh.Mesh) (count int) {
	for _, n := range m.Nodes {
		for _, d := range n.Dofs {
			if d.UKnown {
				count++
			}
		}
	}
	return
}
