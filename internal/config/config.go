// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads a job (.fea.json) file describing a complete
// analysis — mesh, material, boundary rules and solver options — the way
// inp.Mesh/inp.Data read a simulation's .msh/.sim files: JSON-decode into a
// plain struct, then SetDefault before use. Material constants are not
// validated here; material.Elastic.Validate does that during analysis.
package config

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/go-fea/gofea2d/internal/bc"
	"github.com/go-fea/gofea2d/internal/material"
	"github.com/go-fea/gofea2d/internal/mesh"
)

// Job is the top-level decoded shape of a .fea.json file.
type Job struct {
	Desc string `json:"desc"` // free-text description; not used by the analysis or the reports

	Mesh     MeshData     `json:"mesh"`
	Material MaterialData `json:"material"`
	Rules    []RuleData   `json:"rules"`
	Solver   SolverData   `json:"solver"`
}

// MeshData is the plain coordinate/connectivity representation a mesher
// hands back (§6), as read straight off JSON arrays.
type MeshData struct {
	Coords [][2]float64 `json:"coords"`
	Conn   [][3]int     `json:"conn"`
}

// MaterialData mirrors material.Elastic with JSON tags.
type MaterialData struct {
	E  float64 `json:"e"`
	Nu float64 `json:"nu"`
	T  float64 `json:"t"`
}

// RuleData is one rectangular boundary rule (§4.1). A bound only becomes
// "unbounded" when it is absent (or null) in the JSON — e.g. "xmin":0 means
// the region really does start at x=0, rather than silently treating 0 as
// "no bound". Targets follow the same rule: absent or null means not set.
type RuleData struct {
	XMin *float64 `json:"xmin,omitempty"`
	XMax *float64 `json:"xmax,omitempty"`
	YMin *float64 `json:"ymin,omitempty"`
	YMax *float64 `json:"ymax,omitempty"`

	Ux *float64 `json:"ux,omitempty"`
	Uy *float64 `json:"uy,omitempty"`
	Fx *float64 `json:"fx,omitempty"`
	Fy *float64 `json:"fy,omitempty"`
}

// SolverData configures the linear-solver backend (§4.4), mirroring
// inp.LinSolData's Name field — only the parts relevant to a single direct
// solve are carried over; the Newton-iteration controls of SolverData in
// the original do not apply here.
type SolverData struct {
	LinSolver string  `json:"linsolver"` // "umfpack" or "mumps"
	SymTol    float64 `json:"symtol"`    // K symmetry check tolerance
	EqTol     float64 `json:"eqtol"`     // equilibrium residual check tolerance
}

// SetDefault fills solver options left at their JSON zero value, the way
// inp.LinSolData.SetDefault does for its own Data/LinSolData types.
func (o *SolverData) SetDefault() {
	if o.LinSolver == "" {
		o.LinSolver = "umfpack"
	}
	if o.SymTol == 0 {
		o.SymTol = 1e-8
	}
	if o.EqTol == 0 {
		o.EqTol = 1e-6
	}
}

// Load reads and decodes a job file from disk, applying defaults — the
// io.ReadFile + json.Unmarshal + chk.Err sequence inp.ReadMsh uses.
func Load(path string) (job *Job, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read job file %q: %v", path, err)
	}
	job = new(Job)
	if err = json.Unmarshal(b, job); err != nil {
		return nil, chk.Err("cannot parse job file %q: %v", path, err)
	}
	job.Solver.SetDefault()
	return job, nil
}

// BuildMesh constructs a *mesh.Mesh from the decoded coordinate/
// connectivity arrays.
func (j *Job) BuildMesh() (*mesh.Mesh, error) {
	return mesh.New(j.Mesh.Coords, j.Mesh.Conn)
}

// BuildMaterial returns the material.Elastic this job specifies.
func (j *Job) BuildMaterial() material.Elastic {
	return material.Elastic{E: j.Material.E, Nu: j.Material.Nu, T: j.Material.T}
}

// BuildRules converts the JSON rule list into bc.Rule values, expanding
// unset bounds to ±Inf the way bc.Unbounded documents its callers must.
func (j *Job) BuildRules() []bc.Rule {
	rules := make([]bc.Rule, len(j.Rules))
	for i, r := range j.Rules {
		rules[i] = bc.Rule{
			XMin: orInf(r.XMin, -1),
			XMax: orInf(r.XMax, +1),
			YMin: orInf(r.YMin, -1),
			YMax: orInf(r.YMax, +1),
		}
		if r.Ux != nil {
			rules[i].HasUx, rules[i].Ux = true, *r.Ux
		}
		if r.Uy != nil {
			rules[i].HasUy, rules[i].Uy = true, *r.Uy
		}
		if r.Fx != nil {
			rules[i].HasFx, rules[i].Fx = true, *r.Fx
		}
		if r.Fy != nil {
			rules[i].HasFy, rules[i].Fy = true, *r.Fy
		}
	}
	return rules
}

func orInf(v *float64, sign int) float64 {
	if v == nil {
		return math.Inf(sign)
	}
	return *v
}
