// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine wires the pipeline stages together — boundary binding,
// assembly, solving, stress recovery — the way fem.FEM.Run orchestrates
// Domain construction, assembly and the solver, simplified to the single
// direct linear solve this engine performs instead of a Newton loop.
package engine

import (
	"github.com/go-fea/gofea2d/internal/assembly"
	"github.com/go-fea/gofea2d/internal/bc"
	"github.com/go-fea/gofea2d/internal/config"
	"github.com/go-fea/gofea2d/internal/result"
	"github.com/go-fea/gofea2d/internal/solve"
	"github.com/go-fea/gofea2d/internal/stress"
)

// Analyze runs the complete pipeline for one job: build the mesh, bind
// boundary conditions, assemble K and F, solve for U, recover element
// stresses, and return the combined report table. Solver options left at
// their zero value are filled with SolverData.SetDefault first.
func Analyze(job *config.Job) (*result.Table, error) {
	job.Solver.SetDefault()

	m, err := job.BuildMesh()
	if err != nil {
		return nil, err
	}

	if err := bc.Bind(m, job.BuildRules()); err != nil {
		return nil, err
	}

	mat := job.BuildMaterial()
	if err := mat.Validate(); err != nil {
		return nil, err
	}

	sys, kernels, err := assembly.FromMesh(m, mat)
	if err != nil {
		return nil, err
	}
	if err := sys.CheckSymmetric(job.Solver.SymTol); err != nil {
		return nil, err
	}

	res, err := solve.Partition(sys, m, job.Solver.LinSolver)
	if err != nil {
		return nil, err
	}
	if err := solve.CheckEquilibrium(sys, res, job.Solver.EqTol); err != nil {
		return nil, err
	}

	elems := stress.Recover(m, mat, kernels, res.U)
	return result.Build(m, res, elems), nil
}
