// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the partition-and-solve step (§4.4): classify
// DOFs into known-displacement / known-force blocks, solve the reduced
// system for the unknown displacements, then recover reactions as a direct
// matrix-vector product. Grounded on fem.Domain/fem.solver.go's use of
// gosl/la.Triplet + la.GetSolver(...).InitR/Fact/SolveR — reused here for a
// single direct solve rather than a Newton iteration, since the problem is
// linear.
package solve

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/go-fea/gofea2d/internal/assembly"
	"github.com/go-fea/gofea2d/internal/ferr"
	"github.com/go-fea/gofea2d/internal/mesh"
)

// Result holds the full, reassembled displacement and force vectors,
// indexed by global equation number (§3 DOF ordering).
type Result struct {
	U []float64
	F []float64
}

// pivotTol is the relative tolerance of §4.4's singularity check:
// a pivot smaller than pivotTol * max|diag(K_uu)| is treated as singular.
const pivotTol = 1e-10

// Partition solves K·U = F by direct partitioning (§4.4). linSolName
// selects the sparse factorization backend for the reduced K_uu system
// ("umfpack" or "mumps", mirroring inp.LinSolData.Name); an empty string
// defaults to "umfpack".
func Partition(sys *assembly.System, m *mesh.Mesh, linSolName string) (*Result, error) {
	if linSolName == "" {
		linSolName = "umfpack"
	}

	nDof := sys.NDof
	var duIdx, dkIdx []int // equation numbers: unknown-U (Du) and known-U (Dk)
	uk := make([]float64, 0, nDof)
	fu := make([]float64, 0, nDof)

	for i := range m.Nodes {
		n := &m.Nodes[i]
		for axis := 0; axis < 2; axis++ {
			eq := mesh.DofEq(n.Id, axis)
			d := n.Dofs[axis]
			if d.UKnown {
				dkIdx = append(dkIdx, eq)
				uk = append(uk, d.UValue)
			} else {
				duIdx = append(duIdx, eq)
				fu = append(fu, d.FValue)
			}
		}
	}

	// well-posedness heuristic (§9 Open Questions): 2D rigid-body removal
	// needs at least 3 independent displacement constraints. Fewer than
	// that is rejected here rather than left to surface as a singular
	// K_uu, since the diagnosis is cheaper and more specific.
	if len(dkIdx) < 3 {
		return nil, ferr.New(ferr.IllPosedBoundary,
			"only %d displacement DOFs are prescribed; at least 3 are required to remove rigid-body modes", len(dkIdx))
	}

	nu, nk := len(duIdx), len(dkIdx)

	// extract K_uu (nu x nu) and K_uk (nu x nk)
	Kuu := la.MatAlloc(nu, nu)
	Kuk := la.MatAlloc(nu, nk)
	for a, I := range duIdx {
		for b, J := range duIdx {
			Kuu[a][b] = sys.K[I][J]
		}
		for b, J := range dkIdx {
			Kuk[a][b] = sys.K[I][J]
		}
	}

	// rhs = F_u - K_uk . U_k
	kukU := make([]float64, nu)
	la.MatVecMul(kukU, 1, Kuk, uk)
	rhs := make([]float64, nu)
	for a := range rhs {
		rhs[a] = fu[a] - kukU[a]
	}

	// singularity pre-check: scan K_uu's diagonal before ever factoring it
	maxDiag := 0.0
	for i := 0; i < nu; i++ {
		if d := math.Abs(Kuu[i][i]); d > maxDiag {
			maxDiag = d
		}
	}
	for i := 0; i < nu; i++ {
		if math.Abs(Kuu[i][i]) < pivotTol*maxDiag {
			return nil, ferr.New(ferr.SingularSystem,
				"K_uu has a near-zero diagonal pivot at reduced row %d (eq=%d); model is likely under-constrained", i, duIdx[i])
		}
	}

	Uu, err := solveDense(Kuu, rhs, linSolName)
	if err != nil {
		return nil, err
	}

	// reassemble U
	U := make([]float64, nDof)
	for a, I := range duIdx {
		U[I] = Uu[a]
	}
	for b, J := range dkIdx {
		U[J] = uk[b]
	}

	// recover reactions: F_k = K_ku . U_u + K_kk . U_k (direct product, §4.4)
	F := make([]float64, nDof)
	copy(F, sys.F)
	for a, I := range duIdx {
		F[I] = fu[a]
	}
	for _, J := range dkIdx {
		sum := 0.0
		for b, I := range duIdx {
			sum += sys.K[J][I] * Uu[b]
		}
		for b, J2 := range dkIdx {
			sum += sys.K[J][J2] * uk[b]
		}
		F[J] = sum
	}

	return &Result{U: U, F: F}, nil
}

// solveDense factorizes and solves Kuu*x = rhs by staging Kuu into a
// gosl/la.Triplet and using the named sparse solver — the same
// InitR/Fact/SolveR sequence fem.solver.go uses inside its Newton loop,
// called once here since the system is already linear.
func solveDense(Kuu [][]float64, rhs []float64, linSolName string) (x []float64, err error) {
	n := len(rhs)
	nnz := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if Kuu[i][j] != 0 {
				nnz++
			}
		}
	}
	trip := new(la.Triplet)
	trip.Init(n, n, nnz)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if Kuu[i][j] != 0 {
				trip.Put(i, j, Kuu[i][j])
			}
		}
	}

	solver := la.GetSolver(linSolName)
	defer solver.Clean()

	if ierr := solver.InitR(trip, true, false, false); ierr != nil {
		return nil, ferr.New(ferr.SingularSystem, "linear solver initialisation failed: %v", ierr)
	}
	if ierr := solver.Fact(); ierr != nil {
		return nil, ferr.New(ferr.SingularSystem, "factorisation failed: %v", ierr)
	}
	x = make([]float64, n)
	if ierr := solver.SolveR(x, rhs, false); ierr != nil {
		return nil, ferr.New(ferr.SingularSystem, "solve failed: %v", ierr)
	}
	return x, nil
}

// CheckEquilibrium verifies ||K.U - F||_inf <= tol*max(||F||_inf, 1) (§8
// "Equilibrium"), useful to property tests without re-deriving the
// ℓ∞ norm logic in every test file.
func CheckEquilibrium(sys *assembly.System, res *Result, tol float64) error {
	Ku := make([]float64, sys.NDof)
	la.MatVecMul(Ku, 1, sys.K, res.U)
	normF := la.VecLargest(res.F, 1)
	worst := 0.0
	for i := range Ku {
		d := math.Abs(Ku[i] - res.F[i])
		if d > worst {
			worst = d
		}
	}
	if worst > tol*math.Max(normF, 1.0) {
		return ferr.New(ferr.SingularSystem, "equilibrium residual %.3e exceeds tolerance %.3e", worst, tol*math.Max(normF, 1.0))
	}
	return nil
}
