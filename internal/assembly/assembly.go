// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly implements the global assembler (§4.3): scattering each
// element's 6x6 stiffness into the global 2N x 2N system. Grounded on
// fem.Domain's Kb triplet accumulation and ElemU.AddToKb's
// "Kb.Put(I, J, o.K[i][j])" scatter loop over the element's equation map.
package assembly

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/la"

	"github.com/go-fea/gofea2d/internal/cst"
	"github.com/go-fea/gofea2d/internal/ferr"
	"github.com/go-fea/gofea2d/internal/material"
	"github.com/go-fea/gofea2d/internal/mesh"
)

// System holds the assembled dense global stiffness K and force vector F.
// A dense matrix is used for the reasons design note §9 gives: it keeps the
// partition step in internal/solve easy to read and verify. ToSparse
// converts the assembled dense K into triplet form; there is no sparse
// accumulation path, so the dense NDof x NDof K is always allocated first.
type System struct {
	NDof int
	K    [][]float64
	F    []float64
}

// New allocates an empty NDof x NDof system.
func New(nDof int) *System {
	return &System{NDof: nDof, K: la.MatAlloc(nDof, nDof), F: make([]float64, nDof)}
}

// ElementMap returns the six global equation numbers of a triangle's DOFs,
// in the order (u1x,u1y,u2x,u2y,u3x,u3y) that §3 and §4.3 specify.
func ElementMap(n1, n2, n3 int) [6]int {
	return [6]int{
		mesh.DofEq(n1, 0), mesh.DofEq(n1, 1),
		mesh.DofEq(n2, 0), mesh.DofEq(n2, 1),
		mesh.DofEq(n3, 0), mesh.DofEq(n3, 1),
	}
}

// Add scatters a 6x6 element stiffness into K at the footprint given by
// umap. Addition is commutative, so assembly is independent of the order
// elements are visited in (§5 ordering guarantee).
func (s *System) Add(umap [6]int, ke [][]float64) {
	for a, I := range umap {
		for b, J := range umap {
			s.K[I][J] += ke[a][b]
		}
	}
}

// FromMesh evaluates the element kernel for every element (optionally in
// parallel across a bounded worker pool — §5's one permitted concurrency
// opportunity) and assembles them into a System. It returns the per-element
// kernels too, since stress recovery (§4.5) reuses their B matrices rather
// than recomputing them.
func FromMesh(m *mesh.Mesh, mat material.Elastic) (sys *System, kernels []*cst.Kernel, err error) {
	if verr := mat.Validate(); verr != nil {
		return nil, nil, verr
	}
	D := mat.DMatrix()
	sys = New(m.NumDofs())
	kernels = make([]*cst.Kernel, len(m.Elements))

	// parallel element-kernel evaluation
	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(m.Elements) {
		nWorkers = len(m.Elements)
	}
	if nWorkers < 1 {
		nWorkers = 1
	}
	type job struct {
		idx int
		e   mesh.Element
	}
	jobs := make(chan job)
	errs := make([]error, len(m.Elements))
	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for w := 0; w < nWorkers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				x1, y1, x2, y2, x3, y3 := j.e.Coords(m)
				k, kerr := cst.Build(j.e.Id, x1, y1, x2, y2, x3, y3, mat.T, D)
				if kerr != nil {
					errs[j.idx] = kerr
					continue
				}
				kernels[j.idx] = k
			}
		}()
	}
	for i, e := range m.Elements {
		jobs <- job{i, e}
	}
	close(jobs)
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}

	// single-threaded scatter (design note (c): assembly is a small share
	// of total time, and K requires synchronization across elements)
	for i, e := range m.Elements {
		umap := ElementMap(e.N1, e.N2, e.N3)
		sys.Add(umap, kernels[i].Ke)
	}
	return sys, kernels, nil
}

// ToSparse converts the dense K into a gosl/la.Triplet, the coordinate-list
// sparse format design note §9 recommends for N > ~2000.
func (s *System) ToSparse() *la.Triplet {
	nnz := 0
	for i := 0; i < s.NDof; i++ {
		for j := 0; j < s.NDof; j++ {
			if s.K[i][j] != 0 {
				nnz++
			}
		}
	}
	t := new(la.Triplet)
	t.Init(s.NDof, s.NDof, nnz)
	for i := 0; i < s.NDof; i++ {
		for j := 0; j < s.NDof; j++ {
			if s.K[i][j] != 0 {
				t.Put(i, j, s.K[i][j])
			}
		}
	}
	return t
}

// CheckSymmetric reports a *ferr.Error (kind SingularSystem is reused here
// only as a generic "pipeline invariant broken" signal — K symmetry is an
// assembler invariant, not a caller input error) if K is not symmetric to
// the given relative tolerance (§8 "Symmetry of K").
func (s *System) CheckSymmetric(tol float64) error {
	largest := 0.0
	for i := 0; i < s.NDof; i++ {
		for j := 0; j < s.NDof; j++ {
			if abs(s.K[i][j]) > largest {
				largest = abs(s.K[i][j])
			}
		}
	}
	for i := 0; i < s.NDof; i++ {
		for j := i + 1; j < s.NDof; j++ {
			if abs(s.K[i][j]-s.K[j][i]) > tol*max(largest, 1.0) {
				return ferr.New(ferr.SingularSystem, "global stiffness is not symmetric at (%d,%d)", i, j)
			}
		}
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
