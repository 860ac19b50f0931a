// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the passive node/element data produced by an external
// mesher: plain coordinates and connectivity, plus the per-DOF boundary
// state written once by the boundary binder (internal/bc).
package mesh

import (
	"github.com/go-fea/gofea2d/internal/ferr"
)

// Dof holds the boundary state of one scalar degree of freedom (one axis of
// one node). Exactly one of UKnown and FKnown is set once the boundary
// binder has run; before that both are false.
type Dof struct {
	UKnown  bool    // true if the displacement is prescribed
	FKnown  bool    // true if the force is prescribed
	UValue  float64 // prescribed displacement (valid iff UKnown)
	FValue  float64 // prescribed force (valid iff FKnown)
}

// Node is a mesh vertex: a stable index in [0,N), a position, and the
// boundary state of its two DOFs (x, y). Nodes are created once by the
// meshing stage and are immutable thereafter, except for Dofs which the
// boundary binder writes exactly once.
type Node struct {
	Id   int       // index in [0, N)
	X, Y float64   // position
	Dofs [2]Dof    // x-DOF, y-DOF
}

// Element is a constant-strain triangle: an ordered triple of distinct node
// indices. Orientation (winding) may be either handedness.
type Element struct {
	Id          int    // index in [0, nElements)
	N1, N2, N3 int    // node indices into Mesh.Nodes
}

// Mesh is the passive geometry the core receives from the mesher.
type Mesh struct {
	Nodes    []Node
	Elements []Element
}

// New builds a Mesh from plain coordinate and connectivity slices, the shape
// the external mesher hands back (see SPEC_FULL.md §6).
func New(coords [][2]float64, conn [][3]int) (m *Mesh, err error) {
	m = &Mesh{
		Nodes:    make([]Node, len(coords)),
		Elements: make([]Element, len(conn)),
	}
	for i, c := range coords {
		m.Nodes[i] = Node{Id: i, X: c[0], Y: c[1]}
	}
	for i, c := range conn {
		m.Elements[i] = Element{Id: i, N1: c[0], N2: c[1], N3: c[2]}
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return
}

// NumDofs returns M = 2*N, the total number of scalar degrees of freedom.
func (m *Mesh) NumDofs() int { return 2 * len(m.Nodes) }

// Validate checks that every element references valid, distinct node
// indices. It does not check for degeneracy (collinearity) — that is the
// element kernel's job (§4.2), since it needs the actual coordinates and the
// area tolerance to do it properly.
func (m *Mesh) Validate() (err error) {
	n := len(m.Nodes)
	for _, e := range m.Elements {
		for _, idx := range []int{e.N1, e.N2, e.N3} {
			if idx < 0 || idx >= n {
				return ferr.New(ferr.IndexOutOfRange, "element references node %d but mesh has %d nodes", idx, n).AtElement(e.Id)
			}
		}
		if e.N1 == e.N2 || e.N2 == e.N3 || e.N1 == e.N3 {
			return ferr.New(ferr.IndexOutOfRange, "element has repeated node indices (%d,%d,%d)", e.N1, e.N2, e.N3).AtElement(e.Id)
		}
	}
	return
}

// Coords returns the (x,y) pairs of an element's three nodes in order.
func (e Element) Coords(m *Mesh) (x1, y1, x2, y2, x3, y3 float64) {
	a, b, c := m.Nodes[e.N1], m.Nodes[e.N2], m.Nodes[e.N3]
	return a.X, a.Y, b.X, b.Y, c.X, c.Y
}

// DofEq returns the global equation number of node i's axis-th DOF
// (0 == x, 1 == y), following the ordering of §3: node i occupies rows 2i, 2i+1.
func DofEq(nodeID, axis int) int { return 2*nodeID + axis }

// NodeIds returns the three node indices of the element, in CST order.
func (e Element) NodeIds() [3]int { return [3]int{e.N1, e.N2, e.N3} }
