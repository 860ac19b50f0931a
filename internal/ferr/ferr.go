// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ferr defines the error taxonomy of the analysis pipeline (§7).
// Every error aborts the pipeline immediately; there is no recovery. Each
// error identifies the offending entity so the caller can print one
// diagnostic line without digging through the pipeline state.
package ferr

import "github.com/cpmech/gosl/io"

// Kind enumerates the error taxonomy.
type Kind int

const (
	// IllPosedBoundary: some DOF has both or neither of u_known/f_known
	// set after binding.
	IllPosedBoundary Kind = iota
	// DegenerateElement: a triangle has collinear nodes.
	DegenerateElement
	// SingularSystem: K_uu factorization detected a zero/near-zero pivot.
	SingularSystem
	// InvalidMaterial: E<=0, t<=0, or nu not in (-1, 0.5).
	InvalidMaterial
	// IndexOutOfRange: an element references a node index >= N.
	IndexOutOfRange
)

func (k Kind) String() string {
	switch k {
	case IllPosedBoundary:
		return "IllPosedBoundary"
	case DegenerateElement:
		return "DegenerateElement"
	case SingularSystem:
		return "SingularSystem"
	case InvalidMaterial:
		return "InvalidMaterial"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	}
	return "Unknown"
}

// Error is a structured report naming the offending entity. NodeID,
// ElementID and Dof are -1 when not applicable.
type Error struct {
	Kind      Kind
	Msg       string
	NodeID    int
	ElementID int
	Dof       int
}

func (e *Error) Error() string {
	loc := ""
	if e.NodeID >= 0 {
		loc += io.Sf(" node=%d", e.NodeID)
	}
	if e.ElementID >= 0 {
		loc += io.Sf(" element=%d", e.ElementID)
	}
	if e.Dof >= 0 {
		loc += io.Sf(" dof=%d", e.Dof)
	}
	return io.Sf("%s:%s %s", e.Kind, loc, e.Msg)
}

// New builds an Error with all locators defaulted to "not applicable".
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(format, args...), NodeID: -1, ElementID: -1, Dof: -1}
}

// AtNode sets the offending node id and returns the receiver for chaining.
func (e *Error) AtNode(id int) *Error { e.NodeID = id; return e }

// AtElement sets the offending element id and returns the receiver for chaining.
func (e *Error) AtElement(id int) *Error { e.ElementID = id; return e }

// AtDof sets the offending DOF index and returns the receiver for chaining.
func (e *Error) AtDof(d int) *Error { e.Dof = d; return e }
