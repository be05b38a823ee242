// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"errors"
	"fmt"
	"math"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
)

// sentinel errors for classification with errors.Is
var (
	ErrInvalidMaterialState = mflow.ErrInvalidState
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrSolverDivergence     = errors.New("solver divergence")
	ErrIntegrationFailure   = errors.New("integration failure")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

// Kind classifies numerical failures
type Kind string

// error kinds
const (
	KindInvalidMaterialState Kind = "invalid_material_state"
	KindInvalidGeometry      Kind = "invalid_geometry"
	KindSolverDivergence     Kind = "solver_divergence"
	KindIntegrationFailure   Kind = "integration_failure"
	KindInvalidConfig        Kind = "invalid_config"
)

// sentinel returns the sentinel error matching a kind
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidMaterialState:
		return ErrInvalidMaterialState
	case KindInvalidGeometry:
		return ErrInvalidGeometry
	case KindSolverDivergence:
		return ErrSolverDivergence
	case KindIntegrationFailure:
		return ErrIntegrationFailure
	case KindInvalidConfig:
		return ErrInvalidConfig
	}
	return nil
}

// Error wraps a numerical failure with the step and the layer where it occurred
type Error struct {
	Op       string  // step; e.g. "bonding", "feb.force"
	Kind     Kind    // classification
	Layer    string  // "upper", "lower" or empty
	Iterate  float64 // last solver iterate (SolverDivergence only)
	Residual float64 // residual at Iterate (SolverDivergence only)
	Err      error   // underlying error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Op
	var inner *Error
	if errors.As(e.Err, &inner) {
		if e.Layer != "" && e.Layer != inner.Layer {
			s += fmt.Sprintf(" (layer=%s)", e.Layer)
		}
		return s + ": " + e.Err.Error()
	}
	s += fmt.Sprintf(": %s", e.Kind)
	if e.Layer != "" {
		s += fmt.Sprintf(" (layer=%s)", e.Layer)
	}
	if e.Kind == KindSolverDivergence {
		s += fmt.Sprintf(" (x=%g, res=%g)", e.Iterate, e.Residual)
	}
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel of this error's kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// IsKind tells whether err (or any error it wraps) has the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// newError creates an Error. Kind is taken from err when err already is an *Error
// or wraps an invalid material state; otherwise kind is used
func newError(op string, kind Kind, layer string, err error) *Error {
	var inner *Error
	if errors.As(err, &inner) {
		kind = inner.Kind
		if layer == "" {
			layer = inner.Layer
		}
		out := &Error{Op: op, Kind: kind, Layer: layer, Err: err}
		if kind == KindSolverDivergence {
			out.Iterate, out.Residual = inner.Iterate, inner.Residual
		}
		return out
	}
	if errors.Is(err, ErrInvalidMaterialState) {
		kind = KindInvalidMaterialState
	}
	return &Error{Op: op, Kind: kind, Layer: layer, Err: err}
}

// divergence creates a SolverDivergence error
func divergence(op string, x, res float64, err error) *Error {
	return &Error{Op: op, Kind: KindSolverDivergence, Iterate: x, Residual: res, Err: err}
}

// finite tells whether all values are finite numbers
func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
