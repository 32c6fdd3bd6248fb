// Copyright 2025 The Minigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for reverse-mode automatic
// differentiation over scalar values.
//
// An expression is built out of Scalar nodes: leaves hold user-supplied
// values, and every binary operation creates a new node referencing its
// operands. Calling Backward on a terminal node computes the partial
// derivative of that node with respect to every node it depends on.
//
// Example:
//
//	a := autodiff.New(-4.0, "a")
//	b := autodiff.New(2.0, "b")
//	c := a.Add(b)
//	d := a.Mul(b)
//	e, err := d.Div(c)
//	if err != nil {
//	    // divisor was exactly zero
//	}
//
//	e.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // ∂e/∂a, ∂e/∂b
//
// Gradients accumulate across Backward calls. Use ZeroGrad to reset a
// graph before reusing it with a different terminal.
package autodiff

import (
	"github.com/shahabhishek1729/minigrad/internal/autodiff"
)

// Scalar is a real-valued node in a computation graph.
type Scalar = autodiff.Scalar

// Op identifies the operation that produced a Scalar.
type Op = autodiff.Op

// Supported operations. The set is closed; see the Op documentation for
// what extending it involves.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
)

// ErrDivisionByZero is returned by Scalar.Div when the divisor's value is
// exactly zero.
var ErrDivisionByZero = autodiff.ErrDivisionByZero

// New creates a leaf node holding value.
//
// The label is a display name carried along for debugging; it never
// affects computation.
func New(value float64, label string) *Scalar {
	return autodiff.New(value, label)
}
