// Copyright 2025 The Minigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package display provides presentation helpers for scalar values and
// gradients.
//
// Splitting a real number into sign, integer, and fractional components is
// purely a formatting concern: the graph engine stores and produces plain
// float64 values, and nothing in this package feeds back into computation.
package display

import (
	"math"
	"strconv"
	"strings"

	"github.com/shahabhishek1729/minigrad/autodiff"
)

// Parts is a real number split at the decimal point.
//
// Digits is the number of decimal digits captured in Frac, so
// Sign * (Int + Frac/10^Digits) reconstructs the number. Inputs must be
// finite; values whose integer or fractional digit string exceeds a uint64
// are not representable.
type Parts struct {
	Sign   int
	Int    uint64
	Frac   uint64
	Digits int
}

// Split decomposes x into its display components.
func Split(x float64) Parts {
	sign := 1
	if x < 0 {
		sign = -1
	}

	if x == math.Floor(x) {
		return Parts{Sign: sign, Int: uint64(math.Abs(x)), Frac: 0, Digits: 1}
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	i, _ := strconv.ParseUint(intPart, 10, 64)
	f, _ := strconv.ParseUint(fracPart, 10, 64)

	return Parts{Sign: sign, Int: i, Frac: f, Digits: len(fracPart)}
}

// Join reconstructs the real number from its components.
func (p Parts) Join() float64 {
	return float64(p.Sign) * (float64(p.Int) + float64(p.Frac)/math.Pow(10, float64(p.Digits)))
}

// String renders the joined number in fixed notation.
func (p Parts) String() string {
	return strconv.FormatFloat(p.Join(), 'f', -1, 64)
}

// Node reads a node's current value and gradient as display components.
func Node(s *autodiff.Scalar) (value, grad Parts) {
	return Split(s.Value()), Split(s.Grad())
}
