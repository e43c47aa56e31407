// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import "errors"

// Errors reported by the measures in this package. Returned errors
// wrap these sentinels with detail about the offending value, so
// callers should test for them with errors.Is.
var (
	// ErrEmptyDistribution is returned when a distribution has no
	// values.
	ErrEmptyDistribution = errors.New("ineq: empty distribution")

	// ErrNaN is returned when a distribution value, a weight, or
	// a parameter is NaN.
	ErrNaN = errors.New("ineq: NaN in input")

	// ErrLengthMismatch is returned when the weights of a Sample
	// do not have the same length as its values.
	ErrLengthMismatch = errors.New("ineq: weights length does not match values length")

	// ErrInvalidWeight is returned for a negative weight, or for
	// weights that sum to zero.
	ErrInvalidWeight = errors.New("ineq: invalid weight")

	// ErrInvalidParameter is returned for an aversion parameter
	// outside its domain, such as a negative kappa.
	ErrInvalidParameter = errors.New("ineq: invalid aversion parameter")

	// ErrDomain is returned when a distribution contains values a
	// measure is not defined for, such as non-positive values
	// passed to the Atkinson measures.
	ErrDomain = errors.New("ineq: value outside measure domain")

	// ErrUndefined is returned when a measure is undefined for
	// the given distribution, such as an index of a zero-mean
	// distribution.
	ErrUndefined = errors.New("ineq: measure undefined for distribution")
)
