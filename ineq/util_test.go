// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

// onetofive is the distribution most of the pinned regression values
// below were computed for.
var onetofive = []float64{1, 2, 3, 4, 5}

// descending weights paired with onetofive in the weighted pinned
// values; the weighted mean is 7/3.
var weights54321 = []float64{5, 4, 3, 2, 1}
