// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Gini returns the Gini index of s: the mean absolute difference
// between all pairs of values, divided by twice the mean.
// Equivalently, it is twice the area between the Lorenz curve of s
// and the line of perfect equality.
//
// For non-negative distributions the index lies in [0, 1], where 0
// is perfect equality. Negative values are accepted, but can push
// the index outside [0, 1].
func Gini(s Sample) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	xs, ws := s.sorted()

	if ws == nil {
		// Closed form over the sorted values, avoiding the
		// O(n²) pairwise sum:
		//
		//	gini = 2·Σ i·x₍ᵢ₎ / (n·Σ x₍ᵢ₎) - (n+1)/n
		n := float64(len(xs))
		total := floats.Sum(xs)
		if total == 0 {
			return 0, fmt.Errorf("%w (zero total value)", ErrUndefined)
		}
		var rankSum float64
		for i, x := range xs {
			rankSum += float64(i+1) * x
		}
		return 2*rankSum/(n*total) - (n+1)/n, nil
	}

	// Trapezoid rule over the Lorenz curve.
	_, ls, err := lorenz(xs, ws)
	if err != nil {
		return 0, err
	}
	totalW := floats.Sum(ws)
	var area, prev float64
	for i, l := range ls {
		area += (prev + l) * ws[i] / totalW
		prev = l
	}
	return 1 - area, nil
}

// Lorenz returns the Lorenz curve of s: after sorting by value
// ascending, ps[i] is the cumulative share of total weight and ls[i]
// the cumulative share of total value held by the i+1 smallest
// values. Both shares end at 1; the implicit starting point (0, 0)
// is not included.
func Lorenz(s Sample) (ps, ls []float64, err error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	xs, ws := s.sorted()
	return lorenz(xs, ws)
}

// lorenz computes cumulative weight and value shares over values
// already sorted ascending. ws may be nil for unit weights.
func lorenz(xs, ws []float64) (ps, ls []float64, err error) {
	ps = make([]float64, len(xs))
	ls = make([]float64, len(xs))
	for i, x := range xs {
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		ps[i] = w
		ls[i] = w * x
	}
	floats.CumSum(ps, ps)
	floats.CumSum(ls, ls)
	totalW, totalV := ps[len(ps)-1], ls[len(ls)-1]
	if totalV == 0 {
		return nil, nil, fmt.Errorf("%w (zero total value)", ErrUndefined)
	}
	floats.Scale(1/totalW, ps)
	floats.Scale(1/totalV, ls)
	return ps, ls, nil
}
