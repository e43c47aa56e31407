// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted values that a measure
// is computed over.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length as Xs, contain no negative values, and have a
	// positive sum. Weights need not sum to 1; every measure
	// normalizes by the total weight.
	Weights []float64
}

// Weight returns the total weight of the Sample. If the Sample is
// unweighted, this is the number of values.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the weighted arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	return stat.Mean(s.Xs, s.Weights)
}

// check validates the Sample against the input contract shared by
// every measure.
func (s Sample) check() error {
	if len(s.Xs) == 0 {
		return ErrEmptyDistribution
	}
	for _, x := range s.Xs {
		if math.IsNaN(x) {
			return fmt.Errorf("%w (value)", ErrNaN)
		}
	}
	if s.Weights == nil {
		return nil
	}
	if len(s.Weights) != len(s.Xs) {
		return fmt.Errorf("%w (%d values, %d weights)", ErrLengthMismatch, len(s.Xs), len(s.Weights))
	}
	var total float64
	for _, w := range s.Weights {
		if math.IsNaN(w) {
			return fmt.Errorf("%w (weight)", ErrNaN)
		}
		if w < 0 {
			return fmt.Errorf("%w (negative weight %v)", ErrInvalidWeight, w)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%w (zero total weight)", ErrInvalidWeight)
	}
	return nil
}

// sorted returns copies of the Sample's values and weights, sorted
// by value ascending. The returned weights are nil for an unweighted
// Sample.
func (s Sample) sorted() (xs, ws []float64) {
	xs = append([]float64(nil), s.Xs...)
	if s.Weights != nil {
		ws = append([]float64(nil), s.Weights...)
	}
	stat.SortWeighted(xs, ws)
	return
}

// logMeanExp returns ln(Σᵢ wᵢ·exp(zs[i]) / Σᵢ wᵢ). The sum is
// shifted by its largest term so the exponentials cannot overflow.
func (s Sample) logMeanExp(zs []float64) float64 {
	if s.Weights == nil {
		return floats.LogSumExp(zs) - math.Log(float64(len(zs)))
	}
	// ln Σ wᵢ·exp(zᵢ) = ln Σ exp(zᵢ + ln wᵢ). A zero weight
	// becomes an exp(-inf) term, which drops out of the sum.
	zws := make([]float64, len(zs))
	for i, z := range zs {
		zws[i] = z + math.Log(s.Weights[i])
	}
	return floats.LogSumExp(zws) - math.Log(s.Weight())
}
