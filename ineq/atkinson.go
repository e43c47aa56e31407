// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultEpsilon is the conventional Atkinson aversion parameter.
const DefaultEpsilon = 1

// epsilonTol bounds the region around one in which epsilon selects
// the geometric mean form of the Atkinson EDE.
const epsilonTol = 1e-6

// AtkinsonEDE returns the Atkinson equally-distributed equivalent of
// s. Every value of s must be strictly positive; the Atkinson
// measures are only defined for desirable quantities such as income.
//
// For epsilon != 1 the EDE is the power mean of order 1-epsilon,
//
//	ede = ( Σ wᵢ·xᵢ^(1-epsilon) / Σ wᵢ )^(1/(1-epsilon))
//
// and at epsilon == 1 its limit, the weighted geometric mean. Larger
// epsilon weighs the low end of the distribution more heavily. By
// convention epsilon >= 0; a negative epsilon (inequality-loving) is
// accepted but unconventional.
func AtkinsonEDE(s Sample, epsilon float64) (float64, error) {
	if err := checkAtkinson(s, epsilon); err != nil {
		return 0, err
	}
	return atkinsonEDE(s, epsilon), nil
}

func checkAtkinson(s Sample, epsilon float64) error {
	if err := s.check(); err != nil {
		return err
	}
	if math.IsNaN(epsilon) {
		return fmt.Errorf("%w (NaN)", ErrInvalidParameter)
	}
	for _, x := range s.Xs {
		if x <= 0 {
			return fmt.Errorf("%w (non-positive value %v)", ErrDomain, x)
		}
	}
	return nil
}

func atkinsonEDE(s Sample, epsilon float64) float64 {
	if math.Abs(epsilon-1) < epsilonTol {
		return stat.GeometricMean(s.Xs, s.Weights)
	}
	// Power mean of order 1-epsilon, computed in log space so
	// large exponents cannot overflow.
	zs := make([]float64, len(s.Xs))
	for i, x := range s.Xs {
		zs[i] = (1 - epsilon) * math.Log(x)
	}
	return math.Exp(s.logMeanExp(zs) / (1 - epsilon))
}

// AtkinsonIndex returns the Atkinson inequality index of s,
// 1 - EDE/mean, a value in [0, 1] where 0 is perfect equality.
func AtkinsonIndex(s Sample, epsilon float64) (float64, error) {
	ede, err := AtkinsonEDE(s, epsilon)
	if err != nil {
		return 0, err
	}
	m := s.Mean()
	if m == 0 {
		// Unreachable for strictly positive values, but guard
		// against underflow of the weighted mean.
		return 0, fmt.Errorf("%w (zero mean)", ErrUndefined)
	}
	return 1 - ede/m, nil
}

// AtkinsonAdjustedIndex returns the Atkinson index adjusted for
// undesirable quantities, EDE/mean - 1, so that a larger value again
// means more inequality. Conventionally called with a negative
// epsilon.
func AtkinsonAdjustedIndex(s Sample, epsilon float64) (float64, error) {
	ede, err := AtkinsonEDE(s, epsilon)
	if err != nil {
		return 0, err
	}
	m := s.Mean()
	if m == 0 {
		return 0, fmt.Errorf("%w (zero mean)", ErrUndefined)
	}
	return ede/m - 1, nil
}
