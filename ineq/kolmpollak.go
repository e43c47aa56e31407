// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ineq

import (
	"fmt"
	"math"
)

// DefaultKappa is the Kolm-Pollak aversion parameter used when the
// zero Aversion is supplied.
const DefaultKappa = 0.25

// betaTol bounds the region around zero in which beta is treated as
// exactly zero, where the exponential mean degenerates to the
// arithmetic mean.
const betaTol = 1e-6

// An Aversion selects the inequality aversion parameter for the
// Kolm-Pollak measures.
//
// If Beta is non-zero it is used directly. Beta is typically
// negative for undesirable quantities (where less is better, such as
// exposure or travel time) and positive for desirable ones.
//
// Otherwise, if Kappa is non-zero it must be positive and is scaled
// by the weighted mean of the distribution, beta = -kappa/mean.
//
// The zero value of Aversion is a reasonable default: it derives
// beta from DefaultKappa.
type Aversion struct {
	Beta  float64
	Kappa float64
}

// Beta returns an Aversion that uses beta directly.
func Beta(beta float64) Aversion { return Aversion{Beta: beta} }

// Kappa returns an Aversion that derives beta from kappa and the
// weighted mean of the distribution.
func Kappa(kappa float64) Aversion { return Aversion{Kappa: kappa} }

// resolve returns the beta to use for s.
func (av Aversion) resolve(s Sample) (float64, error) {
	if math.IsNaN(av.Beta) || math.IsNaN(av.Kappa) {
		return 0, fmt.Errorf("%w (NaN)", ErrInvalidParameter)
	}
	if av.Beta != 0 {
		return av.Beta, nil
	}
	kappa := av.Kappa
	if kappa < 0 {
		return 0, fmt.Errorf("%w (kappa = %v)", ErrInvalidParameter, kappa)
	}
	if kappa == 0 {
		kappa = DefaultKappa
	}
	m := s.Mean()
	if m == 0 {
		return 0, fmt.Errorf("%w (zero mean, cannot derive beta from kappa)", ErrUndefined)
	}
	return -kappa / m, nil
}

// KolmPollakEDE returns the Kolm-Pollak equally-distributed
// equivalent of s: the value that, received equally by every unit of
// weight, yields the same social welfare as the actual distribution.
//
//	ede = -(1/beta) · ln( Σ wᵢ·exp(-beta·xᵢ) / Σ wᵢ )
//
// Unlike the Atkinson measures, the Kolm-Pollak measures are defined
// for distributions containing zero or negative values.
func KolmPollakEDE(s Sample, av Aversion) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	beta, err := av.resolve(s)
	if err != nil {
		return 0, err
	}
	return kolmPollakEDE(s, beta), nil
}

func kolmPollakEDE(s Sample, beta float64) float64 {
	if math.Abs(beta) < betaTol {
		// Removable singularity: as beta -> 0 the exponential
		// mean converges to the arithmetic mean.
		return s.Mean()
	}
	zs := make([]float64, len(s.Xs))
	for i, x := range s.Xs {
		zs[i] = -beta * x
	}
	return -s.logMeanExp(zs) / beta
}

// KolmPollakIndex returns the Kolm-Pollak inequality index of s,
// 1 - EDE/mean. The index is 0 for a perfectly equal distribution
// and grows in magnitude with inequality. For an undesirable
// quantity (negative beta) the EDE exceeds the mean, so the index is
// negative.
func KolmPollakIndex(s Sample, av Aversion) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	beta, err := av.resolve(s)
	if err != nil {
		return 0, err
	}
	m := s.Mean()
	if m == 0 {
		return 0, fmt.Errorf("%w (zero mean)", ErrUndefined)
	}
	return 1 - kolmPollakEDE(s, beta)/m, nil
}

// KappaFromEpsilon converts the Atkinson aversion parameter epsilon
// into a Kolm-Pollak kappa for the given distribution by a least
// squares fit of the two welfare functions over the sample,
//
//	kappa = epsilon · Σ wᵢ·xᵢ / Σ wᵢ·xᵢ²
func KappaFromEpsilon(s Sample, epsilon float64) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if math.IsNaN(epsilon) {
		return 0, fmt.Errorf("%w (NaN)", ErrInvalidParameter)
	}
	var sum, sqSum float64
	for i, x := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		sum += w * x
		sqSum += w * x * x
	}
	if sqSum == 0 {
		return 0, fmt.Errorf("%w (all-zero distribution)", ErrUndefined)
	}
	return epsilon * sum / sqSum, nil
}
