// Copyright 2024 The go-ineq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ineq computes scalar inequality measures over weighted
// distributions: the Kolm-Pollak and Atkinson equally-distributed
// equivalents and indices, and the Gini index.
package ineq // import "github.com/urutau-nz/go-ineq/ineq"
