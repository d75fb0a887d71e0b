// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// Exponential is an exponential distribution with rate parameter
// Rate. Its support is [0, ∞).
type Exponential struct {
	Rate float64
}

func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e Exponential) PDFEach(xs []float64) []float64 {
	return mapEach(e.PDF, xs)
}

func (e Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-e.Rate * x)
}

func (e Exponential) CDFEach(xs []float64) []float64 {
	return mapEach(e.CDF, xs)
}

func (e Exponential) InvCDF(y float64) float64 {
	return -math.Log1p(-y) / e.Rate
}

func (e Exponential) InvCDFEach(ys []float64) []float64 {
	return mapEach(e.InvCDF, ys)
}

func (e Exponential) Bounds() (float64, float64) {
	return 0, e.InvCDF(0.9999)
}

func (e Exponential) Rand(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / e.Rate
}
