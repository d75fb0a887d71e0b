// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the probability density of this distribution
	// at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i. Elements are
	// independent, so implementations may evaluate them in any
	// order.
	PDFEach(xs []float64) []float64

	// CDF returns the cumulative distribution function at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the x for which CDF(x) = y. The value of y
	// must be in [0, 1].
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns bounds outside of which the total
	// probability mass is approximately 0.
	Bounds() (float64, float64)
}

// A Sampler is a Dist that can draw random variates. The random
// number generator is an external capability supplied by the caller;
// distributions never carry RNG state of their own.
type Sampler interface {
	Dist

	// Rand draws one variate using rng as the source of uniform
	// randomness.
	Rand(rng *rand.Rand) float64
}

var (
	_ Sampler = Uniform{}
	_ Sampler = Normal{}
	_ Sampler = Exponential{}
	_ Sampler = SmoothedUniform{}
	_ Sampler = TruncatedNormal{}
)

// mapEach applies f to each element of xs.
func mapEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
