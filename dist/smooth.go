// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SmoothedUniform is a uniform distribution on [Min, Max) convolved
// with a Gaussian of standard deviation Sigma, giving a density with
// smooth rather than hard edges. With Sigma = 0 it degenerates to the
// plain uniform distribution.
type SmoothedUniform struct {
	Min, Max, Sigma float64
}

// stdPhi is the standard normal CDF.
func stdPhi(t float64) float64 {
	return math.Erfc(-t/math.Sqrt2) / 2
}

// stdPdf is the standard normal density.
func stdPdf(t float64) float64 {
	return math.Exp(-t*t/2) * invSqrt2Pi
}

func (s SmoothedUniform) PDF(x float64) float64 {
	if s.Sigma == 0 {
		return Uniform{s.Min, s.Max}.PDF(x)
	}
	return (stdPhi((x-s.Min)/s.Sigma) - stdPhi((x-s.Max)/s.Sigma)) / (s.Max - s.Min)
}

func (s SmoothedUniform) PDFEach(xs []float64) []float64 {
	return mapEach(s.PDF, xs)
}

func (s SmoothedUniform) CDF(x float64) float64 {
	if s.Sigma == 0 {
		return Uniform{s.Min, s.Max}.CDF(x)
	}
	// Antiderivative of Φ(u/σ) in u is u·Φ(u/σ) + σ·φ(u/σ).
	h := func(u float64) float64 {
		return u*stdPhi(u/s.Sigma) + s.Sigma*stdPdf(u/s.Sigma)
	}
	return (h(x-s.Min) - h(x-s.Max)) / (s.Max - s.Min)
}

func (s SmoothedUniform) CDFEach(xs []float64) []float64 {
	return mapEach(s.CDF, xs)
}

func (s SmoothedUniform) InvCDF(y float64) float64 {
	if s.Sigma == 0 {
		return Uniform{s.Min, s.Max}.InvCDF(y)
	}
	// The CDF is strictly increasing but has no closed-form
	// inverse; bisect over the effective support.
	lo, hi := s.Bounds()
	for i := 0; i < 200 && lo < hi; i++ {
		mid := lo + (hi-lo)/2
		if s.CDF(mid) < y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func (s SmoothedUniform) InvCDFEach(ys []float64) []float64 {
	return mapEach(s.InvCDF, ys)
}

func (s SmoothedUniform) Bounds() (float64, float64) {
	return s.Min - 8*s.Sigma, s.Max + 8*s.Sigma
}

func (s SmoothedUniform) Rand(rng *rand.Rand) float64 {
	// A uniform draw plus Gaussian noise is exactly the
	// convolution.
	return s.Min + rng.Float64()*(s.Max-s.Min) + s.Sigma*rng.NormFloat64()
}

// TruncatedNormal is a normal distribution with mean Mu and standard
// deviation Sigma conditioned on the interval [Lo, Hi].
type TruncatedNormal struct {
	Mu, Sigma float64
	Lo, Hi    float64
}

// mass returns the parent CDF at Lo and the probability mass of
// [Lo, Hi] under the parent normal.
func (t TruncatedNormal) mass() (cdfLo, z float64) {
	parent := Normal{t.Mu, t.Sigma}
	cdfLo = parent.CDF(t.Lo)
	return cdfLo, parent.CDF(t.Hi) - cdfLo
}

func (t TruncatedNormal) PDF(x float64) float64 {
	if x < t.Lo || x > t.Hi {
		return 0
	}
	_, z := t.mass()
	return Normal{t.Mu, t.Sigma}.PDF(x) / z
}

func (t TruncatedNormal) PDFEach(xs []float64) []float64 {
	return mapEach(t.PDF, xs)
}

func (t TruncatedNormal) CDF(x float64) float64 {
	switch {
	case x < t.Lo:
		return 0
	case x >= t.Hi:
		return 1
	}
	cdfLo, z := t.mass()
	return (Normal{t.Mu, t.Sigma}.CDF(x) - cdfLo) / z
}

func (t TruncatedNormal) CDFEach(xs []float64) []float64 {
	return mapEach(t.CDF, xs)
}

func (t TruncatedNormal) InvCDF(y float64) float64 {
	cdfLo, z := t.mass()
	return distuv.Normal{Mu: t.Mu, Sigma: t.Sigma}.Quantile(cdfLo + y*z)
}

func (t TruncatedNormal) InvCDFEach(ys []float64) []float64 {
	return mapEach(t.InvCDF, ys)
}

func (t TruncatedNormal) Bounds() (float64, float64) {
	return t.Lo, t.Hi
}

func (t TruncatedNormal) Rand(rng *rand.Rand) float64 {
	// Inverse-transform sampling; exact, and branch-free for
	// parallel lanes, unlike rejection from the parent normal.
	return t.InvCDF(rng.Float64())
}
