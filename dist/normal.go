// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = Normal{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n Normal) PDF(x float64) float64 {
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n Normal) PDFEach(xs []float64) []float64 {
	if n.Mu == 0 && n.Sigma == 1 {
		// Standard normal fast path
		return mapEach(func(x float64) float64 {
			return math.Exp(-x*x/2) * invSqrt2Pi
		}, xs)
	}
	a := -1 / (2 * n.Sigma * n.Sigma)
	b := invSqrt2Pi / n.Sigma
	return mapEach(func(x float64) float64 {
		z := x - n.Mu
		return math.Exp(z*z*a) * b
	}, xs)
}

func (n Normal) CDF(x float64) float64 {
	return math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2)) / 2
}

func (n Normal) CDFEach(xs []float64) []float64 {
	return mapEach(n.CDF, xs)
}

func (n Normal) InvCDF(y float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.Quantile(y)
}

func (n Normal) InvCDFEach(ys []float64) []float64 {
	return mapEach(n.InvCDF, ys)
}

func (n Normal) Bounds() (float64, float64) {
	return n.Mu - 4*n.Sigma, n.Mu + 4*n.Sigma
}

func (n Normal) Rand(rng *rand.Rand) float64 {
	return n.Mu + n.Sigma*rng.NormFloat64()
}
