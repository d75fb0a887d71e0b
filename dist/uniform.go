// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// Uniform is the continuous uniform distribution on [Min, Max).
type Uniform struct {
	Min, Max float64
}

func (u Uniform) PDF(x float64) float64 {
	if x < u.Min || x >= u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

func (u Uniform) PDFEach(xs []float64) []float64 {
	return mapEach(u.PDF, xs)
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.Min:
		return 0
	case x >= u.Max:
		return 1
	}
	return (x - u.Min) / (u.Max - u.Min)
}

func (u Uniform) CDFEach(xs []float64) []float64 {
	return mapEach(u.CDF, xs)
}

func (u Uniform) InvCDF(y float64) float64 {
	return u.Min + y*(u.Max-u.Min)
}

func (u Uniform) InvCDFEach(ys []float64) []float64 {
	return mapEach(u.InvCDF, ys)
}

func (u Uniform) Bounds() (float64, float64) {
	return u.Min, u.Max
}

func (u Uniform) Rand(rng *rand.Rand) float64 {
	return u.Min + rng.Float64()*(u.Max-u.Min)
}
