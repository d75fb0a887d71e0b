// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// A Transform is an invertible reparameterization of a distribution's
// domain. Forward maps from the distribution's natural domain to the
// transformed domain and Inverse maps back: Inverse(Forward(x)) = x
// for all x in the domain.
type Transform interface {
	Forward(x float64) float64
	Inverse(y float64) float64
}

// Identity is the no-op Transform, for distributions whose support
// already spans the domain a caller works in.
var Identity Transform = identity{}

type identity struct{}

func (identity) Forward(x float64) float64 { return x }

func (identity) Inverse(y float64) float64 { return y }

// Log transforms a positive domain to the whole real line.
var Log Transform = logTransform{}

type logTransform struct{}

func (logTransform) Forward(x float64) float64 { return math.Log(x) }

func (logTransform) Inverse(y float64) float64 { return math.Exp(y) }
