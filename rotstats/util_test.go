// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-8
}

func aeqVec(expect, got r3.Vec) bool {
	return aeq(expect.X, got.X) && aeq(expect.Y, got.Y) && aeq(expect.Z, got.Z)
}

func aeqQuat(expect, got quat.Number) bool {
	return aeq(expect.Real, got.Real) && aeq(expect.Imag, got.Imag) &&
		aeq(expect.Jmag, got.Jmag) && aeq(expect.Kmag, got.Kmag)
}

// rotX returns the quaternion rotating by theta radians about the x
// axis.
func rotX(theta float64) quat.Number {
	return ExpMap(r3.Vec{X: theta})
}
