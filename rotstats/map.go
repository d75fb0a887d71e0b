// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExpMap maps a rotation vector (axis times angle, in radians) to the
// unit quaternion that applies that rotation. This is the exponential
// map from the tangent space at the identity onto the rotation group.
//
// The mapping goes through the quaternion exponential of the pure
// quaternion v/2, which is well-defined as ‖v‖ → 0, so there is no
// guard branch around a vanishing magnitude. The result is
// sign-canonicalized with NonzeroSign and has unit norm for all
// finite v.
func ExpMap(v r3.Vec) quat.Number {
	return NonzeroSign(quat.Exp(quat.Number{Imag: v.X / 2, Jmag: v.Y / 2, Kmag: v.Z / 2}))
}

// LogMap maps a unit quaternion to the rotation vector that generates
// it, inverting ExpMap. The rotation angle is recovered in atan2 form
// from (‖imaginary part‖, scalar part), so the result stays finite and
// bounded both near the identity and near the antipode (scalar part
// close to −1), where an acos formulation would lose precision.
//
// LogMap(identity) is exactly the zero vector. For ‖v‖ < π,
// LogMap(ExpMap(v)) ≈ v to floating-point tolerance.
func LogMap(q quat.Number) r3.Vec {
	l := quat.Log(q)
	return r3.Vec{X: 2 * l.Imag, Y: 2 * l.Jmag, Z: 2 * l.Kmag}
}

// NonzeroSign canonicalizes the double-cover sign of a quaternion: q
// and −q represent the same rotation, and NonzeroSign picks the
// representative whose scalar part is non-negative. The test is on the
// sign bit, so a scalar part of −0 also flips; near-identity results
// therefore never intermittently report a "negative" scalar part due
// to floating-point sign noise. The zero quaternion is not a valid
// input (no unit quaternion is zero), so the result is never zero.
func NonzeroSign(q quat.Number) quat.Number {
	if math.Signbit(q.Real) {
		return quat.Scale(-1, q)
	}
	return q
}

// ExpMapEach applies ExpMap to each vector in vs.
func ExpMapEach(vs []r3.Vec) []quat.Number {
	qs := make([]quat.Number, len(vs))
	for i, v := range vs {
		qs[i] = ExpMap(v)
	}
	return qs
}

// ExpMapCols applies ExpMap to each column of the 3×n matrix m,
// returning one quaternion per column. It returns ErrShapeMismatch if
// m does not have exactly three rows.
func ExpMapCols(m mat.Matrix) ([]quat.Number, error) {
	r, c := m.Dims()
	if r != 3 {
		return nil, shapeMismatch(3, r)
	}
	qs := make([]quat.Number, c)
	for j := 0; j < c; j++ {
		qs[j] = ExpMap(r3.Vec{X: m.At(0, j), Y: m.At(1, j), Z: m.At(2, j)})
	}
	return qs, nil
}

// LogMapEach applies LogMap to each quaternion in qs.
func LogMapEach(qs []quat.Number) []r3.Vec {
	vs := make([]r3.Vec, len(qs))
	for i, q := range qs {
		vs[i] = LogMap(q)
	}
	return vs
}
