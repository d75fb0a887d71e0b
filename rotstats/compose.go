// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compose applies the rotation pert on top of the reference
// orientation ref. This is quaternion multiplication ref*pert with the
// result sign-canonicalized by NonzeroSign. Quaternion multiplication
// is non-commutative; pert is interpreted in the body frame of ref.
func Compose(ref, pert quat.Number) quat.Number {
	return NonzeroSign(quat.Mul(ref, pert))
}

// ComposeRot perturbs the orientation ref by the rotation vector v.
// It is equivalent to Compose(ref, ExpMap(v)).
func ComposeRot(ref quat.Number, v r3.Vec) quat.Number {
	return Compose(ref, ExpMap(v))
}

// Difference returns the rotation vector that takes the orientation
// ref to the orientation sample, inverting ComposeRot: for ‖v‖ < π,
// Difference(ComposeRot(q, v), q) ≈ v.
//
// The result is LogMap(ref⁻¹ * sample), where the inverse of a unit
// quaternion is its conjugate. The relative quaternion's double-cover
// sign is canonicalized by NonzeroSign before the log: sample and ref
// are each canonical representatives, which can place ref⁻¹·sample on
// the negative-scalar sheet, and the raw log of that would be the
// 2π-complement of the short-way vector. The returned vector always
// has magnitude ≤ π. The operand order matters: this is the
// perturbation expressed in the body frame of ref, not of sample.
func Difference(sample, ref quat.Number) r3.Vec {
	return LogMap(NonzeroSign(quat.Mul(quat.Conj(ref), sample)))
}

// ComposeScalar is the compose operator's fallback for plain numeric
// values, for callers that are polymorphic over "rotation or ordinary
// real value": ordinary addition.
func ComposeScalar[T constraints.Float](a, b T) T {
	return a + b
}

// DifferenceScalar is the difference operator's fallback for plain
// numeric values: ordinary subtraction.
func DifferenceScalar[T constraints.Float](a, b T) T {
	return a - b
}
