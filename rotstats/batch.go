// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// This file lifts Compose and Difference over collections. A
// quaternion and a rotation vector are both small fixed-size
// aggregates, so there is no implicit broadcasting to lean on: each
// single/collection combination gets its own entry point, and mixing
// two collections of different lengths is ErrShapeMismatch rather
// than truncation.

// ComposeRotEach perturbs the single reference ref by each rotation
// vector in vs, returning one quaternion per perturbation.
func ComposeRotEach(ref quat.Number, vs []r3.Vec) []quat.Number {
	qs := make([]quat.Number, len(vs))
	for i, v := range vs {
		qs[i] = ComposeRot(ref, v)
	}
	return qs
}

// ComposeRotCols perturbs ref by each column of the 3×n matrix m. It
// is equivalent to ComposeRotEach over the columns of m, and returns
// ErrShapeMismatch if m does not have exactly three rows.
func ComposeRotCols(ref quat.Number, m mat.Matrix) ([]quat.Number, error) {
	perts, err := ExpMapCols(m)
	if err != nil {
		return nil, err
	}
	qs := make([]quat.Number, len(perts))
	for i, p := range perts {
		qs[i] = Compose(ref, p)
	}
	return qs, nil
}

// ComposeRotAll applies the single perturbation v to each reference in
// refs.
func ComposeRotAll(refs []quat.Number, v r3.Vec) []quat.Number {
	pert := ExpMap(v)
	qs := make([]quat.Number, len(refs))
	for i, ref := range refs {
		qs[i] = Compose(ref, pert)
	}
	return qs
}

// ComposeRotPairs perturbs refs[i] by vs[i] for each i. The two
// collections must have the same length.
func ComposeRotPairs(refs []quat.Number, vs []r3.Vec) ([]quat.Number, error) {
	if len(refs) != len(vs) {
		return nil, shapeMismatch(len(refs), len(vs))
	}
	qs := make([]quat.Number, len(refs))
	for i, ref := range refs {
		qs[i] = ComposeRot(ref, vs[i])
	}
	return qs, nil
}

// DifferenceAll returns Difference(samples[i], ref) for each i: the
// tangent-space deviation of every sample from one common reference.
func DifferenceAll(samples []quat.Number, ref quat.Number) []r3.Vec {
	inv := quat.Conj(ref)
	vs := make([]r3.Vec, len(samples))
	for i, s := range samples {
		vs[i] = LogMap(NonzeroSign(quat.Mul(inv, s)))
	}
	return vs
}

// DifferencePairs returns Difference(samples[i], refs[i]) for each i.
// The two collections must have the same length.
func DifferencePairs(samples, refs []quat.Number) ([]r3.Vec, error) {
	if len(samples) != len(refs) {
		return nil, shapeMismatch(len(samples), len(refs))
	}
	vs := make([]r3.Vec, len(samples))
	for i, s := range samples {
		vs[i] = Difference(s, refs[i])
	}
	return vs, nil
}
