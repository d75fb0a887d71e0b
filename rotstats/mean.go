// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Mean returns the weighted average orientation of qs using the
// eigen-decomposition method of Markley et al., "Averaging
// Quaternions" (2007): the mean is the eigenvector belonging to the
// largest eigenvalue of the weighted sum of the quaternions' 4×4
// outer products. Because outer products are sign-invariant, q and −q
// contribute identically, so the double-cover sign of the inputs does
// not matter. The returned mean is sign-canonicalized by NonzeroSign.
//
// A nil ws means uniform weights. Mean returns ErrDegenerateWeights
// if qs is empty or the weights sum to zero, and ErrShapeMismatch if
// ws is non-nil with a length different from len(qs).
func Mean(qs []quat.Number, ws []float64) (quat.Number, error) {
	if err := checkWeights(len(qs), ws); err != nil {
		return quat.Number{}, err
	}

	m := mat.NewSymDense(4, nil)
	x := mat.NewVecDense(4, nil)
	for i, q := range qs {
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		if w == 0 {
			continue
		}
		x.SetVec(0, q.Real)
		x.SetVec(1, q.Imag)
		x.SetVec(2, q.Jmag)
		x.SetVec(3, q.Kmag)
		m.SymRankOne(m, w, x)
	}

	var eig mat.EigenSym
	if !eig.Factorize(m, true) {
		// Symmetric eigen-decomposition can only fail to
		// converge for pathological input (NaN/Inf weights or
		// components).
		return quat.Number{}, fmt.Errorf("rotstats: eigen-decomposition failed for accumulated outer products")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come back in ascending order, so the dominant
	// eigenvector is the last column. It is already unit length.
	const last = 3
	return NonzeroSign(quat.Number{
		Real: vecs.At(0, last),
		Imag: vecs.At(1, last),
		Jmag: vecs.At(2, last),
		Kmag: vecs.At(3, last),
	}), nil
}

// MeanEach maps Mean over the outer axis of a rank-2 collection,
// computing one weighted mean per inner sequence with the shared
// weight vector ws.
func MeanEach(batches [][]quat.Number, ws []float64) ([]quat.Number, error) {
	means := make([]quat.Number, len(batches))
	for i, qs := range batches {
		m, err := Mean(qs, ws)
		if err != nil {
			return nil, err
		}
		means[i] = m
	}
	return means, nil
}

// MeanAndCov returns the weighted mean orientation of qs together
// with the 3×3 covariance, in tangent space about the mean, of the
// weighted collection. The covariance is the weighted sum of outer
// products of Difference(qs[i], mean) — the differences are already
// deviations, so no further centering is applied — normalized by Σw
// when corrected is false, or by the reliability-weight denominator
// Σw − Σw²/Σw when corrected is true.
//
// With a single effective sample the corrected denominator is zero
// and the covariance entries are ±Inf or NaN; as with an ordinary
// sample variance at n = 1, the bias-corrected estimate does not
// exist. The weight errors are the same as for Mean.
func MeanAndCov(qs []quat.Number, ws []float64, corrected bool) (quat.Number, *mat.SymDense, error) {
	mean, err := Mean(qs, ws)
	if err != nil {
		return quat.Number{}, nil, err
	}

	cov := mat.NewSymDense(3, nil)
	x := mat.NewVecDense(3, nil)
	inv := quat.Conj(mean)
	var wsum, w2sum float64
	for i, q := range qs {
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		wsum += w
		w2sum += w * w
		if w == 0 {
			continue
		}
		d := LogMap(NonzeroSign(quat.Mul(inv, q)))
		x.SetVec(0, d.X)
		x.SetVec(1, d.Y)
		x.SetVec(2, d.Z)
		cov.SymRankOne(cov, w, x)
	}

	denom := wsum
	if corrected {
		denom = wsum - w2sum/wsum
	}
	cov.ScaleSym(1/denom, cov)
	return mean, cov, nil
}

// Cov is MeanAndCov without the mean. The discarded mean is the same
// value Mean returns for the same inputs.
func Cov(qs []quat.Number, ws []float64, corrected bool) (*mat.SymDense, error) {
	_, cov, err := MeanAndCov(qs, ws, corrected)
	return cov, err
}
