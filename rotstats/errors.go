// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when two collections that must be
// reconciled element-wise have incompatible lengths, or a matrix of
// column vectors has the wrong number of rows. Collections are never
// silently truncated or padded.
var ErrShapeMismatch = errors.New("rotstats: shape mismatch")

// ErrDegenerateWeights is returned when a weighted mean or covariance
// is requested for an empty collection or for weights that sum to zero.
// The weighted average orientation is undefined in both cases.
var ErrDegenerateWeights = errors.New("rotstats: degenerate weights")

func shapeMismatch(want, got int) error {
	return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, want, got)
}

// checkWeights validates a weight vector against a collection of n
// elements. A nil ws means uniform weights, which are degenerate only
// for an empty collection.
func checkWeights(n int, ws []float64) error {
	if n == 0 {
		return fmt.Errorf("%w: empty collection", ErrDegenerateWeights)
	}
	if ws == nil {
		return nil
	}
	if len(ws) != n {
		return shapeMismatch(n, len(ws))
	}
	sum := 0.0
	for _, w := range ws {
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weights sum to %v", ErrDegenerateWeights, sum)
	}
	return nil
}
