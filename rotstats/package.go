// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rotstats provides statistics over 3-D rotations represented as unit
// quaternions: the exponential/logarithmic map between rotation vectors
// and quaternions, perturbation operators for composing and differencing
// orientations, and weighted mean/covariance estimators for collections
// of orientations (e.g., the particles of an orientation-tracking
// particle filter).
//
// All operations are pure functions over immutable inputs. Element-wise
// operations on collections are order-independent, so callers may
// evaluate them across parallel workers; only the final eigen-based
// reductions in Mean and MeanAndCov are inherently sequential, and those
// run once per call, not per element.
package rotstats // import "github.com/aclements/go-pardist/rotstats"
