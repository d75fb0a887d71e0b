// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotstats

import "gonum.org/v1/gonum/num/quat"

// IdentityTransform is the no-op reparameterization of the quaternion
// domain. Scalar distributions reshape their support through a
// dist.Transform; unit quaternions already occupy their full domain,
// so the rotation distributions expose this transform to any code
// that expects one.
type IdentityTransform struct{}

func (IdentityTransform) Forward(q quat.Number) quat.Number { return q }

func (IdentityTransform) Inverse(q quat.Number) quat.Number { return q }
