// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "testing"

func TestInvCDFEach(t *testing.T) {
	dists := map[string]Dist{
		"Uniform":         Uniform{Min: 0, Max: 1},
		"StdNormal":       StdNormal,
		"Exponential":     Exponential{Rate: 2},
		"SmoothedUniform": SmoothedUniform{Min: 0, Max: 1, Sigma: 0.1},
		"TruncatedNormal": TruncatedNormal{Mu: 0, Sigma: 1, Lo: -1, Hi: 1},
	}
	ys := []float64{0.1, 0.5, 0.9}
	for name, d := range dists {
		got := d.InvCDFEach(ys)
		for i, y := range ys {
			if want := d.InvCDF(y); !aeq(want, got[i]) {
				t.Errorf("%s.InvCDFEach[%d] = %v, want %v", name, i, got[i], want)
			}
		}
	}
}
