// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestUniform(t *testing.T) {
	u := Uniform{Min: 2, Max: 4}
	testFunc(t, "Uniform{2,4}.PDF", u.PDF, map[float64]float64{
		1.9: 0,
		2:   0.5,
		3:   0.5,
		4:   0,
		5:   0,
	})
	testFunc(t, "Uniform{2,4}.CDF", u.CDF, map[float64]float64{
		1:   0,
		2:   0,
		2.5: 0.25,
		3:   0.5,
		4:   1,
		5:   1,
	})
	testFunc(t, "Uniform{2,4}.InvCDF", u.InvCDF, map[float64]float64{
		0:    2,
		0.25: 2.5,
		1:    4,
	})
}

func TestUniformRand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	u := Uniform{Min: -1, Max: 1}
	for i := 0; i < 1000; i++ {
		if x := u.Rand(rng); x < u.Min || x >= u.Max {
			t.Fatalf("draw %v outside [%v, %v)", x, u.Min, u.Max)
		}
	}
}
