// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rotmean reads one quaternion per line from stdin as
// whitespace-separated "w x y z" components, optionally followed by a
// weight, and describes the weighted average orientation of the
// collection: the mean quaternion, the equivalent rotation vector,
// and the tangent-space covariance about the mean.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/num/quat"

	"github.com/aclements/go-pardist/rotstats"
)

func main() {
	qs, ws := readInput(os.Stdin)

	mean, cov, err := rotstats.MeanAndCov(qs, ws, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("N %d\n", len(qs))
	fmt.Printf("mean quaternion  % .6g % .6g % .6g % .6g\n", mean.Real, mean.Imag, mean.Jmag, mean.Kmag)
	v := rotstats.LogMap(mean)
	fmt.Printf("rotation vector  % .6g % .6g % .6g\n", v.X, v.Y, v.Z)

	fmt.Println("covariance (rad²)")
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			fmt.Printf(" % .6g", cov.At(r, c))
		}
		fmt.Println()
	}
}

func readInput(r io.Reader) (qs []quat.Number, ws []float64) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 && len(fields) != 5 {
			fmt.Fprintf(os.Stderr, "line %d: want \"w x y z [weight]\", got %d fields\n", line, len(fields))
			os.Exit(1)
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
				os.Exit(1)
			}
			vals[i] = v
		}
		q := quat.Number{Real: vals[0], Imag: vals[1], Jmag: vals[2], Kmag: vals[3]}
		if n := quat.Abs(q); n > 0 {
			// Tolerate small norm drift in the input.
			q = quat.Scale(1/n, q)
		}
		qs = append(qs, q)
		w := 1.0
		if len(vals) == 5 {
			w = vals[4]
		}
		ws = append(ws, w)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}
