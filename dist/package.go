// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides closed-form scalar probability distributions with
// fixed-size, allocation-free representations, suitable for evaluating
// densities and drawing samples identically on one core or across many
// parallel lanes. The batched PDFEach/CDFEach entry points evaluate
// element-wise with no interaction between elements.
package dist // import "github.com/aclements/go-pardist/dist"
