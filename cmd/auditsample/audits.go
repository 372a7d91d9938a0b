// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import "github.com/ckoshikumo/audit"

var _ = audit.Test("mean of values", func(t *audit.T) {
	m, err := Mean(1, 2, 3, 6)
	t.FatalOn(err)
	t.Eq(3.0, m)
})

var _ = audit.Test("mean of nothing fails", func(t *audit.T) {
	_, err := Mean()
	t.ErrIs(err, ErrEmpty)
})

var _ = audit.Test("median of odd and even counts", func(t *audit.T) {
	odd, err := Median(5, 1, 3)
	t.FatalOn(err)
	t.Eq(3.0, odd)
	even, err := Median(4, 1, 3, 2)
	t.FatalOn(err)
	t.Eq(2.5, even)
})

var _ = audit.Test("median keeps the input order", func(t *audit.T) {
	vv := []float64{3, 1, 2}
	_, err := Median(vv...)
	t.FatalIfNot(err == nil)
	t.Eq([]float64{3, 1, 2}, vv)
})

var _ = audit.Test("mean lies between minimum and maximum", func(t *audit.T) {
	m, err := Mean(2, 9, 4)
	t.FatalOn(err)
	audit.Ge(t, m, 2.0)
	audit.Le(t, m, 9.0)
})
