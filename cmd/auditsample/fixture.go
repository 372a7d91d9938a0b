// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import "github.com/ckoshikumo/audit"

// hist is shared by the histogram audits; SetUp and TearDown run
// around each of them.
var hist *Histogram

// SetUp provides a histogram of bucket width 10.
func SetUp() { hist = NewHistogram(10) }

// TearDown drops the histogram's values.
func TearDown() { hist.Reset() }

func Audit_histogram_counts_per_bucket(t *audit.T) {
	hist.Add(1, 5, 12, 19, 25)
	t.Eq(2, hist.Count(0))
	t.Eq(2, hist.Count(1))
	t.Eq(1, hist.Count(2))
}

func AuditHistogramStartsEmpty(t *audit.T) {
	for b := 0; b < 3; b++ {
		t.Eq(0, hist.Count(b))
	}
}

func Audit_negative_values_count_in_the_first_bucket(t *audit.T) {
	hist.Add(-3, -40)
	t.Eq(2, hist.Count(0))
}
