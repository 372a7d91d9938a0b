// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"sort"
)

// ErrEmpty is returned for statistics of no values.
var ErrEmpty = errors.New("stats: no values")

// Mean returns the arithmetic mean of given values.
func Mean(vv ...float64) (float64, error) {
	if len(vv) == 0 {
		return 0, ErrEmpty
	}
	sum := 0.0
	for _, v := range vv {
		sum += v
	}
	return sum / float64(len(vv)), nil
}

// Median returns the median of given values which are not modified.
func Median(vv ...float64) (float64, error) {
	if len(vv) == 0 {
		return 0, ErrEmpty
	}
	sorted := append([]float64(nil), vv...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Histogram counts given values per bucket of given width starting at
// zero; negative values are counted in bucket zero.
type Histogram struct {
	width   float64
	buckets map[int]int
}

// NewHistogram returns an empty histogram of given bucket width.
func NewHistogram(width float64) *Histogram {
	return &Histogram{width: width, buckets: map[int]int{}}
}

// Add counts given values.
func (h *Histogram) Add(vv ...float64) {
	for _, v := range vv {
		b := int(v / h.width)
		if b < 0 {
			b = 0
		}
		h.buckets[b]++
	}
}

// Count returns the number of values in given bucket.
func (h *Histogram) Count(bucket int) int { return h.buckets[bucket] }

// Reset drops all counted values.
func (h *Histogram) Reset() { h.buckets = map[int]int{} }
