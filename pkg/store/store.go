// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package store provides the append-only growable sequence audit keeps
// its tests, selections, check outcomes and messages in.
package store

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned by Append and EnsureCapacity if a store with
// a limit is asked to grow beyond it.
var ErrCapacity = errors.New("store: capacity exhausted")

// Store is an append-only sequence of values of type T whose capacity
// is doubled whenever an append finds it full.  The zero value is not
// ready to use, create stores with New.
type Store[T any] struct {
	name  string
	data  []T
	limit int
}

// Option configures a Store at creation.
type Option func(*options)

type options struct {
	name  string
	limit int
}

// WithName names a store in its errors.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLimit caps the number of values a store can hold; n < 1 means
// unlimited.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// New returns a store with given initial capacity which is at least 1.
func New[T any](capacity int, oo ...Option) *Store[T] {
	opts := options{name: "store"}
	for _, o := range oo {
		o(&opts)
	}
	if capacity < 1 {
		capacity = 1
	}
	if opts.limit > 0 && capacity > opts.limit {
		capacity = opts.limit
	}
	return &Store[T]{
		name:  opts.name,
		data:  make([]T, 0, capacity),
		limit: opts.limit,
	}
}

// Len returns the number of appended values.
func (s *Store[T]) Len() int { return len(s.data) }

// Cap returns the number of values s can hold before it grows.
func (s *Store[T]) Cap() int { return cap(s.data) }

// Limit returns s's hard limit; 0 if unlimited.
func (s *Store[T]) Limit() int { return s.limit }

// EnsureCapacity doubles s's capacity iff it is full.  It fails with
// ErrCapacity if s is full and already at its limit.
func (s *Store[T]) EnsureCapacity() error {
	if len(s.data) < cap(s.data) {
		return nil
	}
	if s.limit > 0 && cap(s.data) >= s.limit {
		return fmt.Errorf("%s: %d values: %w", s.name, s.limit, ErrCapacity)
	}
	max := 2 * cap(s.data)
	if s.limit > 0 && max > s.limit {
		max = s.limit
	}
	grown := make([]T, len(s.data), max)
	copy(grown, s.data)
	s.data = grown
	return nil
}

// Append adds given value after the last appended value.
func (s *Store[T]) Append(v T) error {
	if err := s.EnsureCapacity(); err != nil {
		return err
	}
	s.data = append(s.data, v)
	return nil
}

// At returns the i-th appended value and true; the zero value and false
// if i is out of range.
func (s *Store[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

// ForEach calls cb with each value in append order until cb returns
// true.
func (s *Store[T]) ForEach(cb func(i int, v T) (stop bool)) {
	for i, v := range s.data {
		if cb(i, v) {
			return
		}
	}
}

// All returns a copy of the appended values.
func (s *Store[T]) All() []T {
	cp := make([]T, len(s.data))
	copy(cp, s.data)
	return cp
}

// Reset drops all values keeping the current capacity.
func (s *Store[T]) Reset() {
	var zero T
	for i := range s.data {
		s.data[i] = zero
	}
	s.data = s.data[:0]
}
