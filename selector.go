// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ckoshikumo/audit/pkg/store"
)

// DefaultSelectionCapacity is the initial capacity of a selection.
const DefaultSelectionCapacity = 50

// Policy determines how a selection treats indices of tests which
// don't exist.
type Policy int

const (
	// Lenient selections report and skip unknown indices.
	Lenient Policy = iota
	// Strict selections abort on the first unknown index.
	Strict
)

// Selection is the ordered sequence of test indices to run.  An empty
// selection means all tests.  Duplicates are kept.
type Selection struct {
	registry *Registry
	indices  *store.Store[int]
	policy   Policy
	tried    bool
}

// NewSelection returns an empty selection of given registry's tests.
func NewSelection(r *Registry, capacity int, p Policy) *Selection {
	return &Selection{
		registry: r,
		indices:  store.New[int](capacity, store.WithName("selection")),
		policy:   p,
	}
}

// parseIndex reads given token as decimal test index.
func parseIndex(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArgument, token)
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, token)
		}
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		// only digits, i.e. out of int's range
		return 0, fmt.Errorf("%w: %s", ErrUnknownTest, token)
	}
	return idx, nil
}

// Select appends the test with the index given as token.  Select fails
// with ErrInvalidArgument if token isn't a non-negative decimal number
// and with ErrUnknownTest if there is no test with that index.
func (s *Selection) Select(token string) error {
	s.tried = true
	idx, err := parseIndex(token)
	if err != nil {
		return err
	}
	if idx >= s.registry.Len() {
		return fmt.Errorf("%w: %d", ErrUnknownTest, idx)
	}
	return s.indices.Append(idx)
}

// SelectAll selects given tokens in given order.  Any invalid token
// fails SelectAll before anything is selected.  An unknown index is
// passed to given report function and skipped in a lenient selection
// while it fails a strict selection.  SelectAll fails with ErrNoTests if
// tokens were given but none of them was selected.
func (s *Selection) SelectAll(tokens []string, report func(error)) error {
	for _, token := range tokens {
		if _, err := parseIndex(token); errors.Is(err, ErrInvalidArgument) {
			return err
		}
	}
	for _, token := range tokens {
		err := s.Select(token)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrUnknownTest) || s.policy == Strict {
			return err
		}
		report(err)
	}
	if s.tried && s.indices.Len() == 0 {
		return ErrNoTests
	}
	return nil
}

// Tried returns true if a selection was attempted.
func (s *Selection) Tried() bool { return s.tried }

// Len returns the number of selected tests.
func (s *Selection) Len() int { return s.indices.Len() }

// Indices returns the selected indices in order of selection.
func (s *Selection) Indices() []int { return s.indices.All() }
