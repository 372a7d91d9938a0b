// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckoshikumo/audit"
	"github.com/ckoshikumo/audit/testdata/fx"
)

func selection(p audit.Policy) *audit.Selection {
	return audit.NewSelection(fx.Ordered(&fx.Log{}, 5), 1, p)
}

func Test_selection_keeps_order_and_duplicates(t *testing.T) {
	s := selection(audit.Lenient)
	require.NoError(t, s.SelectAll([]string{"2", "0", "2", "4"}, nil))
	assert.Equal(t, []int{2, 0, 2, 4}, s.Indices())
	assert.True(t, s.Tried())
}

func Test_no_tokens_select_nothing(t *testing.T) {
	s := selection(audit.Strict)
	require.NoError(t, s.SelectAll(nil, nil))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Tried())
}

func Test_invalid_token_fails_selection_before_selecting(t *testing.T) {
	for _, tokens := range [][]string{
		{"abc"}, {"1", "abc"}, {"abc", "1"}, {"1", "-2"}, {"1", ""},
		{"0x1"}, {"1.0"},
	} {
		s := selection(audit.Lenient)
		err := s.SelectAll(tokens, func(error) {
			t.Errorf("%v: unexpected report", tokens)
		})
		assert.True(t, errors.Is(err, audit.ErrInvalidArgument),
			"%v: %v", tokens, err)
		assert.Equal(t, 0, s.Len(), "%v", tokens)
	}
}

func Test_lenient_selection_skips_and_reports_unknown_index(t *testing.T) {
	s := selection(audit.Lenient)
	reported := []error{}
	err := s.SelectAll([]string{"1", "99", "3"}, func(err error) {
		reported = append(reported, err)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, s.Indices())
	require.Len(t, reported, 1)
	assert.True(t, errors.Is(reported[0], audit.ErrUnknownTest))
	assert.Contains(t, reported[0].Error(), "99")
}

func Test_strict_selection_fails_on_unknown_index(t *testing.T) {
	s := selection(audit.Strict)
	err := s.SelectAll([]string{"1", "99", "3"}, nil)
	assert.True(t, errors.Is(err, audit.ErrUnknownTest))
}

func Test_index_out_of_int_range_is_unknown(t *testing.T) {
	s := selection(audit.Strict)
	err := s.SelectAll([]string{"99999999999999999999999"}, nil)
	assert.True(t, errors.Is(err, audit.ErrUnknownTest))
}

func Test_selection_of_only_unknown_indices_runs_no_tests(t *testing.T) {
	s := selection(audit.Lenient)
	err := s.SelectAll([]string{"5", "99"}, func(error) {})
	assert.True(t, errors.Is(err, audit.ErrNoTests))
	assert.True(t, s.Tried())
}

func Test_selection_grows_beyond_its_capacity(t *testing.T) {
	s := selection(audit.Strict)
	tokens := []string{}
	for i := 0; i < 20; i++ {
		tokens = append(tokens, "1")
	}
	require.NoError(t, s.SelectAll(tokens, nil))
	assert.Equal(t, 20, s.Len())
}
