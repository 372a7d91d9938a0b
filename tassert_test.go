// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckoshikumo/audit"
)

// checked runs given function as the only test of a registry and
// returns the recorder of the run.
func checked(fn func(*audit.T)) *audit.Recorder {
	r := audit.NewRegistry()
	r.Register("checks", fn)
	rn, _ := run(r)
	return rn.Recorder()
}

// details returns the detail messages of given recorder.
func details(rec *audit.Recorder) []string {
	dd := []string{}
	for _, m := range rec.Messages() {
		if m.Kind == audit.Detail {
			dd = append(dd, m.Text)
		}
	}
	return dd
}

func Test_checks_return_their_outcome(t *testing.T) {
	got := []bool{}
	checked(func(t *audit.T) {
		got = append(got,
			t.True(true), t.True(false),
			t.False(false), t.False(true),
			t.Eq(1, 1), t.Eq(1, 2),
			t.Neq(1, 2), t.Neq(1, 1),
			t.Check(true, "", ""), t.Check(false, "", ""),
		)
	})
	assert.Equal(t, []bool{
		true, false, true, false, true, false, true, false, true, false,
	}, got)
}

func Test_failed_check_reports_the_line_of_the_check(t *testing.T) {
	var line int
	rec := checked(func(t *audit.T) {
		_, _, line, _ = runtime.Caller(0)
		t.True(false)
	})
	dd := details(rec)
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], fmt.Sprintf("tassert_test.go:%d:", line+1))
	assert.Contains(t, dd[0], audit.TrueErr)
}

func Test_failing_check_does_not_stop_the_test(t *testing.T) {
	reached := false
	rec := checked(func(t *audit.T) {
		t.True(false)
		t.False(true)
		reached = true
	})
	assert.True(t, reached)
	assert.Equal(t, 2, rec.Counters().FailedChecks)
	assert.Equal(t, 1, rec.Counters().FailedTests)
}

type point struct{ x, y int }

func Test_eq_compares_unexported_fields_and_reports_a_diff(t *testing.T) {
	rec := checked(func(t *audit.T) {
		t.Eq(point{1, 2}, point{1, 2})
		t.Eq(point{1, 2}, point{1, 3})
	})
	dd := details(rec)
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], "expected {1 2}, actual {1 3}")
	assert.Contains(t, dd[0], "y:")
}

func Test_eq_quotes_strings(t *testing.T) {
	dd := details(checked(func(t *audit.T) { t.Eq("a", "b") }))
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], `expected "a", actual "b"`)
}

func Test_nil_considers_typed_nil_as_nil(t *testing.T) {
	var p *point
	var m map[string]int
	rec := checked(func(t *audit.T) {
		t.Nil(nil)
		t.Nil(p)
		t.Nil(m)
		t.Nil(&point{})
		t.NotNil(p)
		t.NotNil(&point{})
	})
	assert.Equal(t, 6, rec.Counters().Checks)
	dd := details(rec)
	require.Len(t, dd, 2)
	assert.Contains(t, dd[0], "expected nil, actual")
	assert.Contains(t, dd[1], audit.NotNilErr)
}

func Test_err_is_checks_wrapped_errors(t *testing.T) {
	target := errors.New("target")
	rec := checked(func(t *audit.T) {
		t.ErrIs(fmt.Errorf("wrapped: %w", target), target)
		t.ErrIs(errors.New("other"), target)
	})
	dd := details(rec)
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], audit.ErrIsErr)
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

func Test_contains_and_matched_use_string_representations(t *testing.T) {
	rec := checked(func(t *audit.T) {
		t.Contains(stringer{}, "ring")
		t.Contains(42, "4")
		t.Contains("audit", "xyz")
		t.Matched(stringer{}, `^str.*er$`)
		t.Matched("audit", `^\d+$`)
	})
	assert.Equal(t, 5, rec.Counters().Checks)
	dd := details(rec)
	require.Len(t, dd, 2)
	assert.Contains(t, dd[0], fmt.Sprintf(audit.ContainsErr, "audit", "xyz"))
	assert.Contains(t, dd[1], fmt.Sprintf(audit.MatchedErr, `^\d+$`, "audit"))
}

func Test_panics_checks_if_function_panics(t *testing.T) {
	rec := checked(func(t *audit.T) {
		t.True(t.Panics(func() { panic("expected") }))
		t.False(t.Panics(func() {}))
	})
	assert.Equal(t, 4, rec.Counters().Checks)
	dd := details(rec)
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], audit.PanicsErr)
}

func Test_fatal_inside_panics_cancels_the_test(t *testing.T) {
	reached := false
	rec := checked(func(t *audit.T) {
		t.Panics(func() { t.Fatal("leaving") })
		reached = true
	})
	assert.False(t, reached)
	assert.Equal(t, 1, rec.Counters().Checks)
}

func Test_ordering_checks(t *testing.T) {
	rec := checked(func(t *audit.T) {
		audit.Lt(t, 1, 2)
		audit.Gt(t, "b", "a")
		audit.Le(t, 2.0, 2.0)
		audit.Ge(t, 3, 3)
		audit.Lt(t, 2, 1)
	})
	assert.Equal(t, 5, rec.Counters().Checks)
	dd := details(rec)
	require.Len(t, dd, 1)
	assert.Contains(t, dd[0], "expected 2 < 1")
}

func Test_fatal_variants_stop_the_test(t *testing.T) {
	for name, fatal := range map[string]func(*audit.T){
		"fail now":     func(t *audit.T) { t.FailNow() },
		"fatal":        func(t *audit.T) { t.Fatal("stop") },
		"fatalf":       func(t *audit.T) { t.Fatalf("stop %d", 1) },
		"fatal on":     func(t *audit.T) { t.FatalOn(errors.New("stop")) },
		"fatal if not": func(t *audit.T) { t.FatalIfNot(false) },
	} {
		reached := false
		rec := checked(func(t *audit.T) {
			fatal(t)
			reached = true
		})
		assert.False(t, reached, name)
		assert.Equal(t, 1, rec.Counters().FailedChecks, name)
	}
}

func Test_passing_fatal_guards_are_counted_as_passed_checks(t *testing.T) {
	reached := false
	rec := checked(func(t *audit.T) {
		t.FatalOn(nil)
		t.FatalIfNot(true)
		reached = true
	})
	assert.True(t, reached)
	assert.Equal(t, audit.Counters{TestsRun: 1, Checks: 2},
		rec.Counters())
	assert.Equal(t, []bool{true, true}, rec.Outcomes())
	assert.Empty(t, rec.Messages())
}
