// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides registries of fixture tests.
//
// The tests of a fixture registry append to an event Log which can be
// evaluated after a run of the registry, e.g.
//
//	log := &fx.Log{}
//	audit.Run(fx.Ordered(log), []string{"fx", "2", "0"}, out, err)
//	// log.Events == setup, test 2, teardown, setup, test 0, teardown
package fx

import (
	"errors"
	"fmt"

	"github.com/ckoshikumo/audit"
)

// Log collects the events of a fixture registry's run.
type Log struct {
	Events []string
}

// Add appends given event.
func (l *Log) Add(format string, args ...interface{}) {
	l.Events = append(l.Events, fmt.Sprintf(format, args...))
}

// Reset drops all events.
func (l *Log) Reset() { l.Events = nil }

// Ordered returns a registry of given number of passing tests using the
// program fixture.  Setup, teardown and each test log an event.
func Ordered(l *Log, n int) *audit.Registry {
	r := audit.NewRegistry()
	r.SetUp(func() { l.Add("setup") })
	r.TearDown(func() { l.Add("teardown") })
	for i := 0; i < n; i++ {
		r.Register(fmt.Sprintf("test %d", i), func(t *audit.T) {
			l.Add("test %d", t.Index())
			t.True(true)
		}, audit.WithFixture())
	}
	return r
}

// Mixed returns a registry of three tests whereas test 1 fails two of
// its three checks while tests 0 and 2 pass all theirs.  The registry
// evaluates six checks if all tests are run.
func Mixed() *audit.Registry {
	r := audit.NewRegistry()
	r.Register("passes twice", func(t *audit.T) {
		t.True(true)
		t.Eq(1, 1)
	})
	r.Register("fails twice", func(t *audit.T) {
		t.True(false)
		t.Nil(nil)
		t.Eq("exp", "act")
	})
	r.Register("passes once", func(t *audit.T) {
		t.Contains("audit", "dit")
	})
	return r
}

// ErrFixture is returned by fixture tests which need an error.
var ErrFixture = errors.New("fx: fixture error")

// Canceling returns a registry whose tests leave their test function
// abnormally: test 0 by Fatal, test 1 by a panic, test 2 by FatalOn,
// test 3 by FatalIfNot.  Each test logs before and after leaving; the
// teardown logs after each test.
func Canceling(l *Log) *audit.Registry {
	r := audit.NewRegistry()
	r.SetUp(func() { l.Add("setup") })
	r.TearDown(func() { l.Add("teardown") })
	r.Register("fatal", func(t *audit.T) {
		l.Add("enter %d", t.Index())
		t.Fatal("giving up")
		l.Add("unreachable %d", t.Index())
	}, audit.WithFixture())
	r.Register("panic", func(t *audit.T) {
		l.Add("enter %d", t.Index())
		panic("boom")
	}, audit.WithFixture())
	r.Register("fatal on", func(t *audit.T) {
		l.Add("enter %d", t.Index())
		t.FatalOn(ErrFixture)
		l.Add("unreachable %d", t.Index())
	}, audit.WithFixture())
	r.Register("fatal if not", func(t *audit.T) {
		l.Add("enter %d", t.Index())
		t.FatalIfNot(false)
		l.Add("unreachable %d", t.Index())
	}, audit.WithFixture())
	return r
}

// OwnFixture returns a registry with a test having its own setup and
// teardown which take precedence over the program fixture and with a
// test having no fixture at all.
func OwnFixture(l *Log) *audit.Registry {
	r := audit.NewRegistry()
	r.SetUp(func() { l.Add("program setup") })
	r.TearDown(func() { l.Add("program teardown") })
	r.Register("own fixture", func(t *audit.T) {
		l.Add("test %d", t.Index())
	},
		audit.WithFixture(),
		audit.WithSetUp(func() { l.Add("own setup") }),
		audit.WithTearDown(func() { l.Add("own teardown") }),
	)
	r.Register("no fixture", func(t *audit.T) {
		l.Add("test %d", t.Index())
	})
	return r
}

// FailingSetUp returns a registry whose only test's setup panics.
func FailingSetUp(l *Log) *audit.Registry {
	r := audit.NewRegistry()
	r.Register("unreachable", func(t *audit.T) {
		l.Add("test %d", t.Index())
	},
		audit.WithSetUp(func() { l.Add("setup"); panic("setup failed") }),
		audit.WithTearDown(func() { l.Add("teardown") }),
	)
	return r
}

// MissingFixture returns a registry with a test using the program
// fixture whose setup and teardown are registered iff given flags are
// set.
func MissingFixture(setUp, tearDown bool) *audit.Registry {
	r := audit.NewRegistry()
	if setUp {
		r.SetUp(func() {})
	}
	if tearDown {
		r.TearDown(func() {})
	}
	r.Register("uses fixture", func(t *audit.T) {}, audit.WithFixture())
	return r
}
