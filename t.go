// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"

	"go.uber.org/zap"
)

// T instances are passed to test functions providing the checks, means
// for logging and cancellation of a test execution:
//
//	var _ = audit.Test("a test", func(t *audit.T) { t.True(true) })
//
// A T is valid for one test execution only and must not be used from
// other goroutines.
type T struct {
	test *Case
	rec  *Recorder
	log  *zap.Logger
}

func newT(test *Case, rec *Recorder, log *zap.Logger) *T {
	return &T{test: test, rec: rec, log: log.With(
		zap.Int("test", test.index), zap.String("name", test.name))}
}

// Name returns the name of the executed test.
func (t *T) Name() string { return t.test.name }

// Index returns the index of the executed test.
func (t *T) Index() int { return t.test.index }

// Log writes given arguments to the runner's diagnostics which are
// visible in verbose mode.
func (t *T) Log(args ...interface{}) { t.log.Info(fmt.Sprint(args...)) }

// Logf writes given format string leveraging Sprintf to the runner's
// diagnostics which are visible in verbose mode.
func (t *T) Logf(format string, args ...interface{}) {
	t.log.Info(fmt.Sprintf(format, args...))
}

// cancellation is the panic value leaving a canceled test function.
type cancellation struct{ test int }

// FailNow records a failed check and leaves the test function
// immediately.  A teardown of the test is still run.
func (t *T) FailNow() {
	t.rec.Record(false, "fail now", "", callerLocation(1))
	t.cancel()
}

// Fatal records a failed check with given arguments as message and
// leaves the test (see [T.FailNow]).
func (t *T) Fatal(args ...interface{}) {
	t.rec.Record(false, "fatal", fmt.Sprint(args...), callerLocation(1))
	t.cancel()
}

// Fatalf records a failed check with given format string leveraging
// fmt.Sprintf as message and leaves the test (see [T.FailNow]).
func (t *T) Fatalf(format string, args ...interface{}) {
	t.rec.Record(false, "fatal", fmt.Sprintf(format, args...),
		callerLocation(1))
	t.cancel()
}

// FatalOn records a check which fails iff given error is not nil; a
// failing FatalOn leaves the test (see [T.FailNow]).
func (t *T) FatalOn(err error) {
	if err == nil {
		t.rec.Record(true, "", "", Location{})
		return
	}
	t.rec.Record(false, "fatal on error", err.Error(), callerLocation(1))
	t.cancel()
}

// FatalIfNot records a check which fails iff given condition is false;
// a failing FatalIfNot leaves the test (see [T.FailNow]).
func (t *T) FatalIfNot(condition bool) {
	if condition {
		t.rec.Record(true, "", "", Location{})
		return
	}
	t.rec.Record(false, "fatal if not", "condition is false",
		callerLocation(1))
	t.cancel()
}

func (t *T) cancel() { panic(cancellation{test: t.test.index}) }
