// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"

	"go.uber.org/zap"
)

// RunAll executes all registered tests in registration order.
func (r *Runner) RunAll() {
	r.registry.ForEach(func(t *Case) bool {
		r.run(t)
		return r.rec.Err() != nil
	})
}

// RunSelected executes the selected tests in order of selection.
func (r *Runner) RunSelected() {
	for _, idx := range r.sel.Indices() {
		t, ok := r.registry.Get(idx)
		if !ok {
			continue
		}
		r.run(t)
		if r.rec.Err() != nil {
			return
		}
	}
}

// run executes given test bracketed by its setup and teardown.  The
// teardown runs once the setup was entered regardless how setup or test
// function were left.
func (r *Runner) run(t *Case) {
	r.rec.Begin(t)
	setUp, tearDown := r.registry.fixtureOf(t)
	r.log.Debug("running test", zap.Int("test", t.index),
		zap.String("name", t.name),
		zap.Bool("setup", setUp != nil),
		zap.Bool("teardown", tearDown != nil))

	if tearDown != nil {
		defer r.protect(t, "teardown", tearDown)
	}
	if setUp != nil && !r.protect(t, "setup", setUp) {
		return
	}
	r.protect(t, "test", func() { t.fn(newT(t, r.rec, r.log)) })
}

// protect calls given function and returns true if it returned
// normally.  A panic other than a test cancellation is recorded as
// failed check of given test.
func (r *Runner) protect(t *Case, stage string, fn func()) (returned bool) {
	defer func() {
		if returned {
			return
		}
		v := recover()
		if _, ok := v.(cancellation); ok {
			return
		}
		r.log.Warn("recovered panic", zap.Int("test", t.index),
			zap.String("stage", stage), zap.Any("panic", v))
		r.rec.Record(false, stage+" panicked", fmt.Sprint(v), t.loc)
	}()
	fn()
	return true
}
