// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/ckoshikumo/audit/internal/cli"
)

// Settings configure a Runner.  Zero values are replaced by defaults.
type Settings struct {
	// Program is the name the rerun hint is given for.
	Program string
	// Out receives the report; Err receives errors.
	Out, Err io.Writer
	// Color enables ANSI colors in the report.
	Color bool
	// Width is the number of progress glyphs per line, default 80.
	Width int
	// PassGlyph and FailGlyph default to "." and "X".
	PassGlyph, FailGlyph string
	// Strict has unknown test indices abort a run.
	Strict bool
	// Initial capacities of the growing stores.
	ChecksCapacity, MessagesCapacity, SelectionCapacity int
	// MessagesLimit caps the number of failure messages; 0 means
	// unlimited.
	MessagesLimit int
	// Logger receives diagnostics, defaults to a no-op logger.
	Logger *zap.Logger
}

func (s *Settings) defaults() {
	if s.Program == "" {
		s.Program = "audit"
	}
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Err == nil {
		s.Err = io.Discard
	}
	if s.Width < 1 {
		s.Width = 80
	}
	if s.PassGlyph == "" {
		s.PassGlyph = "."
	}
	if s.FailGlyph == "" {
		s.FailGlyph = "X"
	}
	if s.ChecksCapacity < 1 {
		s.ChecksCapacity = DefaultChecksCapacity
	}
	if s.MessagesCapacity < 1 {
		s.MessagesCapacity = DefaultMessagesCapacity
	}
	if s.SelectionCapacity < 1 {
		s.SelectionCapacity = DefaultSelectionCapacity
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
}

// Runner selects, executes and reports the tests of a registry.  A
// runner is meant for a single run.
type Runner struct {
	registry *Registry
	rec      *Recorder
	sel      *Selection
	rp       *Reporter
	log      *zap.Logger
}

// NewRunner returns a runner of given registry's tests.
func NewRunner(r *Registry, s Settings) *Runner {
	s.defaults()
	policy := Lenient
	if s.Strict {
		policy = Strict
	}
	return &Runner{
		registry: r,
		rec: NewRecorder(
			WithChecksCapacity(s.ChecksCapacity),
			WithMessagesCapacity(s.MessagesCapacity),
			WithMessagesLimit(s.MessagesLimit),
		),
		sel: NewSelection(r, s.SelectionCapacity, policy),
		rp: &Reporter{
			out: s.Out, err: s.Err, color: s.Color, width: s.Width,
			pass: s.PassGlyph, fail: s.FailGlyph, prog: s.Program,
		},
		log: s.Logger,
	}
}

// Recorder returns the recorder of r's run.
func (r *Runner) Recorder() *Recorder { return r.rec }

// Selection returns the selection of r's run.
func (r *Runner) Selection() *Selection { return r.sel }

// List prints the registered tests and returns the success status.
func (r *Runner) List() int {
	r.log.Debug("listing tests", zap.Int("tests", r.registry.Len()))
	r.rp.List(r.registry)
	return cli.ExitOK
}

// Run selects the tests with given indices, or all if no index is
// given, executes and reports them.  Run returns cli.ExitOK iff no check
// failed.  Invalid arguments, missing fixture functions and exhausted
// stores abort a run with cli.ExitFatal before a test is executed
// respectively before the report.
func (r *Runner) Run(tokens []string) int {
	if err := r.registry.Validate(); err != nil {
		r.rp.Error(err)
		return cli.ExitFatal
	}
	err := r.sel.SelectAll(tokens, func(err error) {
		r.log.Debug("skipping unknown test", zap.Error(err))
		r.rp.Error(err)
	})
	switch {
	case errors.Is(err, ErrNoTests):
		r.rp.Error(err)
		return cli.ExitFailed
	case err != nil:
		r.rp.Error(err)
		return cli.ExitFatal
	}
	r.registry.seal()

	r.rp.Banner()
	if r.sel.Len() > 0 {
		r.rp.AnnounceSelected(r.registry, r.sel.Indices())
		r.RunSelected()
	} else {
		r.rp.AnnounceAll()
		r.RunAll()
	}
	if err := r.rec.Err(); err != nil {
		r.rp.Error(err)
		return cli.ExitFatal
	}

	r.rp.Results(r.rec)
	c := r.rec.Counters()
	r.log.Debug("run finished",
		zap.Int("tests", c.TestsRun), zap.Int("failed_tests", c.FailedTests),
		zap.Int("checks", c.Checks), zap.Int("failed_checks", c.FailedChecks))
	if c.FailedChecks > 0 {
		return cli.ExitFailed
	}
	return cli.ExitOK
}
