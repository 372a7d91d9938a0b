// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ckoshikumo/audit/internal/cli"
	"github.com/ckoshikumo/audit/internal/config"
)

// Default is the registry Test, SetUp and TearDown register to and Main
// runs.
var Default = NewRegistry()

// Test registers a test with the Default registry and returns its
// index.  It is meant to be evaluated during package initialization:
//
//	var _ = audit.Test("parses empty input", func(t *audit.T) {
//	    _, err := Parse("")
//	    t.Nil(err)
//	})
func Test(name string, fn func(*T), oo ...Option) int {
	return Default.register(callerLocation(1), name, fn, oo...)
}

// SetUp registers the setup function of the Default registry's program
// fixture.
func SetUp(fn func()) { Default.SetUp(fn) }

// TearDown registers the teardown function of the Default registry's
// program fixture.
func TearDown(fn func()) { Default.TearDown(fn) }

// Main runs the Default registry's tests as selected by the command
// line and exits the process with the run's exit status.
func Main() {
	os.Exit(Run(Default, os.Args, os.Stdout, os.Stderr))
}

// Run interprets given command line for given registry writing the
// report to out and errors to errOut.  args[0] is the program name.  Run
// returns the exit status of the run.
func Run(r *Registry, args []string, out, errOut io.Writer) int {
	prog, tokens := "audit", []string{}
	if len(args) > 0 {
		prog, tokens = filepath.Base(args[0]), args[1:]
	}
	return cli.Execute(prog, tokens, out, errOut, func(
		cfg *config.Config, log *zap.Logger,
	) cli.App {
		return NewRunner(r, settingsOf(cfg, prog, out, errOut, log))
	})
}

func settingsOf(
	cfg *config.Config, prog string, out, errOut io.Writer, log *zap.Logger,
) Settings {
	return Settings{
		Program:           prog,
		Out:               out,
		Err:               errOut,
		Color:             cfg.UseColor(out),
		Width:             cfg.Width,
		PassGlyph:         cfg.PassGlyph,
		FailGlyph:         cfg.FailGlyph,
		Strict:            cfg.Strict,
		ChecksCapacity:    cfg.Capacity.Checks,
		MessagesCapacity:  cfg.Capacity.Messages,
		SelectionCapacity: cfg.Capacity.Selection,
		MessagesLimit:     cfg.Limit.Messages,
		Logger:            log,
	}
}
