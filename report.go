// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	colorFail  = "\x1b[31m"
	colorOK    = "\x1b[32m"
	colorInfo  = "\x1b[33m"
	colorReset = "\x1b[0m"
)

// Reporter prints a run's banner, progress, failure messages and
// summary to its output and errors to its error output.
type Reporter struct {
	out, err   io.Writer
	color      bool
	width      int
	pass, fail string
	prog       string
}

// ok, failed and info wrap given string in the respective color iff
// colors are enabled.
func (rp *Reporter) ok(s string) string     { return rp.paint(colorOK, s) }
func (rp *Reporter) failed(s string) string { return rp.paint(colorFail, s) }
func (rp *Reporter) info(s string) string   { return rp.paint(colorInfo, s) }

func (rp *Reporter) paint(color, s string) string {
	if !rp.color {
		return s
	}
	return color + s + colorReset
}

// List prints "index: name" of each test of given registry.
func (rp *Reporter) List(r *Registry) {
	r.ForEach(func(t *Case) bool {
		fmt.Fprintln(rp.out, rp.info(t.String()))
		return false
	})
}

// Error prints given error to the error output.
func (rp *Reporter) Error(err error) {
	fmt.Fprintf(rp.err, "%s%v\n\n", rp.failed("ERROR: "), err)
}

// Banner announces the start of a run.
func (rp *Reporter) Banner() { fmt.Fprint(rp.out, rp.ok("AUDIT START")+"\n\n") }

// AnnounceAll announces that all tests are run.
func (rp *Reporter) AnnounceAll() { fmt.Fprintln(rp.out, "Running all tests.") }

// AnnounceSelected lists the selected tests which are run.
func (rp *Reporter) AnnounceSelected(r *Registry, indices []int) {
	fmt.Fprint(rp.out, "Running selected tests:\n\n")
	for _, idx := range indices {
		t, _ := r.Get(idx)
		fmt.Fprintln(rp.out, rp.info(t.String()))
	}
}

// Progress prints a glyph for each given outcome breaking the line
// after each width glyphs.
func (rp *Reporter) Progress(outcomes []bool) {
	b := strings.Builder{}
	for i, passed := range outcomes {
		if i%rp.width == 0 {
			b.WriteString("\n")
		}
		if passed {
			b.WriteString(rp.ok(rp.pass))
			continue
		}
		b.WriteString(rp.failed(rp.fail))
	}
	b.WriteString("\n\n")
	fmt.Fprint(rp.out, b.String())
}

// Failures prints a success line if no check failed; otherwise a
// failure line followed by given messages.
func (rp *Reporter) Failures(c Counters, mm []Message) {
	if c.FailedChecks == 0 {
		fmt.Fprintln(rp.out, rp.ok("AUDIT OK"))
		return
	}
	fmt.Fprintln(rp.out, rp.failed("AUDIT FAILED"))
	for _, m := range mm {
		if m.Kind == Header {
			fmt.Fprintln(rp.out, rp.info(m.Text))
			continue
		}
		fmt.Fprintln(rp.out, m.Text)
	}
	fmt.Fprintln(rp.out)
}

// Summary prints the numbers of run and failed tests and of evaluated
// and failed checks.
func (rp *Reporter) Summary(c Counters) {
	line := fmt.Sprintf("%d tests (%d failed), %d assertions (%d failed)",
		c.TestsRun, c.FailedTests, c.Checks, c.FailedChecks)
	if c.FailedChecks == 0 {
		line = rp.ok(line)
	} else {
		line = rp.failed(line)
	}
	fmt.Fprint(rp.out, line+"\n\n")
}

// Rerun prints the command line running given failed tests again; it
// is a no-op for no tests.
func (rp *Reporter) Rerun(failed []int) {
	if len(failed) == 0 {
		return
	}
	ss := make([]string, len(failed))
	for i, idx := range failed {
		ss[i] = strconv.Itoa(idx)
	}
	fmt.Fprintf(rp.out, "rerun: %s %s\n\n", rp.prog, strings.Join(ss, " "))
}

// Results prints progress, failures, summary and rerun hint of given
// recorder.
func (rp *Reporter) Results(rec *Recorder) {
	rp.Progress(rec.Outcomes())
	rp.Failures(rec.Counters(), rec.Messages())
	rp.Summary(rec.Counters())
	rp.Rerun(rec.Failed())
}
