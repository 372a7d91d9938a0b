// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"

	"github.com/slukits/ints"
	"golang.org/x/exp/slices"

	"github.com/ckoshikumo/audit/pkg/store"
)

// Initial capacities of a recorder's stores which grow as needed.
const (
	DefaultChecksCapacity   = 100
	DefaultMessagesCapacity = 100
)

// MessageKind discriminates a test's header message from the detail
// messages of its failed checks.
type MessageKind int

const (
	// Header names the test whose failed checks follow.
	Header MessageKind = iota
	// Detail describes one failed check.
	Detail
)

// Message is an entry of a recorder's failure messages.
type Message struct {
	Kind MessageKind
	Text string
}

// Counters are a recorder's aggregated numbers.  They only increase
// during a run.
type Counters struct {
	// TestsRun counts test executions, repeatedly selected tests are
	// counted for each execution.
	TestsRun int
	// FailedTests counts test executions with at least one failed
	// check.
	FailedTests int
	// Checks counts evaluated checks.
	Checks int
	// FailedChecks counts failed checks.
	FailedChecks int
}

// Recorder keeps the outcome of each check of a run and the messages of
// failed checks grouped by the test they failed in.  A recorder is not
// safe for concurrent use.
type Recorder struct {
	outcomes *store.Store[bool]
	messages *store.Store[Message]
	counters Counters
	failed   *ints.Set
	current  *Case
	// firstFailure is true as long as the current test has no failed
	// check.
	firstFailure bool
	err          error
}

// RecorderOption configures a recorder's stores.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	checks, messages, messagesLimit int
}

// WithChecksCapacity sets the initial capacity of the outcome log.
func WithChecksCapacity(n int) RecorderOption {
	return func(o *recorderOptions) { o.checks = n }
}

// WithMessagesCapacity sets the initial capacity of the message log.
func WithMessagesCapacity(n int) RecorderOption {
	return func(o *recorderOptions) { o.messages = n }
}

// WithMessagesLimit caps the number of failure messages; a recorder
// whose message log is exhausted reports [store.ErrCapacity] by Err.
func WithMessagesLimit(n int) RecorderOption {
	return func(o *recorderOptions) { o.messagesLimit = n }
}

// NewRecorder returns a recorder with empty logs and zero counters.
func NewRecorder(oo ...RecorderOption) *Recorder {
	opts := recorderOptions{
		checks:   DefaultChecksCapacity,
		messages: DefaultMessagesCapacity,
	}
	for _, o := range oo {
		o(&opts)
	}
	return &Recorder{
		outcomes: store.New[bool](opts.checks, store.WithName("checks")),
		messages: store.New[Message](opts.messages,
			store.WithName("messages"),
			store.WithLimit(opts.messagesLimit)),
		failed:       &ints.Set{},
		firstFailure: true,
	}
}

// Begin makes given test the current test, i.e. the test failing
// checks are attributed to.
func (r *Recorder) Begin(t *Case) {
	r.current = t
	r.firstFailure = true
	r.counters.TestsRun++
}

// Record records the outcome of a check and returns it.  The first
// failed check of the current test adds a header message naming the
// test; each failed check adds a message with given location,
// description and message.
func (r *Recorder) Record(passed bool, desc, msg string, loc Location) bool {
	r.counters.Checks++
	r.keep(r.outcomes.Append(passed))
	if passed {
		return true
	}
	if r.firstFailure {
		r.firstFailure = false
		r.counters.FailedTests++
		r.keep(r.messages.Append(Message{Kind: Header, Text: r.header()}))
	}
	r.counters.FailedChecks++
	r.keep(r.messages.Append(Message{
		Kind: Detail, Text: detail(desc, msg, loc)}))
	return false
}

func (r *Recorder) header() string {
	if r.current == nil {
		return "\n?: <no test>"
	}
	r.failed.Add(r.current.index)
	return fmt.Sprintf("\n%d: %s", r.current.index, r.current.name)
}

func detail(desc, msg string, loc Location) string {
	switch {
	case desc == "":
		return fmt.Sprintf("\t%s:\t[%s]", loc, msg)
	case msg == "":
		return fmt.Sprintf("\t%s:\t%s", loc, desc)
	}
	return fmt.Sprintf("\t%s:\t%s [%s]", loc, desc, msg)
}

// keep remembers the first store error.
func (r *Recorder) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first error of the recorder's stores.  A run must not
// continue after Err returned an error.
func (r *Recorder) Err() error { return r.err }

// Counters returns the current counters.
func (r *Recorder) Counters() Counters { return r.counters }

// Outcomes returns the recorded check outcomes in order of evaluation.
func (r *Recorder) Outcomes() []bool { return r.outcomes.All() }

// Messages returns the recorded failure messages in order of
// recording.
func (r *Recorder) Messages() []Message { return r.messages.All() }

// Failed returns the ascending distinct indices of tests which failed.
func (r *Recorder) Failed() []int {
	ii := r.failed.ToSlice()
	slices.Sort(ii)
	return ii
}
