// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"

	"github.com/ckoshikumo/audit/pkg/store"
)

// DefaultTestsCapacity is the initial capacity of a registry's test
// store.  The store grows as needed.
const DefaultTestsCapacity = 50

// Case is a registered test.  A Case is created by a registration and
// immutable thereafter.
type Case struct {
	name        string
	index       int
	fn          func(*T)
	setUp       func()
	tearDown    func()
	usesFixture bool
	loc         Location
}

// Name returns t's name as given at its registration.
func (t *Case) Name() string { return t.name }

// Index returns t's position in its registry.
func (t *Case) Index() int { return t.index }

// Location returns the source position t was registered at.
func (t *Case) Location() Location { return t.loc }

// UsesFixture returns true if t requires the program fixture.
func (t *Case) UsesFixture() bool { return t.usesFixture }

func (t *Case) String() string { return fmt.Sprintf("%d: %s", t.index, t.name) }

// Option configures a test at its registration.
type Option func(*Case)

// WithSetUp has given function run before each execution of the tests
// it is passed to.
func WithSetUp(fn func()) Option {
	return func(t *Case) { t.setUp = fn }
}

// WithTearDown has given function run after each execution of the
// tests it is passed to, also if the test was canceled or panicked.
func WithTearDown(fn func()) Option {
	return func(t *Case) { t.tearDown = fn }
}

// WithFixture marks a test as requiring the program fixture, i.e. the
// functions registered by [Registry.SetUp] and [Registry.TearDown] are
// run around the test unless it has its own setup respectively
// teardown.
func WithFixture() Option {
	return func(t *Case) { t.usesFixture = true }
}

// Registry holds registered tests in order of their registration.
// Tests can't be removed.  Once a registry's tests have been run no
// more tests may be registered.
type Registry struct {
	tests           *store.Store[*Case]
	setUp, tearDown func()
	sealed          bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tests: store.New[*Case](
		DefaultTestsCapacity, store.WithName("tests"))}
}

// Register appends a test with given name and entry function and
// returns its index.  Register panics if fn is nil or if r was already
// run.
func (r *Registry) Register(name string, fn func(*T), oo ...Option) int {
	return r.register(callerLocation(1), name, fn, oo...)
}

func (r *Registry) register(
	loc Location, name string, fn func(*T), oo ...Option,
) int {
	if fn == nil {
		panic(fmt.Sprintf("audit: register: %s: nil test function", name))
	}
	if r.sealed {
		panic(fmt.Sprintf("audit: register: %s: registry already run", name))
	}
	t := &Case{name: name, index: r.tests.Len(), fn: fn, loc: loc}
	for _, o := range oo {
		o(t)
	}
	if err := r.tests.Append(t); err != nil {
		// an unlimited store doesn't fail
		panic(err)
	}
	return t.index
}

// SetUp registers the setup function of the program fixture.
func (r *Registry) SetUp(fn func()) { r.setUp = fn }

// TearDown registers the teardown function of the program fixture.
func (r *Registry) TearDown(fn func()) { r.tearDown = fn }

// Len returns the number of registered tests.
func (r *Registry) Len() int { return r.tests.Len() }

// Get returns the test with given index and true; nil and false if
// there is no such test.
func (r *Registry) Get(idx int) (*Case, bool) { return r.tests.At(idx) }

// ForEach calls back for each test in registration order until cb
// returns true.
func (r *Registry) ForEach(cb func(*Case) (stop bool)) {
	r.tests.ForEach(func(_ int, t *Case) bool { return cb(t) })
}

// Validate fails if a registered test requires a program fixture
// function which isn't registered.
func (r *Registry) Validate() error {
	var needsSetUp, needsTearDown bool
	r.ForEach(func(t *Case) bool {
		if !t.usesFixture {
			return false
		}
		needsSetUp = needsSetUp || t.setUp == nil
		needsTearDown = needsTearDown || t.tearDown == nil
		return false
	})
	missingSetUp := needsSetUp && r.setUp == nil
	missingTearDown := needsTearDown && r.tearDown == nil
	switch {
	case missingSetUp && missingTearDown:
		return ErrMissingFixture
	case missingSetUp:
		return ErrMissingSetUp
	case missingTearDown:
		return ErrMissingTearDown
	}
	return nil
}

// fixtureOf returns the setup and teardown functions which bracket
// given test's execution; either may be nil.
func (r *Registry) fixtureOf(t *Case) (setUp, tearDown func()) {
	setUp, tearDown = t.setUp, t.tearDown
	if !t.usesFixture {
		return setUp, tearDown
	}
	if setUp == nil {
		setUp = r.setUp
	}
	if tearDown == nil {
		tearDown = r.tearDown
	}
	return setUp, tearDown
}

func (r *Registry) seal() { r.sealed = true }
