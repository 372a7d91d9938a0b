// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import "errors"

var (
	// ErrInvalidArgument is returned for a command line token which
	// can't be read as test index.  It always aborts a run.
	ErrInvalidArgument = errors.New("audit: argument can't be read as number")

	// ErrUnknownTest is returned for a test index which is not
	// registered.
	ErrUnknownTest = errors.New("audit: test doesn't exist")

	// ErrNoTests reports that test indices were given but none of them
	// could be selected.
	ErrNoTests = errors.New("audit: couldn't run any tests")

	// ErrMissingSetUp reports a test requiring the program fixture
	// while no SetUp function was registered.
	ErrMissingSetUp = errors.New("audit: no setup function provided")

	// ErrMissingTearDown reports a test requiring the program fixture
	// while no TearDown function was registered.
	ErrMissingTearDown = errors.New("audit: no teardown function provided")

	// ErrMissingFixture reports a test requiring the program fixture
	// while neither SetUp nor TearDown was registered.
	ErrMissingFixture = errors.New(
		"audit: no setup or teardown functions provided")
)
