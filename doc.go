// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package audit is a small unit-testing framework for go programs
// which are their own test runner.  Tests register themselves from
// anywhere in a program without a central list:
//
//	import "github.com/ckoshikumo/audit"
//
//	var _ = audit.Test("adds two numbers", func(t *audit.T) {
//	    t.Eq(4, Add(2, 2))
//	    t.Check(Add(-1, 1) == 0, "adds negatives", "-1+1 != 0")
//	})
//
//	func main() { audit.Main() }
//
// A Test call evaluated during package initialization appends the test
// to the Default registry and returns its index.  Go initializes the
// files of a package in the order they are presented to the compiler
// and the declarations of a file in order of their dependencies, i.e.
// indices are stable between builds of the same sources.  Programs
// preferring an explicit table may generate it with cmd/auditgen.
//
// A failing check is recorded and the test continues.  Fatal and
// FailNow record a failed check and leave the test function
// immediately, as do FatalOn and FatalIfNot if their check fails; a
// test's teardown runs nevertheless.  Each
// test may have its own setup and teardown:
//
//	var _ = audit.Test("reads the fixture", readsFixture,
//	    audit.WithSetUp(createFixture), audit.WithTearDown(removeFixture))
//
// or may require the program wide fixture pair registered by SetUp and
// TearDown with WithFixture.  A run fails before any test is executed
// if a test requires a fixture function which was not registered.
//
// Main implements the command line of a test program:
//
//	prog             run all tests
//	prog 2 0 2       run tests 2, 0 and 2 again in that order
//	prog --list      print "index: name" of every test and exit
//
// Progress is reported by a "." for each passing and an "X" for each
// failing check; then all failure messages grouped by test and a
// summary.  The exit status is zero iff no check failed.
//
// Tests run one after another in a single goroutine.  A T must not be
// used from goroutines a test starts.
package audit
