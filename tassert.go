// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Check records a check with given condition and returns it.  A failed
// check is reported with given description and message formatted by
// fmt.Sprintf with given arguments, e.g.
//
//	t.Check(len(ss) == 2, "splits once", "got %d parts", len(ss))
func (t *T) Check(
	condition bool, desc, format string, args ...interface{},
) bool {
	return t.rec.Record(condition, desc, fmt.Sprintf(format, args...),
		callerLocation(1))
}

// trueErr default message for failed 'true'-check.
const trueErr = "expected given value to be true"

// True records a check which fails iff given value is false.
func (t *T) True(value bool) bool {
	return t.rec.Record(value, "true", trueErr, callerLocation(1))
}

// falseErr default message for failed 'false'-check.
const falseErr = "expected given value to be false"

// False records a check which fails iff given value is true.
func (t *T) False(value bool) bool {
	return t.rec.Record(!value, "false", falseErr, callerLocation(1))
}

// exportAll lets go-cmp compare unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Eq records a check which fails iff given values are not equal as
// determined by go-cmp whereas unexported fields are compared too.  The
// message of a failed check reports expected and actual value and for
// composite values a diff.
func (t *T) Eq(exp, act interface{}) bool {
	if cmp.Equal(exp, act, exportAll) {
		return t.rec.Record(true, "", "", Location{})
	}
	msg := fmt.Sprintf("expected %s, actual %s", repr(exp), repr(act))
	if isComposite(exp) && isComposite(act) {
		msg += ":\n" + indent(cmp.Diff(exp, act, exportAll))
	}
	return t.rec.Record(false, "equal", msg, callerLocation(1))
}

// Neq records a check which fails iff given values are equal (see
// [T.Eq]).
func (t *T) Neq(unexp, act interface{}) bool {
	if !cmp.Equal(unexp, act, exportAll) {
		return t.rec.Record(true, "", "", Location{})
	}
	return t.rec.Record(false, "not equal", fmt.Sprintf(
		"unexpected value: %s", repr(act)), callerLocation(1))
}

// nilErr default message for failed 'nil'-check.
const nilErr = "expected nil, actual %s"

// Nil records a check which fails iff given value is not nil.  A typed
// nil pointer, map, slice, channel or function is considered nil.
func (t *T) Nil(value interface{}) bool {
	if isNil(value) {
		return t.rec.Record(true, "", "", Location{})
	}
	return t.rec.Record(false, "nil", fmt.Sprintf(nilErr, repr(value)),
		callerLocation(1))
}

// notNilErr default message for failed 'not nil'-check.
const notNilErr = "unexpected nil"

// NotNil records a check which fails iff given value is nil (see
// [T.Nil]).
func (t *T) NotNil(value interface{}) bool {
	return t.rec.Record(!isNil(value), "not nil", notNilErr,
		callerLocation(1))
}

// errIsErr default message for failed "ErrIs"-check
const errIsErr = "given error doesn't wrap target-error"

// ErrIs records a check which fails iff given error doesn't wrap given
// target.
func (t *T) ErrIs(err, target error) bool {
	if errors.Is(err, target) {
		return t.rec.Record(true, "", "", Location{})
	}
	return t.rec.Record(false, "error is", fmt.Sprintf(
		"%s: %v: %v", errIsErr, err, target), callerLocation(1))
}

// StringRepresentation documents what a string representation of any
// type is:
//   - the string if it is of type string,
//   - the return value of String if the Stringer interface is
//     implemented,
//   - fmt.Sprintf("%v", value) in all other cases.
type StringRepresentation interface{}

// containsErr default message for failed 'Contains'-check.
const containsErr = "%q doesn't contain %q"

// Contains records a check which fails iff given value's string
// representation doesn't contain given sub-string.
func (t *T) Contains(value StringRepresentation, sub string) bool {
	str := toString(value)
	return t.rec.Record(strings.Contains(str, sub), "contains",
		fmt.Sprintf(containsErr, str, sub), callerLocation(1))
}

// matchedErr default message for failed 'Matched'-check.
const matchedErr = "regexp '%s' doesn't match %q"

// Matched records a check which fails iff given value's string
// representation isn't matched by given regular expression.  Matched
// panics if regex doesn't compile.
func (t *T) Matched(value StringRepresentation, regex string) bool {
	re, str := regexp.MustCompile(regex), toString(value)
	return t.rec.Record(re.MatchString(str), "matched",
		fmt.Sprintf(matchedErr, re.String(), str), callerLocation(1))
}

// panicsErr default message for failed "Panics"-check
const panicsErr = "given function doesn't panic"

// Panics records a check which fails iff given function doesn't panic.
// A cancellation of the test inside given function is not considered a
// panic.
func (t *T) Panics(f func()) (hasPanicked bool) {
	loc := callerLocation(1)
	defer func() {
		r := recover()
		if c, ok := r.(cancellation); ok {
			panic(c)
		}
		hasPanicked = t.rec.Record(r != nil, "panics", panicsErr, loc)
	}()
	f()
	return false
}

// Lt records a check which fails unless a < b.
func Lt[O constraints.Ordered](t *T, a, b O) bool {
	return t.rec.Record(a < b, "less", ineq("<", a, b), callerLocation(1))
}

// Gt records a check which fails unless a > b.
func Gt[O constraints.Ordered](t *T, a, b O) bool {
	return t.rec.Record(a > b, "greater", ineq(">", a, b),
		callerLocation(1))
}

// Le records a check which fails unless a <= b.
func Le[O constraints.Ordered](t *T, a, b O) bool {
	return t.rec.Record(a <= b, "less or equal", ineq("<=", a, b),
		callerLocation(1))
}

// Ge records a check which fails unless a >= b.
func Ge[O constraints.Ordered](t *T, a, b O) bool {
	return t.rec.Record(a >= b, "greater or equal", ineq(">=", a, b),
		callerLocation(1))
}

func ineq(op string, a, b interface{}) string {
	return fmt.Sprintf("expected %s %s %s", repr(a), op, repr(b))
}

func repr(v interface{}) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func toString(value interface{}) string {
	switch value := value.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func isComposite(value interface{}) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map, reflect.Array,
		reflect.Ptr:
		return true
	}
	return false
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "\t\t" + l
	}
	return strings.Join(lines, "\n")
}
