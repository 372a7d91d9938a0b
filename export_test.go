// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import "io"

// ContainsErr default message for failed 'Contains'-check.
const ContainsErr = containsErr

// MatchedErr default message for failed 'Matched'-check.
const MatchedErr = matchedErr

// ErrIsErr default message for failed 'ErrIs'-check.
const ErrIsErr = errIsErr

// PanicsErr default message for failed 'Panics'-check.
const PanicsErr = panicsErr

// FalseErr default message for failed 'False'-check.
const FalseErr = falseErr

// TrueErr default message for failed 'True'-check.
const TrueErr = trueErr

// NotNilErr default message for failed 'NotNil'-check.
const NotNilErr = notNilErr

// NewReporter returns a reporter without colors and given settings.
func NewReporter(out io.Writer, color bool, width int, prog string) *Reporter {
	return &Reporter{out: out, err: out, color: color, width: width,
		pass: ".", fail: "X", prog: prog}
}
