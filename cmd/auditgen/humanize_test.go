// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_audit_function_names_are_humanized(t *testing.T) {
	for fn, exp := range map[string]string{
		"Audit_divides_evenly":     "divides evenly",
		"AuditDividesEvenly":       "divides evenly",
		"AuditServesHTTP":          "serves HTTP",
		"AuditHTTPServerStarts":    "HTTP server starts",
		"AuditA_suite_s_name":      "a suite's name",
		"Audit_it_doesnt_panic":    "it doesn't panic",
		"AuditParses2Values":       "parses2 values",
		"Audit_keeps_JSON_as_is":   "keeps JSON as is",
		"AuditÄnderungIsDetected":  "änderung is detected",
		"Audit__leading_separator": "leading separator",
		"AuditIsSignificant":       "is significant",
		"Audit_wonton_soup":        "wonton soup",
		"Audit_cant_fail":          "can't fail",
		"AuditDontPanic":           "don't panic",
		"Audit_a_isnt_b":           "a isn't b",
	} {
		assert.Equal(t, exp, humanize(fn), fn)
	}
}
