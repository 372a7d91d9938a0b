// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// humanize turns an audit function's identifier into a test name:
// Audit_parses_empty_input and AuditParsesEmptyInput both become
// "parses empty input".  Acronyms are kept, e.g. AuditServesHTTP becomes
// "serves HTTP".
func humanize(fn string) string {
	name := strings.TrimLeft(strings.TrimPrefix(fn, "Audit"), "_")
	var words []string
	if strings.Contains(name, "_") {
		words = strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	} else {
		words = camelWords(name)
	}
	for i, w := range words {
		if !isAcronym(w) {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToLower(r)) + w[size:]
		}
	}
	return strings.Join(apostrophe(words), " ")
}

// camelWords splits given camel case identifier into its words.  A word
// starts at an upper case letter following a lower case letter or a
// digit and at the last upper case letter of an upper case run followed
// by a lower case letter.
func camelWords(s string) []string {
	rr := []rune(s)
	words, start := []string{}, 0
	for i := 1; i < len(rr); i++ {
		if !unicode.IsUpper(rr[i]) {
			continue
		}
		prev := rr[i-1]
		nextLower := i+1 < len(rr) && unicode.IsLower(rr[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
			unicode.IsUpper(prev) && nextLower {
			words = append(words, string(rr[start:i]))
			start = i
		}
	}
	return append(words, string(rr[start:]))
}

func isAcronym(w string) bool {
	upper := 0
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return upper > 1
}

var contractions = map[string]string{
	"dont":   "don't",
	"doesnt": "doesn't",
	"isnt":   "isn't",
	"cant":   "can't",
	"wont":   "won't",
	"hasnt":  "hasn't",
	"havent": "haven't",
}

// apostrophe replaces whole-word contractions and attaches a lone "s"
// as possessive to its preceding word.
func apostrophe(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "s" && len(out) > 0 {
			out[len(out)-1] += "'s"
			continue
		}
		if c, ok := contractions[w]; ok {
			w = c
		}
		out = append(out, w)
	}
	return out
}
