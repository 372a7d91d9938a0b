// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Auditsample is a test program of a small statistics package.  Its tests
are registered in two ways: audits.go registers during package
initialization while fixture.go declares audit functions which are
registered by the generated audit_gen.go.

	auditsample --list
	auditsample 2 0 2
	auditsample --strict --color never 7
*/
package main

import "github.com/ckoshikumo/audit"

//go:generate go run ../auditgen

func main() { audit.Main() }
