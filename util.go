// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package audit

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location is a source position of a registration or a check.
type Location struct {
	File string
	Line int
}

// String returns l's file base name and line, e.g. "calc_test.go:12".
func (l Location) String() string {
	if l.File == "" {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

// callerLocation reports the location of the function skip frames above
// its caller, i.e. callerLocation(1) is the caller of the function
// calling callerLocation.
func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
