// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// auditPath is the import path of the package providing the T type.
const auditPath = `"github.com/ckoshikumo/audit"`

// ErrNoAudits is returned if a directory has no audit functions.
var ErrNoAudits = errors.New("auditgen: no audit functions found")

// entry is a generated registration.
type entry struct {
	// Func is the registered function's identifier.
	Func string
	// Name is the test's human readable name.
	Name string
}

// table holds what a directory's package registers.
type table struct {
	Package         string
	SetUp, TearDown bool
	Tests           []entry
}

// Fixture is true if generated tests run bracketed by the program
// fixture.  Having only one of both functions registers the tests with
// fixture anyway to have the run fail with the missing counterpart.
func (t *table) Fixture() bool { return t.SetUp || t.TearDown }

// parseDir parses the go files of given directory in file-name order
// skipping test files and generated files.
func parseDir(dir string) (*table, error) {
	ee, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("auditgen: %w", err)
	}
	fset, tbl := token.NewFileSet(), &table{}
	for _, e := range ee {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(
			fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("auditgen: %w", err)
		}
		if ast.IsGenerated(f) {
			continue
		}
		if tbl.Package == "" {
			tbl.Package = f.Name.Name
		}
		if tbl.Package != f.Name.Name {
			return nil, fmt.Errorf("auditgen: %s: package %s: expected %s",
				name, f.Name.Name, tbl.Package)
		}
		tbl.add(f)
	}
	if len(tbl.Tests) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudits, dir)
	}
	return tbl, nil
}

// add appends the audit functions and fixture functions of given file.
func (t *table) add(f *ast.File) {
	audit, imported := importName(f)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv != nil || fd.Type.TypeParams != nil {
			continue
		}
		switch name := fd.Name.Name; {
		case name == "SetUp" && isNiladic(fd):
			t.SetUp = true
		case name == "TearDown" && isNiladic(fd):
			t.TearDown = true
		case imported && isAudit(fd, audit):
			t.Tests = append(t.Tests, entry{Func: name, Name: humanize(name)})
		}
	}
}

// importName returns the name the audit package is imported with; the
// empty name for a dot import.
func importName(f *ast.File) (string, bool) {
	for _, imp := range f.Imports {
		if imp.Path.Value != auditPath {
			continue
		}
		if imp.Name == nil {
			return "audit", true
		}
		if imp.Name.Name == "." {
			return "", true
		}
		return imp.Name.Name, true
	}
	return "", false
}

func isNiladic(fd *ast.FuncDecl) bool {
	return fd.Type.Params.NumFields() == 0 &&
		fd.Type.Results.NumFields() == 0
}

// isAudit reports if given function is named AuditXxx, has no results
// and takes a *T of the audit package imported with given name.
func isAudit(fd *ast.FuncDecl, audit string) bool {
	rest := strings.TrimPrefix(fd.Name.Name, "Audit")
	if rest == fd.Name.Name || rest == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(rest); unicode.IsLower(r) {
		return false
	}
	if fd.Type.Params.NumFields() != 1 || fd.Type.Results.NumFields() != 0 {
		return false
	}
	star, ok := fd.Type.Params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	switch x := star.X.(type) {
	case *ast.Ident:
		return audit == "" && x.Name == "T"
	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		return ok && pkg.Name == audit && x.Sel.Name == "T"
	}
	return false
}

var tmpl = template.Must(template.New("table").Parse(
	`// Code generated by auditgen; DO NOT EDIT.

package {{.Package}}

import "github.com/ckoshikumo/audit"

func init() {
{{- if .SetUp}}
	audit.SetUp(SetUp)
{{- end}}
{{- if .TearDown}}
	audit.TearDown(TearDown)
{{- end}}
{{- range .Tests}}
	audit.Test({{printf "%q" .Name}}, {{.Func}}{{if $.Fixture}}, audit.WithFixture(){{end}})
{{- end}}
}
`))

// render returns the gofmt-ed source of given table.
func render(t *table) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, t); err != nil {
		return nil, fmt.Errorf("auditgen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("auditgen: format: %w", err)
	}
	return src, nil
}
