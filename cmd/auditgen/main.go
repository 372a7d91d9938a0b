// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Auditgen writes the registration table of a test program's package.  It
parses the non-test go files of a directory in file-name order and
registers every function of the form

	func AuditXxx(t *audit.T)

in order of appearance with a human readable name, e.g.
Audit_divides_evenly becomes "divides evenly" and AuditDividesEvenly
becomes "divides evenly" too.  Package level functions

	func SetUp()
	func TearDown()

become the program fixture run around each generated test.

Usage:

	auditgen [-o file] [--pkg name] [-v] [dir]

dir defaults to the current directory, the output file to
audit_gen.go in dir.  Auditgen is meant to be run by go generate:

	//go:generate go run github.com/ckoshikumo/audit/cmd/auditgen
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckoshikumo/audit/internal/cli"
	"github.com/ckoshikumo/audit/internal/logging"
)

// DefaultOutput is the name of the generated file if none is given.
const DefaultOutput = "audit_gen.go"

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	var output, pkg string
	var verbose bool
	cmd := &cobra.Command{
		Use:           "auditgen [dir]",
		Short:         "Generate the registration table of audit functions",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, dirs []string) error {
			dir := "."
			if len(dirs) == 1 {
				dir = dirs[0]
			}
			log := logging.New(os.Stderr, verbose)
			defer func() { _ = log.Sync() }()
			return generate(dir, output, pkg, log)
		},
	}
	cmd.SetArgs(args)
	cmd.Flags().StringVarP(&output, "output", "o", DefaultOutput,
		"generated file, relative names are relative to dir")
	cmd.Flags().StringVar(&pkg, "pkg", "",
		"package name of the generated file (default parsed package)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log the registered functions")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n\n", err)
		return cli.ExitFatal
	}
	return cli.ExitOK
}

// generate writes the registration table of given directory's package
// to given output file.
func generate(dir, output, pkg string, log *zap.Logger) error {
	tbl, err := parseDir(dir)
	if err != nil {
		return err
	}
	if pkg != "" {
		tbl.Package = pkg
	}
	for _, e := range tbl.Tests {
		log.Debug("registering", zap.String("func", e.Func),
			zap.String("name", e.Name))
	}
	src, err := render(tbl)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("auditgen: write: %w", err)
	}
	log.Debug("generated", zap.String("file", output),
		zap.Int("tests", len(tbl.Tests)))
	return nil
}
