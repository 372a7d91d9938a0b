// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli interprets the command line of a test program: flags
// configure the run, remaining arguments are test indices.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckoshikumo/audit/internal/config"
	"github.com/ckoshikumo/audit/internal/logging"
)

// Exit statuses of a test program.
const (
	// ExitOK reports a run without failed checks.
	ExitOK = 0
	// ExitFailed reports failed checks or a run which couldn't run
	// any of the requested tests.
	ExitFailed = 1
	// ExitFatal reports a run aborted by invalid arguments, an invalid
	// configuration, missing fixture functions or exhausted stores.
	ExitFatal = 2
)

// App is what a command line is executed against.
type App interface {
	// List prints the tests and returns an exit status.
	List() int
	// Run runs the tests with given indices, or all tests if none is
	// given, and returns an exit status.
	Run(tokens []string) int
}

// Factory creates the App of a command line from the loaded
// configuration and the diagnostics logger.
type Factory func(*config.Config, *zap.Logger) App

type flags struct {
	list, strict, showConfig, verbose bool
	color, configFile                 string
}

// Execute interprets given arguments, not including the program name,
// and returns the exit status of the App created by given factory.
// Flag and configuration errors are printed to errOut and reported as
// ExitFatal.
func Execute(
	prog string, args []string, out, errOut io.Writer, newApp Factory,
) int {
	if args == nil {
		args = []string{}
	}
	status := ExitOK
	ff := &flags{}
	cmd := &cobra.Command{
		Use:   prog + " [index...]",
		Short: "Run the registered tests of " + prog,
		Long: `Run the registered tests in registration order or, if test
indices are given, the tests with these indices in the given order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			cfg, err := configOf(cmd, ff)
			if err != nil {
				return err
			}
			if ff.showConfig {
				data, err := cfg.YAML()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			log := logging.New(errOut, cfg.Verbose)
			defer func() { _ = log.Sync() }()
			app := newApp(cfg, log)
			if ff.list {
				status = app.List()
				return nil
			}
			status = app.Run(tokens)
			return nil
		},
	}
	cmd.SetArgs(negativesAsTokens(args))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&ff.list, "list", false,
		"print each test's index and name and exit")
	cmd.Flags().BoolVar(&ff.strict, "strict", false,
		"abort the run if a test index doesn't exist")
	cmd.Flags().StringVar(&ff.color, "color", config.ColorAuto,
		"color the report: auto, always or never")
	cmd.Flags().StringVar(&ff.configFile, "config", "",
		"read the configuration from this YAML file (default $"+
			config.EnvConfig+")")
	cmd.Flags().BoolVar(&ff.showConfig, "show-config", false,
		"print the effective configuration as YAML and exit")
	cmd.Flags().BoolVarP(&ff.verbose, "verbose", "v", false,
		"log diagnostics to the error output")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "ERROR: %v\n\n", err)
		return ExitFatal
	}
	return status
}

// negativesAsTokens moves arguments looking like negative numbers
// behind the flag terminator so they reach the App as tokens which it
// rejects as test indices instead of being parsed as unknown shorthand
// flags.  The order of other arguments is kept.
func negativesAsTokens(args []string) []string {
	kept, negatives := []string{}, []string{}
	rest := []string{}
	for i, a := range args {
		if a == "--" {
			rest = args[i+1:]
			break
		}
		if len(a) > 1 && a[0] == '-' && a[1] >= '0' && a[1] <= '9' {
			negatives = append(negatives, a)
			continue
		}
		kept = append(kept, a)
	}
	if len(negatives) == 0 {
		return args
	}
	kept = append(kept, "--")
	kept = append(kept, negatives...)
	return append(kept, rest...)
}

// configOf loads the configuration and applies the flags which were set
// on the command line.
func configOf(cmd *cobra.Command, ff *flags) (*config.Config, error) {
	cfg, err := config.Load(ff.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = ff.strict
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = ff.color
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = ff.verbose
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
