// Copyright 2026 The chainlint authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chainlint/chainlint/analyzer"
	"github.com/chainlint/chainlint/internal/config"
	"github.com/chainlint/chainlint/parser"
)

// errFindings signals a clean run that reported findings, so main can pick
// the exit code without treating it as a failure.
var errFindings = errors.New("findings reported")

var defaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

type options struct {
	configPath string
	format     string
	extensions []string
	verbose    bool

	andChains bool
	orChains  bool
	fallback  bool
}

func newRootCmd() *cobra.Command {
	o := &options{}

	c := &cobra.Command{
		Use:           "chainlint [path ...]",
		Short:         "Chainlint suggests the chaining operator for step-by-step guard chains.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	c.Flags().StringVarP(&o.configPath, "config", "c", "", "configuration file (default "+config.DefaultFileName+")")
	c.Flags().StringVarP(&o.format, "format", "f", "", "report format: text, json or sarif")
	c.Flags().StringSliceVar(&o.extensions, "ext", nil, "file extensions scanned in directories")
	c.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	c.Flags().BoolVar(&o.andChains, "and-chains", true, "detect && guard chains")
	c.Flags().BoolVar(&o.orChains, "or-chains", true, "detect negated || guard chains")
	c.Flags().BoolVar(&o.fallback, "fallback", true, "detect empty-object fallback accesses")

	return c
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	level := hclog.Warn
	if o.verbose {
		level = hclog.Debug
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "chainlint",
		Level:  level,
		Output: os.Stderr,
	})

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	checks := cfg.ChecksMask()

	// Flags given explicitly win over the configuration file.
	for _, f := range []struct {
		name  string
		check config.Check
		value bool
	}{
		{"and-chains", config.AndChains, o.andChains},
		{"or-chains", config.OrChains, o.orChains},
		{"fallback", config.Fallback, o.fallback},
	} {
		if cmd.Flags().Changed(f.name) {
			checks.Set(f.check, f.value)
		}
	}

	format := o.format
	if format == "" {
		format = cfg.Format
	}

	if format == "" {
		format = "text"
	}

	extensions := o.extensions
	if len(extensions) == 0 {
		extensions = cfg.Extensions
	}

	if len(extensions) == 0 {
		extensions = defaultExtensions
	}

	a := analyzer.New(
		analyzer.WithAndChains(checks.Enabled(config.AndChains)),
		analyzer.WithOrChains(checks.Enabled(config.OrChains)),
		analyzer.WithFallback(checks.Enabled(config.Fallback)),
	)

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := discover(paths, extensions, logger)
	if err != nil {
		return err
	}

	var report []location

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("can't read %q: %w", file, err)
		}

		src, prog, err := parser.Parse(file, string(data))
		if err != nil {
			logger.Warn("skipping unparseable file", "file", file, "error", err)

			continue
		}

		for _, f := range a.AnalyzeProgram(src, prog) {
			report = append(report, locate(src, file, f))
		}
	}

	if err := write(os.Stdout, format, report); err != nil {
		return err
	}

	if len(report) > 0 {
		return errFindings
	}

	return nil
}
