// Copyright 2025 go-highway Authors
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

// Command kernelbench times the scalar and SIMD variants of every kernel.
//
// Usage:
//
//	kernelbench                                # every case, default sizes
//	kernelbench -category aggregate -size 1000000
//	kernelbench -case sum -case transform -iterations 500
//	go test -bench . ./... | kernelbench -parse -   # pair go test results
//
// In -parse mode, benchmarks named <Kernel>/scalar and <Kernel>/simd are
// paired from "go test -bench" output (a file path or - for stdin) and
// their speedups reported.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/ajroetker/arraykernels/hwy"
	"github.com/ajroetker/arraykernels/internal/bench"
)

// caseList collects repeated -case flags.
type caseList []string

func (c *caseList) String() string { return strings.Join(*c, ",") }

func (c *caseList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type options struct {
	cfg      bench.Config
	category string
	cases    caseList
	parse    string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := bench.DefaultConfig()
	var o options

	fs := flag.NewFlagSet("kernelbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.cfg.ArraySize, "size", def.ArraySize, "Elements (or 3D points) per fixture")
	fs.IntVar(&o.cfg.Iterations, "iterations", def.Iterations, "Timed calls per variant")
	fs.IntVar(&o.cfg.WarmupIterations, "warmup", def.WarmupIterations, "Untimed calls per variant before timing")
	fs.Int64Var(&o.cfg.Seed, "seed", def.Seed, "Fixture generator seed")
	fs.StringVar(&o.category, "category", "", "Only run cases in this category")
	fs.Var(&o.cases, "case", "Only run the named case (repeatable)")
	fs.StringVar(&o.parse, "parse", "", "Pair scalar/simd results from go test -bench output in this file (- for stdin)")
	fs.BoolVar(&o.verbose, "v", false, "Log per-phase progress")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	bench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(ctx, o, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer) error {
	if o.parse != "" {
		return runParse(o.parse, stdin, stdout)
	}

	cases, err := selectCases(bench.DefaultRegistry(), o)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases in category %q", o.category)
	}

	fmt.Fprintf(stdout, "dispatch: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	results, err := bench.RunAll(ctx, cases, o.cfg, func(done, total int, name string) {
		bench.Logger().Debug("running", "case", name, "progress", fmt.Sprintf("%d/%d", done, total))
	})
	if err != nil {
		return err
	}
	return bench.WriteReport(stdout, results, o.cfg)
}

func selectCases(reg *bench.Registry, o options) ([]bench.Case, error) {
	var cases []bench.Case
	if len(o.cases) > 0 {
		for _, name := range o.cases {
			c, err := reg.Lookup(name)
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		}
	} else {
		cases = reg.All()
	}

	if o.category == "" {
		return cases, nil
	}
	var filtered []bench.Case
	for _, c := range cases {
		if c.Category == o.category {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func runParse(path string, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	pairs, err := bench.ParsePairs(r)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return errors.New("no scalar/simd benchmark pairs found")
	}
	return bench.WritePairs(stdout, pairs)
}
