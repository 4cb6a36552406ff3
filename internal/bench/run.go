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

package bench

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Winners reported in Result.
const (
	WinnerScalar = "scalar"
	WinnerSIMD   = "simd"
)

// Stats summarizes the timed iterations of one variant.
type Stats struct {
	Times  []time.Duration
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
	Median time.Duration
}

// NewStats computes the summary of times. It returns the zero Stats for an
// empty slice. The median of an even number of samples is the mean of the
// two middle samples.
func NewStats(times []time.Duration) Stats {
	if len(times) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(times)
	slices.Sort(sorted)

	var total time.Duration
	for _, t := range sorted {
		total += t
	}

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Stats{
		Times:  times,
		Avg:    total / time.Duration(len(sorted)),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median,
	}
}

// Result is the outcome of running one case.
type Result struct {
	Name     string
	Category string
	Scalar   Stats

	// SIMD is the zero Stats when the case has no vector variant.
	SIMD Stats

	// Speedup is Scalar.Avg / SIMD.Avg, or 0 without a vector variant.
	Speedup float64
	Winner  string
}

// HasSIMD reports whether the result includes a vector variant.
func (r Result) HasSIMD() bool {
	return len(r.SIMD.Times) > 0
}

func newResult(c Case, scalar, simd Stats) Result {
	res := Result{
		Name:     c.Name,
		Category: c.Category,
		Scalar:   scalar,
		SIMD:     simd,
		Winner:   WinnerScalar,
	}
	if len(simd.Times) > 0 && simd.Avg > 0 {
		res.Speedup = float64(scalar.Avg) / float64(simd.Avg)
		if res.Speedup >= 1 {
			res.Winner = WinnerSIMD
		}
	}
	return res
}

// Run benchmarks c under cfg.
//
// The fixture is prepared once from cfg.Seed. When c has a vector variant,
// both variants are first run once on private copies and compared with
// c.Check. Each variant then runs cfg.WarmupIterations untimed and
// cfg.Iterations timed calls. ctx is checked between calls.
func Run(ctx context.Context, c Case, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	log := Logger().With("case", c.Name)
	fixture := c.Prepare(cfg, rand.New(rand.NewSource(cfg.Seed)))

	if c.SIMD != nil {
		if err := verify(c, fixture); err != nil {
			return Result{}, fmt.Errorf("%s: %w", c.Name, err)
		}
	}

	log.Debug("warming up", "iterations", cfg.WarmupIterations)
	scalar, err := measure(ctx, c, c.Scalar, fixture, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("%s scalar: %w", c.Name, err)
	}
	log.Debug("scalar done", "avg", scalar.Avg)

	var simd Stats
	if c.SIMD != nil {
		simd, err = measure(ctx, c, c.SIMD, fixture, cfg)
		if err != nil {
			return Result{}, fmt.Errorf("%s simd: %w", c.Name, err)
		}
		log.Debug("simd done", "avg", simd.Avg)
	}

	return newResult(c, scalar, simd), nil
}

func verify(c Case, fixture *Fixture) error {
	check := c.Check
	if check == nil {
		check = ExactCheck
	}

	sf, vf := fixture.Clone(), fixture.Clone()
	scalar := Outcome{Value: c.Scalar(sf), Fixture: sf}
	simd := Outcome{Value: c.SIMD(vf), Fixture: vf}
	return check(scalar, simd)
}

// measure runs k against a private copy of fixture. In-place kernels get
// the copy restored before every call.
func measure(ctx context.Context, c Case, k Kernel, fixture *Fixture, cfg Config) (Stats, error) {
	work := fixture.Clone()

	for range cfg.WarmupIterations {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if c.Mutates {
			work.restore(fixture)
		}
		k(work)
	}

	times := make([]time.Duration, 0, cfg.Iterations)
	for range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if c.Mutates {
			work.restore(fixture)
		}
		start := time.Now()
		k(work)
		times = append(times, time.Since(start))
	}
	return NewStats(times), nil
}

// RunAll runs every case in order. onProgress, when non-nil, is called
// before each case with its 1-based position. RunAll stops at the first
// error and returns the results gathered so far.
func RunAll(ctx context.Context, cases []Case, cfg Config, onProgress func(done, total int, name string)) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		if onProgress != nil {
			onProgress(i+1, len(cases), c.Name)
		}
		res, err := Run(ctx, c, cfg)
		if err != nil {
			return results, err
		}
		Logger().Info("benchmark finished",
			"case", res.Name,
			"scalar_avg", res.Scalar.Avg,
			"simd_avg", res.SIMD.Avg,
			"speedup", res.Speedup,
			"winner", res.Winner)
		results = append(results, res)
	}
	return results, nil
}
