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
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatDuration renders d in microseconds below one millisecond, in
// milliseconds below one second, and in seconds otherwise, always with two
// decimals.
func FormatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	switch {
	case ms < 1:
		return fmt.Sprintf("%.2fµs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.2fms", ms)
	default:
		return fmt.Sprintf("%.2fs", ms/1000)
	}
}

// Summary aggregates a set of results.
type Summary struct {
	Cases          int
	Compared       int
	SIMDWins       int
	AverageSpeedup float64
}

// Summarize counts the results with a vector variant and averages their
// speedups.
func Summarize(results []Result) Summary {
	s := Summary{Cases: len(results)}
	var total float64
	for _, r := range results {
		if !r.HasSIMD() {
			continue
		}
		s.Compared++
		total += r.Speedup
		if r.Winner == WinnerSIMD {
			s.SIMDWins++
		}
	}
	if s.Compared > 0 {
		s.AverageSpeedup = total / float64(s.Compared)
	}
	return s
}

// WriteReport writes a table of results followed by a summary line.
func WriteReport(w io.Writer, results []Result, cfg Config) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "array size %d, %d iterations, %d warmup\n\n",
		cfg.ArraySize, cfg.Iterations, cfg.WarmupIterations); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tCATEGORY\tSCALAR AVG\tSCALAR MEDIAN\tSIMD AVG\tSIMD MEDIAN\tSPEEDUP\tWINNER")
	for _, r := range results {
		simdAvg, simdMedian, speedup := "-", "-", "-"
		if r.HasSIMD() {
			simdAvg = FormatDuration(r.SIMD.Avg)
			simdMedian = FormatDuration(r.SIMD.Median)
			speedup = fmt.Sprintf("%.2fx", r.Speedup)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Category,
			FormatDuration(r.Scalar.Avg), FormatDuration(r.Scalar.Median),
			simdAvg, simdMedian, speedup, r.Winner)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := Summarize(results)
	_, err := p.Fprintf(w, "\nsimd faster in %d of %d compared cases (%d total), average speedup %.2fx\n",
		s.SIMDWins, s.Compared, s.Cases, s.AverageSpeedup)
	return err
}
