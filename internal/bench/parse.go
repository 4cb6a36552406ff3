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
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/tools/benchmark/parse"
)

// Sub-benchmark names that mark the two variants of a kernel.
const (
	variantScalar = "scalar"
	variantSIMD   = "simd"
)

// Pair joins the scalar and simd sub-benchmarks of one kernel, as emitted by
// "go test -bench" for benchmarks named <Kernel>/scalar and <Kernel>/simd.
type Pair struct {
	Name          string
	ScalarNsPerOp float64
	SIMDNsPerOp   float64
}

// Speedup returns ScalarNsPerOp / SIMDNsPerOp.
func (p Pair) Speedup() float64 {
	if p.SIMDNsPerOp == 0 {
		return 0
	}
	return p.ScalarNsPerOp / p.SIMDNsPerOp
}

// ParsePairs reads "go test -bench" output from r and returns the kernels
// that have both a scalar and a simd result, sorted by name. Repeated runs
// (-count) are averaged.
func ParsePairs(r io.Reader) ([]Pair, error) {
	set, err := parse.ParseSet(r)
	if err != nil {
		return nil, fmt.Errorf("parsing benchmark output: %w", err)
	}

	type acc struct {
		scalar, simd []float64
	}
	byName := map[string]*acc{}
	for fullName, runs := range set {
		name, variant, ok := splitVariant(fullName)
		if !ok {
			continue
		}
		a := byName[name]
		if a == nil {
			a = &acc{}
			byName[name] = a
		}
		for _, b := range runs {
			if variant == variantScalar {
				a.scalar = append(a.scalar, b.NsPerOp)
			} else {
				a.simd = append(a.simd, b.NsPerOp)
			}
		}
	}

	var pairs []Pair
	for name, a := range byName {
		if len(a.scalar) == 0 || len(a.simd) == 0 {
			continue
		}
		pairs = append(pairs, Pair{
			Name:          name,
			ScalarNsPerOp: mean(a.scalar),
			SIMDNsPerOp:   mean(a.simd),
		})
	}
	slices.SortFunc(pairs, func(a, b Pair) int { return strings.Compare(a.Name, b.Name) })
	return pairs, nil
}

// splitVariant turns "BenchmarkSum/size_16/simd-8" into ("Sum/size_16", "simd").
func splitVariant(fullName string) (name, variant string, ok bool) {
	n := strings.TrimPrefix(fullName, "Benchmark")
	if i := strings.LastIndexByte(n, '-'); i >= 0 && isDigits(n[i+1:]) {
		n = n[:i]
	}
	i := strings.LastIndexByte(n, '/')
	if i < 0 {
		return "", "", false
	}
	name, variant = n[:i], n[i+1:]
	if variant != variantScalar && variant != variantSIMD {
		return "", "", false
	}
	return name, variant, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func mean(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

// WritePairs writes a table of parsed pairs.
func WritePairs(w io.Writer, pairs []Pair) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KERNEL\tSCALAR NS/OP\tSIMD NS/OP\tSPEEDUP")
	for _, pair := range pairs {
		p.Fprintf(tw, "%s\t%.1f\t%.1f\t%.2fx\n", pair.Name, pair.ScalarNsPerOp, pair.SIMDNsPerOp, pair.Speedup())
	}
	return tw.Flush()
}
