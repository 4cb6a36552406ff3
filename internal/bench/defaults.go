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
	"math/rand"
	"slices"

	"github.com/ajroetker/arraykernels/hwy/contrib/affine"
	"github.com/ajroetker/arraykernels/hwy/contrib/algo"
	"github.com/ajroetker/arraykernels/hwy/contrib/sort"
	"github.com/ajroetker/arraykernels/hwy/contrib/vec"
)

// Categories of the default cases.
const (
	CategoryAggregate = "aggregate"
	CategoryMutate    = "mutate"
	CategorySort      = "sort"
	CategorySearch    = "search"
	CategoryTransform = "transform"
)

const (
	maxRandomValue = 1_000_000
	multiplyFactor = 2
	addValue       = 7
	countThreshold = 500_000
	transformTol   = 1e-4
)

func randomInts(cfg Config, rng *rand.Rand) *Fixture {
	ints := make([]uint32, cfg.ArraySize)
	for i := range ints {
		ints[i] = uint32(rng.Intn(maxRandomValue))
	}
	return &Fixture{Ints: ints}
}

func sortedInts(cfg Config, rng *rand.Rand) *Fixture {
	f := randomInts(cfg, rng)
	slices.Sort(f.Ints)
	if len(f.Ints) > 0 {
		f.Target = f.Ints[len(f.Ints)/2]
	}
	return f
}

func randomPoints(cfg Config, rng *rand.Rand) *Fixture {
	points := make([]float32, 3*cfg.ArraySize)
	for i := range points {
		points[i] = rng.Float32()*200 - 100
	}
	return &Fixture{
		Points: points,
		Matrix: affine.BuildTransform(2, 1.5, 1, 45, 10, 20, 5),
	}
}

// inPlace adapts a kernel that only mutates its fixture.
func inPlace(fn func(f *Fixture)) Kernel {
	return func(f *Fixture) any {
		fn(f)
		return nil
	}
}

// DefaultRegistry returns a registry holding every kernel in the module.
func DefaultRegistry() *Registry {
	r := &Registry{}
	for _, c := range defaultCases() {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

func defaultCases() []Case {
	return []Case{
		{
			Name: "sum", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return vec.Sum(f.Ints) },
			SIMD:   func(f *Fixture) any { return vec.SumSIMD(f.Ints) },
		},
		{
			Name: "max", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return vec.Max(f.Ints) },
			SIMD:   func(f *Fixture) any { return vec.MaxSIMD(f.Ints) },
		},
		{
			Name: "min", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return vec.Min(f.Ints) },
			SIMD:   func(f *Fixture) any { return vec.MinSIMD(f.Ints) },
		},
		{
			Name: "average", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return vec.Average(f.Ints) },
			SIMD:   func(f *Fixture) any { return vec.AverageSIMD(f.Ints) },
		},
		{
			Name: "variance", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return vec.Variance(f.Ints) },
		},
		{
			Name: "countGreaterThan", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return algo.CountGreaterThan(f.Ints, countThreshold) },
			SIMD:   func(f *Fixture) any { return algo.CountGreaterThanSIMD(f.Ints, countThreshold) },
		},
		{
			Name: "countUnique", Category: CategoryAggregate, Prepare: randomInts,
			Scalar: func(f *Fixture) any { return algo.CountUnique(f.Ints) },
		},
		{
			Name: "multiply", Category: CategoryMutate, Prepare: randomInts, Mutates: true,
			Scalar: inPlace(func(f *Fixture) { vec.Multiply(f.Ints, multiplyFactor) }),
			SIMD:   inPlace(func(f *Fixture) { vec.MultiplySIMD(f.Ints, multiplyFactor) }),
		},
		{
			Name: "add", Category: CategoryMutate, Prepare: randomInts, Mutates: true,
			Scalar: inPlace(func(f *Fixture) { vec.Add(f.Ints, addValue) }),
			SIMD:   inPlace(func(f *Fixture) { vec.AddSIMD(f.Ints, addValue) }),
		},
		{
			Name: "reverse", Category: CategoryMutate, Prepare: randomInts, Mutates: true,
			Scalar: inPlace(func(f *Fixture) { vec.Reverse(f.Ints) }),
		},
		{
			Name: "quickSort", Category: CategorySort, Prepare: randomInts, Mutates: true,
			Scalar: inPlace(func(f *Fixture) { sort.QuickSort(f.Ints) }),
		},
		{
			Name: "binarySearch", Category: CategorySearch, Prepare: sortedInts,
			Scalar: func(f *Fixture) any { return algo.BinarySearch(f.Ints, f.Target) },
		},
		{
			Name: "transform", Category: CategoryTransform, Prepare: randomPoints, Mutates: true,
			Scalar: inPlace(func(f *Fixture) { affine.Transform(f.Points, &f.Matrix) }),
			SIMD:   inPlace(func(f *Fixture) { affine.TransformSIMD(f.Points, &f.Matrix) }),
			Check:  ApproxPointsCheck(transformTol),
		},
	}
}
