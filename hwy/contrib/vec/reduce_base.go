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

package vec

import "github.com/ajroetker/arraykernels/hwy"

// SumSIMD computes the same value as Sum using hwy primitives.
//
// Each step loads four elements and adds them, zero-extended, into four
// 64-bit lane accumulators, so the result equals Sum for every input.
//
// Returns 0 if the slice is empty.
func SumSIMD(v []uint32) uint64 {
	acc := hwy.Zero[uint64]()
	lanes := acc.NumLanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		va := hwy.LoadFull(v[i:])
		acc = hwy.Add(acc, hwy.PromoteU32ToU64(va))
	}

	// Reduce vector sum to scalar
	result := hwy.ReduceSum(acc)

	// Handle tail elements with scalar code
	for ; i < len(v); i++ {
		result += uint64(v[i])
	}

	return result
}

// MaxSIMD returns the largest element using hwy primitives.
//
// Returns 0 if the slice is empty. Slices shorter than one vector use the
// scalar loop; otherwise the accumulator is seeded from the first vector.
func MaxSIMD(v []uint32) uint32 {
	if len(v) == 0 {
		return 0
	}

	// Get lanes count before loading to check slice length
	lanes := hwy.MaxLanes[uint32]()

	// If slice is shorter than one vector, use scalar code
	if len(v) < lanes {
		return Max(v)
	}

	maxVec := hwy.LoadFull(v)

	// Process full vectors
	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		va := hwy.LoadFull(v[i:])
		maxVec = hwy.Max(maxVec, va)
	}

	// Reduce vector max to scalar
	result := hwy.ReduceMax(maxVec)

	// Handle tail elements with scalar code
	for ; i < len(v); i++ {
		if v[i] > result {
			result = v[i]
		}
	}

	return result
}

// MinSIMD returns the smallest element using hwy primitives.
//
// Returns 0 if the slice is empty. Slices shorter than one vector use the
// scalar loop; otherwise the accumulator is seeded from the first vector.
func MinSIMD(v []uint32) uint32 {
	if len(v) == 0 {
		return 0
	}

	lanes := hwy.MaxLanes[uint32]()
	if len(v) < lanes {
		return Min(v)
	}

	minVec := hwy.LoadFull(v)

	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		minVec = hwy.Min(minVec, hwy.LoadFull(v[i:]))
	}

	result := hwy.ReduceMin(minVec)

	for ; i < len(v); i++ {
		if v[i] < result {
			result = v[i]
		}
	}

	return result
}

// AverageSIMD returns SumSIMD(v) / len(v), or 0 if the slice is empty.
// Because SumSIMD is exact, AverageSIMD always equals Average.
func AverageSIMD(v []uint32) float64 {
	if len(v) == 0 {
		return 0
	}
	return float64(SumSIMD(v)) / float64(len(v))
}
