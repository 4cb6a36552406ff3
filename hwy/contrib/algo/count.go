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

package algo

import "github.com/ajroetker/arraykernels/hwy"

// CountGreaterThan returns the number of elements strictly greater than
// threshold.
func CountGreaterThan(slice []uint32, threshold uint32) uint32 {
	var count uint32
	for _, v := range slice {
		if v > threshold {
			count++
		}
	}
	return count
}

// CountGreaterThanSIMD returns the same count as CountGreaterThan, comparing
// four elements per step with an unsigned greater-than mask.
func CountGreaterThanSIMD(slice []uint32, threshold uint32) uint32 {
	return uint32(CountIf(slice, GreaterThan[uint32]{Threshold: threshold}))
}

// CountIf returns the number of elements where pred returns true.
// Predicates implementing Preparable are prepared once before the loop.
//
// Example: Count elements equal to 0
//
//	n := CountIf(data, Equal[uint32]{Value: 0})
func CountIf[T hwy.Lanes, P Predicate[T]](slice []T, pred P) int {
	n := len(slice)
	if n == 0 {
		return 0
	}

	var p Predicate[T] = pred
	if pp, ok := p.(Preparable[T]); ok {
		p = pp.Prepare()
	}

	lanes := hwy.MaxLanes[T]()
	count := 0
	i := 0

	// Process full vectors
	for ; i+lanes <= n; i += lanes {
		v := hwy.LoadFull(slice[i:])
		count += hwy.CountTrue(p.Apply(v))
	}

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		if p.Test(slice[i]) {
			count++
		}
	}

	return count
}
