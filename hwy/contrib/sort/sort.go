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

package sort

import (
	"github.com/ajroetker/arraykernels/hwy"
	"github.com/ajroetker/arraykernels/internal/worklist"
)

// QuickSort sorts data in-place in ascending order.
//
// Each step pops a range, partitions it around its last element and pushes
// the non-trivial sides back. The sort is not stable. Slices of length <= 1
// are left untouched.
func QuickSort[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Pending ranges are disjoint and hold at least two elements each.
	stack := worklist.New(n/2 + 1)
	stack.Push(0, n-1)

	for {
		r, ok := stack.Pop()
		if !ok {
			break
		}

		p := partitionLomuto(data, r.Lo, r.Hi)

		if p-1 > r.Lo {
			stack.Push(r.Lo, p-1)
		}
		if p+1 < r.Hi {
			stack.Push(p+1, r.Hi)
		}
	}
}

// partitionLomuto partitions data[lo:hi+1] around data[hi] and returns the
// pivot's final index. Elements <= pivot end up on its left.
func partitionLomuto[T hwy.Lanes](data []T, lo, hi int) int {
	pivot := data[hi]
	i := lo - 1

	for j := lo; j < hi; j++ {
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[hi] = data[hi], data[i+1]
	return i + 1
}
