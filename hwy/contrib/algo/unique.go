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

import (
	"slices"

	"github.com/ajroetker/arraykernels/hwy/contrib/sort"
)

// CountUnique returns the number of distinct values in slice.
//
// The input is not modified: a private copy is sorted with sort.QuickSort
// and runs of equal values are counted. Returns 0 for an empty slice.
func CountUnique(slice []uint32) uint32 {
	if len(slice) == 0 {
		return 0
	}

	work := slices.Clone(slice)
	sort.QuickSort(work)

	count := uint32(1)
	for i := 1; i < len(work); i++ {
		if work[i] != work[i-1] {
			count++
		}
	}
	return count
}
