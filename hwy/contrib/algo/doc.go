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

// Package algo provides counting and searching kernels over uint32 buffers.
//
// # Counting
//
//   - CountGreaterThan, CountGreaterThanSIMD: elements strictly above a threshold
//   - CountIf: elements matching any Predicate, four lanes per step
//   - CountUnique: number of distinct values
//
// # Searching
//
//   - BinarySearch: index of a target in an ascending buffer, or -1
//
// # Example Usage
//
//	import "github.com/ajroetker/arraykernels/hwy/contrib/algo"
//
//	data := []uint32{1, 5, 3, 7, 2}
//	n := algo.CountGreaterThanSIMD(data, 3) // 2
//
//	sorted := []uint32{1, 3, 5, 7, 9}
//	idx := algo.BinarySearch(sorted, 7) // 3
package algo
