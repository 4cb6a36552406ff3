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

// Package sort provides in-place sorting for kernel buffers.
//
// QuickSort is an iterative Lomuto-partition quicksort: the sub-ranges left
// to sort live on an explicit worklist.Stack instead of the call stack, so
// already-sorted or reverse-sorted inputs cost O(n^2) time but never more
// than O(n) auxiliary memory.
//
// # Example Usage
//
//	import "github.com/ajroetker/arraykernels/hwy/contrib/sort"
//
//	func ProcessData(data []uint32) {
//	    sort.QuickSort(data)  // In-place ascending sort
//	}
//
//	func CheckSorted(data []uint32) bool {
//	    return sort.IsSorted(data)
//	}
package sort
