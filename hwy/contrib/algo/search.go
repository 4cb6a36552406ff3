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

// BinarySearch returns the index of target in slice, or -1 if it is absent.
//
// slice must be sorted ascending; on unsorted input the result is
// unspecified but always -1 or a valid index. When target occurs more than
// once, any of its indices may be returned.
func BinarySearch(slice []uint32, target uint32) int32 {
	left, right := 0, len(slice)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case slice[mid] == target:
			return int32(mid)
		case slice[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}
