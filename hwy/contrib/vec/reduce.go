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

// Sum returns the sum of all elements, widened to 64 bits so buffers of
// 32-bit values cannot overflow it.
//
// Returns 0 if the slice is empty.
//
// Example:
//
//	data := []uint32{1, 2, 3, 4}
//	result := Sum(data)  // 10
func Sum(v []uint32) uint64 {
	var sum uint64
	for _, x := range v {
		sum += uint64(x)
	}
	return sum
}

// Max returns the largest element, or 0 if the slice is empty.
func Max(v []uint32) uint32 {
	if len(v) == 0 {
		return 0
	}
	result := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > result {
			result = v[i]
		}
	}
	return result
}

// Min returns the smallest element, or 0 if the slice is empty.
func Min(v []uint32) uint32 {
	if len(v) == 0 {
		return 0
	}
	result := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] < result {
			result = v[i]
		}
	}
	return result
}

// Average returns Sum(v) / len(v), or 0 if the slice is empty.
func Average(v []uint32) float64 {
	if len(v) == 0 {
		return 0
	}
	return float64(Sum(v)) / float64(len(v))
}

// Variance returns the population variance of v: the mean of the squared
// deviations from Average(v). Returns 0 if the slice is empty.
func Variance(v []uint32) float64 {
	if len(v) == 0 {
		return 0
	}

	mean := Average(v)
	var acc float64
	for _, x := range v {
		diff := float64(x) - mean
		acc += diff * diff
	}
	return acc / float64(len(v))
}
