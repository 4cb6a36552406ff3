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

// Multiply replaces every element with element*factor in place.
// Products wrap modulo 2^32.
//
// Example:
//
//	data := []uint32{1, 2, 3}
//	Multiply(data, 3)
//	// data is now [3, 6, 9]
func Multiply(v []uint32, factor uint32) {
	for i := range v {
		v[i] *= factor
	}
}

// Add replaces every element with element+value in place.
// Sums wrap modulo 2^32.
func Add(v []uint32, value uint32) {
	for i := range v {
		v[i] += value
	}
}

// Reverse reverses the order of the elements in place.
// Applying it twice restores the original order.
func Reverse(v []uint32) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
