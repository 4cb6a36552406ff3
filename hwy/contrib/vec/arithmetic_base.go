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

// MultiplySIMD multiplies every element by factor in place using hwy
// primitives. The result is identical to Multiply, including wraparound.
//
// Example:
//
//	data := []uint32{1, 2, 3, 4, 5}
//	MultiplySIMD(data, 2)
//	// data is now [2, 4, 6, 8, 10]
func MultiplySIMD(v []uint32, factor uint32) {
	vf := hwy.Set(factor)

	hwy.ProcessWithTail[uint32](len(v),
		func(offset int) {
			va := hwy.LoadFull(v[offset:])
			hwy.StoreFull(hwy.Mul(va, vf), v[offset:])
		},
		func(offset, count int) {
			Multiply(v[offset:offset+count], factor)
		},
	)
}

// AddSIMD adds value to every element in place using hwy primitives.
// The result is identical to Add, including wraparound.
func AddSIMD(v []uint32, value uint32) {
	vv := hwy.Set(value)
	lanes := vv.NumLanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		va := hwy.LoadFull(v[i:])
		hwy.StoreFull(hwy.Add(va, vv), v[i:])
	}

	// Handle tail elements with scalar code
	for ; i < len(v); i++ {
		v[i] += value
	}
}
