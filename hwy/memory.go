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

package hwy

// LoadInterleaved3 loads interleaved triples and deinterleaves into three vectors.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3]
//	vec_b = [b0, b1, b2, b3]
//	vec_c = [c0, c1, c2, c3]
//
// This is useful for 3D coordinates (XYZ) stored in interleaved format.
// Only complete triples are loaded; lanes without one are zero.
func LoadInterleaved3[T Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	var a, b, c Vec[T]
	srcIdx := 0
	for i := 0; i < vectorLanes && srcIdx+2 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		c.data[i] = src[srcIdx+2]
		srcIdx += 3
	}
	return a, b, c
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format to Array-of-Structures (AoS).
//
// Output memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// This is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	dstIdx := 0
	for i := 0; i < vectorLanes && dstIdx+2 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dstIdx += 3
	}
}
