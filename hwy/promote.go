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

// This file provides pure Go implementations of type promotion and demotion.
//
// Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions.

// PromoteU32ToU64 zero-extends each uint32 lane to uint64.
// Accumulating promoted lanes keeps a running sum free of 32-bit wraparound.
func PromoteU32ToU64(v Vec[uint32]) Vec[uint64] {
	var r Vec[uint64]
	for i := range r.data {
		r.data[i] = uint64(v.data[i])
	}
	return r
}

// PromoteF32ToF64 widens float32 to float64.
func PromoteF32ToF64(v Vec[float32]) Vec[float64] {
	var r Vec[float64]
	for i := range r.data {
		r.data[i] = float64(v.data[i])
	}
	return r
}

// DemoteU64ToU32 truncates each uint64 lane to its low 32 bits.
func DemoteU64ToU32(v Vec[uint64]) Vec[uint32] {
	var r Vec[uint32]
	for i := range r.data {
		r.data[i] = uint32(v.data[i])
	}
	return r
}
