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

import "math"

// This file provides the pure Go lowering of every vector operation. Each
// operation works lane by lane on fixed-size arrays, which keeps the
// semantics identical on every target: integer lanes wrap on overflow and
// comparisons are unsigned for unsigned element types.

// Load creates a vector by loading data from a slice.
// If src holds fewer than MaxLanes elements, the missing lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.data[:], src)
	return v
}

// LoadFull loads exactly MaxLanes elements from src.
// It panics if src is shorter than one vector.
func LoadFull[T Lanes](src []T) Vec[T] {
	_ = src[vectorLanes-1]
	var v Vec[T]
	v.data[0] = src[0]
	v.data[1] = src[1]
	v.data[2] = src[2]
	v.data[3] = src[3]
	return v
}

// Store writes a vector's data to a slice.
// At most min(len(dst), MaxLanes) elements are written.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:])
}

// StoreFull writes all lanes of v to dst.
// It panics if dst is shorter than one vector.
func StoreFull[T Lanes](v Vec[T], dst []T) {
	_ = dst[vectorLanes-1]
	dst[0] = v.data[0]
	dst[1] = v.data[1]
	dst[2] = v.data[2]
	dst[3] = v.data[3]
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
// For integer lanes this keeps the low bits of the product, like PMULLD.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		if a.data[i] < b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// FMA performs fused multiply-add: a*b + c rounded once.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// MulAdd performs multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// ReduceSum sums all lanes. Integer lanes wrap.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.data {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range m.bits {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range m.bits {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
// Unsigned lanes compare as unsigned, like wasm's u32x4.gt.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range m.bits {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// IfThenElse selects a[i] where mask[i] is set and b[i] elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// CountTrue returns the number of active lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if every lane of mask is active.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if no lane of mask is active.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}
