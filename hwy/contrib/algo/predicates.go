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

import "github.com/ajroetker/arraykernels/hwy"

// Predicate defines an operation that can test individual values or vectors.
type Predicate[T hwy.Lanes] interface {
	// Test returns true if the scalar value satisfies the predicate.
	// Used by the scalar tail loop.
	Test(value T) bool

	// Apply returns a mask indicating which lanes satisfy the predicate.
	// Used by SIMD code paths.
	Apply(v hwy.Vec[T]) hwy.Mask[T]
}

// Preparable is an optional interface for predicates that can pre-compute
// comparison vectors before a loop.
type Preparable[T hwy.Lanes] interface {
	Predicate[T]
	// Prepare returns a version of this predicate with pre-computed comparison vectors.
	Prepare() Predicate[T]
}

// GreaterThan returns true for values where v > threshold.
type GreaterThan[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

func (p GreaterThan[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.GreaterThan(v, hwy.Set(p.Threshold))
}

func (p GreaterThan[T]) Prepare() Predicate[T] {
	return preparedGreaterThan[T]{threshold: p.Threshold, thresholdVec: hwy.Set(p.Threshold)}
}

type preparedGreaterThan[T hwy.Lanes] struct {
	threshold    T
	thresholdVec hwy.Vec[T]
}

func (p preparedGreaterThan[T]) Test(value T) bool {
	return value > p.threshold
}

func (p preparedGreaterThan[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.GreaterThan(v, p.thresholdVec)
}

// Equal returns true for values where v == value.
type Equal[T hwy.Lanes] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

func (p Equal[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(v, hwy.Set(p.Value))
}
