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

package abi

import (
	"unsafe"

	"github.com/ajroetker/arraykernels/hwy"
)

// Buffer is a borrowed view of host memory.
type Buffer[T hwy.Lanes] struct {
	data []T
}

// FromSlice wraps an existing slice.
func FromSlice[T hwy.Lanes](s []T) Buffer[T] {
	return Buffer[T]{data: s}
}

// FromPointer builds a Buffer over n elements starting at p.
// A nil p is only valid with n == 0; anything else panics.
func FromPointer[T hwy.Lanes](p *T, n uint32) Buffer[T] {
	if n == 0 {
		return Buffer[T]{}
	}
	if p == nil {
		panic("abi: nil pointer with non-zero length")
	}
	return Buffer[T]{data: unsafe.Slice(p, n)}
}

// Len returns the number of elements in the buffer.
func (b Buffer[T]) Len() int {
	return len(b.data)
}

// Slice returns the underlying elements. The slice aliases host memory and
// must not outlive the call that produced the Buffer.
func (b Buffer[T]) Slice() []T {
	return b.data
}
