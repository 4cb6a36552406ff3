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

// Package worklist provides an explicit stack of index ranges for
// divide-and-conquer kernels that must not recurse.
//
// A kernel pushes the sub-ranges it still has to process and pops them until
// the stack is empty, so auxiliary memory is bounded by the preallocated
// capacity instead of by call-stack depth.
package worklist

// Range is a closed index interval [Lo, Hi].
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// Stack is a LIFO of pending ranges backed by a single allocation.
//
// A Stack is owned by one call; it is not safe for concurrent use and is
// released with the call's frame.
type Stack struct {
	items []Range
}

// New returns a stack able to hold n ranges without growing.
//
// For a kernel partitioning a buffer of length n, at most n/2 ranges of
// length >= 2 can be pending at once, so New(n/2+1) never reallocates.
func New(n int) *Stack {
	return &Stack{items: make([]Range, 0, max(n, 1))}
}

// Push adds [lo, hi] to the top of the stack.
func (s *Stack) Push(lo, hi int) {
	s.items = append(s.items, Range{Lo: lo, Hi: hi})
}

// Pop removes and returns the top range. ok is false when the stack is empty.
func (s *Stack) Pop() (r Range, ok bool) {
	n := len(s.items)
	if n == 0 {
		return Range{}, false
	}
	r = s.items[n-1]
	s.items = s.items[:n-1]
	return r, true
}

// Len returns the number of pending ranges.
func (s *Stack) Len() int {
	return len(s.items)
}

// Cap returns the number of ranges the stack can hold without growing.
func (s *Stack) Cap() int {
	return cap(s.items)
}
