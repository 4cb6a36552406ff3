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

// Package vec provides aggregate and element-wise kernels over uint32 buffers.
//
// Every kernel comes in two variants:
//   - Scalar: the canonical one-element-per-step loop (e.g., Sum)
//   - SIMD: the same result computed four lanes per step through the hwy
//     vector primitives, with a scalar loop for the len%4 tail (e.g., SumSIMD)
//
// The integer SIMD variants are bit-identical to their scalar counterparts
// for every input: lane-wise addition, wrapping multiplication and unsigned
// min/max do not depend on how elements are grouped.
//
// Buffers are borrowed for the duration of a call. In-place kernels
// (Multiply, Add, Reverse and their SIMD forms) mutate the caller's slice;
// callers sharing a slice across goroutines must serialize access.
package vec
