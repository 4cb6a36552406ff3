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

// Package abi is the foreign call boundary of the kernels.
//
// Every entry point takes a base pointer plus an explicit element count,
// borrows the memory for the duration of the call, and never retains it.
// The host owns allocation; the entry points perform no validation beyond
// what Go's bounds checks provide, so a pointer/length pair that does not
// describe live memory is undefined behavior.
//
// For Go callers, Table groups the integer kernels so that a scalar or
// SIMD implementation can be selected as a unit. Best picks one based on
// the detected dispatch level.
package abi
