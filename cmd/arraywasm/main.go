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

// Command arraywasm builds the kernels as a WebAssembly module.
//
// Build it as a WASI reactor so the host can call the exports directly:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o array_processor.wasm ./cmd/arraywasm
//
// Every export takes offsets into the module's linear memory plus explicit
// element counts. The host allocates and fills the buffers; see package abi
// for the semantics of each entry point.
package main

func main() {}
