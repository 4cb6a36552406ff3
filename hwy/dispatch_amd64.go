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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// hasSSE41 indicates SSE4.1 support: PMULLD (32-bit low multiply) and
// PMINUD/PMAXUD (unsigned 32-bit min/max). Without it, the 4-lane uint32
// multiply and min/max need multi-instruction emulation on SSE2.
var hasSSE41 bool

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	hasSSE41 = cpu.X86.HasSSE41

	switch {
	case hasSSE41:
		setLevel(DispatchSSE4)
	case cpu.X86.HasSSE2:
		// SSE2 is baseline for amd64
		setLevel(DispatchSSE2)
	default:
		setScalarMode()
	}
}

// HasSSE41 returns true if the CPU supports SSE4.1 instructions.
func HasSSE41() bool {
	return hasSSE41
}

// HasASIMD returns false on x86 (NEON is ARM-specific).
func HasASIMD() bool {
	return false
}
