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

import (
	"math/rand"
	"testing"
)

var sinkCount uint32

func BenchmarkCountGreaterThan(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([]uint32, 10000)
	for i := range data {
		data[i] = rng.Uint32()
	}
	threshold := uint32(1 << 31)

	b.Run("scalar", func(b *testing.B) {
		for b.Loop() {
			sinkCount = CountGreaterThan(data, threshold)
		}
	})
	b.Run("simd", func(b *testing.B) {
		for b.Loop() {
			sinkCount = CountGreaterThanSIMD(data, threshold)
		}
	})
}

func BenchmarkCountUnique(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([]uint32, 10000)
	for i := range data {
		data[i] = rng.Uint32() % 1000
	}
	b.ReportAllocs()
	for b.Loop() {
		sinkCount = CountUnique(data)
	}
}

func BenchmarkBinarySearch(b *testing.B) {
	data := make([]uint32, 10000)
	for i := range data {
		data[i] = uint32(i * 2)
	}
	for b.Loop() {
		for _, target := range []uint32{0, 4999, 10000, 19998} {
			_ = BinarySearch(data, target)
		}
	}
}
