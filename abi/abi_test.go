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
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/arraykernels/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPointer(t *testing.T) {
	require.Equal(t, 0, FromPointer[uint32](nil, 0).Len())

	data := []uint32{1, 2, 3, 4}
	b := FromPointer(&data[0], 3)
	require.Equal(t, 3, b.Len())
	require.Equal(t, []uint32{1, 2, 3}, b.Slice())

	// The buffer aliases caller memory.
	b.Slice()[0] = 9
	require.Equal(t, uint32(9), data[0])

	require.Panics(t, func() { FromPointer[uint32](nil, 1) })
}

func TestEntries_EmptyBuffer(t *testing.T) {
	assert.Equal(t, uint64(0), SumArray(nil, 0))
	assert.Equal(t, uint64(0), SumArraySIMD(nil, 0))
	assert.Equal(t, uint32(0), FindMax(nil, 0))
	assert.Equal(t, uint32(0), FindMinSIMD(nil, 0))
	assert.Equal(t, 0.0, CalculateAverage(nil, 0))
	assert.Equal(t, 0.0, CalculateVariance(nil, 0))
	assert.Equal(t, int32(-1), BinarySearch(nil, 0, 5))
	assert.Equal(t, uint32(0), CountUnique(nil, 0))
	QuickSort(nil, 0)
	ReverseArray(nil, 0)
	MultiplyArraySIMD(nil, 0, 3)
}

func TestEntries_Examples(t *testing.T) {
	data := []uint32{1, 2, 3, 4}
	assert.Equal(t, uint64(10), SumArray(&data[0], 4))
	assert.Equal(t, 2.5, CalculateAverageSIMD(&data[0], 4))

	data = []uint32{2, 9, 4}
	assert.Equal(t, uint32(9), FindMaxSIMD(&data[0], 3))
	assert.Equal(t, uint32(2), FindMin(&data[0], 3))

	data = []uint32{1, 5, 3, 7, 2}
	assert.Equal(t, uint32(2), CountGreaterThanSIMD(&data[0], 5, 3))

	data = []uint32{5, 3, 1, 4, 2}
	QuickSort(&data[0], 5)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, data)
	assert.Equal(t, int32(3), BinarySearch(&data[0], 5, 4))

	data = []uint32{3, 1, 3, 2, 1}
	assert.Equal(t, uint32(3), CountUnique(&data[0], 5))

	data = []uint32{1, 2, 3}
	MultiplyArray(&data[0], 3, 3)
	assert.Equal(t, []uint32{3, 6, 9}, data)
	AddToArraySIMD(&data[0], 3, 1)
	assert.Equal(t, []uint32{4, 7, 10}, data)
	ReverseArray(&data[0], 3)
	assert.Equal(t, []uint32{10, 7, 4}, data)
}

func TestEntries_PartialLength(t *testing.T) {
	// Only the first n elements belong to the call.
	data := []uint32{5, 4, 3, 2, 1}
	QuickSort(&data[0], 3)
	assert.Equal(t, []uint32{3, 4, 5, 2, 1}, data)
}

func TestTransformVectors(t *testing.T) {
	m := make([]float32, 16)
	CreateTransformMatrix(&m[0], 1, 1, 1, 0, 5, 0, 0)
	assert.Equal(t, float32(5), m[12])
	assert.Equal(t, float32(1), m[15])

	for _, transform := range []func(v, m *float32, count uint32){TransformVectors, TransformVectorsSIMD} {
		points := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1, 2, 2, 2, 3, 3, 3}
		transform(&points[0], &m[0], 5)
		want := []float32{6, 0, 0, 5, 1, 0, 5, 0, 1, 7, 2, 2, 8, 3, 3}
		for i := range want {
			assert.InDelta(t, want[i], points[i], 1e-5, "index %d", i)
		}
	}
}

func TestTables_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for n := 0; n <= 50; n++ {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rng.Uint32()
		}
		k := rng.Uint32()

		require.Equal(t, Scalar.Sum(data), SIMD.Sum(data), "Sum n=%d", n)
		require.Equal(t, Scalar.Max(data), SIMD.Max(data), "Max n=%d", n)
		require.Equal(t, Scalar.Min(data), SIMD.Min(data), "Min n=%d", n)
		require.Equal(t, Scalar.Average(data), SIMD.Average(data), "Average n=%d", n)
		require.Equal(t, Scalar.CountGreaterThan(data, k), SIMD.CountGreaterThan(data, k), "CountGreaterThan n=%d", n)

		a, b := slices.Clone(data), slices.Clone(data)
		Scalar.Multiply(a, k)
		SIMD.Multiply(b, k)
		require.Equal(t, a, b, "Multiply n=%d", n)

		Scalar.Add(a, k)
		SIMD.Add(b, k)
		require.Equal(t, a, b, "Add n=%d", n)
	}
}

func TestBest(t *testing.T) {
	assert.Same(t, &Scalar, best(hwy.DispatchScalar))
	assert.Same(t, &SIMD, best(hwy.DispatchSSE4))
	assert.Same(t, &SIMD, best(hwy.DispatchNEON))

	if hwy.NoSimdEnv() {
		assert.Same(t, &Scalar, Best(), "HWY_NO_SIMD set")
	}
	assert.Equal(t, hwy.HasSIMD(), Best() == &SIMD)
}
