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

package sort

import (
	"math/rand"
	"slices"
	"testing"
)

// checkSortedPermutation fails t unless got is sorted and holds the same
// multiset of elements as orig.
func checkSortedPermutation(t *testing.T, name string, orig, got []uint32) {
	t.Helper()
	if !IsSorted(got) {
		t.Errorf("QuickSort(%s) produced unsorted result: %v", name, got)
		return
	}
	want := slices.Clone(orig)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("QuickSort(%s) is not a permutation of the input", name)
	}
}

// TestQuickSortEmpty tests sorting empty slices
func TestQuickSortEmpty(t *testing.T) {
	var empty []uint32
	QuickSort(empty)
	if len(empty) != 0 {
		t.Errorf("QuickSort(empty) should not modify empty slice")
	}
}

// TestQuickSortSingle tests sorting single element slices
func TestQuickSortSingle(t *testing.T) {
	data := []uint32{42}
	QuickSort(data)
	if data[0] != 42 {
		t.Errorf("QuickSort([42]) = %v, want [42]", data)
	}
}

func TestQuickSortExample(t *testing.T) {
	data := []uint32{5, 3, 1, 4, 2}
	QuickSort(data)
	want := []uint32{1, 2, 3, 4, 5}
	if !slices.Equal(data, want) {
		t.Errorf("QuickSort([5 3 1 4 2]) = %v, want %v", data, want)
	}
}

func TestQuickSortPatterns(t *testing.T) {
	tests := []struct {
		name string
		data []uint32
	}{
		{"two_sorted", []uint32{1, 2}},
		{"two_reversed", []uint32{2, 1}},
		{"already_sorted", []uint32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []uint32{8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"all_same", []uint32{5, 5, 5, 5, 5, 5, 5, 5}},
		{"extremes", []uint32{0xFFFFFFFF, 0, 0x80000000, 1, 0xFFFFFFFE, 0}},
		{"organ_pipe", []uint32{1, 3, 5, 7, 9, 8, 6, 4, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.data)
			QuickSort(got)
			checkSortedPermutation(t, tt.name, tt.data, got)
		})
	}
}

// TestQuickSortRandom tests sorting random data across vector-boundary sizes
func TestQuickSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := []int{0, 1, 3, 4, 5, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rng.Uint32()
		}
		got := slices.Clone(data)
		QuickSort(got)
		checkSortedPermutation(t, "random", data, got)
	}
}

// TestQuickSortFewDistinct tests heavy duplication, which stresses the <= pivot rule
func TestQuickSortFewDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]uint32, 2000)
	for i := range data {
		data[i] = uint32(rng.Intn(4))
	}
	got := slices.Clone(data)
	QuickSort(got)
	checkSortedPermutation(t, "few_distinct", data, got)
}

// TestQuickSortAdversarial sorts inputs that degrade Lomuto partitioning to
// its worst case; the explicit stack keeps them from exhausting the call stack.
func TestQuickSortAdversarial(t *testing.T) {
	const n = 4000
	ascending := make([]uint32, n)
	descending := make([]uint32, n)
	for i := range n {
		ascending[i] = uint32(i)
		descending[i] = uint32(n - i)
	}

	for name, data := range map[string][]uint32{"ascending": ascending, "descending": descending} {
		got := slices.Clone(data)
		QuickSort(got)
		checkSortedPermutation(t, name, data, got)
	}
}

func TestQuickSortFloat32(t *testing.T) {
	data := []float32{3.5, -1, 2.25, 0, -7.5, 2.25}
	QuickSort(data)
	want := []float32{-7.5, -1, 0, 2.25, 2.25, 3.5}
	if !slices.Equal(data, want) {
		t.Errorf("QuickSort(float32) = %v, want %v", data, want)
	}
}

func TestPartitionLomuto(t *testing.T) {
	data := []uint32{7, 2, 9, 4, 4, 1, 4}
	p := partitionLomuto(data, 0, len(data)-1)

	if data[p] != 4 {
		t.Fatalf("pivot landed at %d holding %d, want value 4", p, data[p])
	}
	for i := 0; i < p; i++ {
		if data[i] > 4 {
			t.Errorf("left side index %d holds %d > pivot", i, data[i])
		}
	}
	for i := p + 1; i < len(data); i++ {
		if data[i] <= 4 {
			t.Errorf("right side index %d holds %d <= pivot", i, data[i])
		}
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []uint32
		want bool
	}{
		{nil, true},
		{[]uint32{1}, true},
		{[]uint32{1, 1, 2}, true},
		{[]uint32{2, 1}, false},
		{[]uint32{1, 3, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
