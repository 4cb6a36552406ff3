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

package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6}
	v := Load(data)

	if v.NumLanes() != MaxLanes[uint32]() {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]uint32{7, 8})
	want := []uint32{7, 8, 0, 0}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("Load short: lane %d: got %v, want %v", i, v.Lane(i), w)
		}
	}
}

func TestLoadFullPanicsOnShortSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadFull on a 3-element slice should panic")
		}
	}()
	_ = LoadFull([]uint32{1, 2, 3})
}

func TestStoreFull(t *testing.T) {
	dst := make([]uint32, 6)
	StoreFull(Set[uint32](9), dst[1:])
	want := []uint32{0, 9, 9, 9, 9, 0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("StoreFull: index %d: got %v, want %v", i, dst[i], w)
		}
	}
}

func TestStorePartial(t *testing.T) {
	dst := make([]float32, 2)
	Store(Set[float32](1.5), dst)
	if dst[0] != 1.5 || dst[1] != 1.5 {
		t.Errorf("Store partial: got %v, want [1.5 1.5]", dst)
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
}

func TestAddWraps(t *testing.T) {
	result := Add(Set[uint32](math.MaxUint32), Set[uint32](2))
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 1 {
			t.Errorf("Add wrap: lane %d: got %v, want 1", i, result.data[i])
		}
	}
}

func TestSub(t *testing.T) {
	result := Sub(Set[int32](3), Set[int32](5))
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -2 {
			t.Errorf("Sub: lane %d: got %v, want -2", i, result.data[i])
		}
	}
}

func TestMulWraps(t *testing.T) {
	a := Load([]uint32{1 << 31, 3, 0xFFFFFFFF, 10})
	b := Set[uint32](2)
	got := Mul(a, b)
	want := []uint32{0, 6, 0xFFFFFFFE, 20}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("Mul: lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestMinMaxUnsigned(t *testing.T) {
	a := Load([]uint32{1, 0x80000000, 5, 0})
	b := Load([]uint32{2, 1, 5, 0xFFFFFFFF})

	gotMin := Min(a, b)
	gotMax := Max(a, b)
	wantMin := []uint32{1, 1, 5, 0}
	wantMax := []uint32{2, 0x80000000, 5, 0xFFFFFFFF}

	for i := range wantMin {
		if gotMin.data[i] != wantMin[i] {
			t.Errorf("Min: lane %d: got %v, want %v", i, gotMin.data[i], wantMin[i])
		}
		if gotMax.data[i] != wantMax[i] {
			t.Errorf("Max: lane %d: got %v, want %v", i, gotMax.data[i], wantMax[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4})
	b := Set[float32](2)
	c := Set[float32](0.5)
	got := MulAdd(a, b, c)
	want := []float32{2.5, 4.5, 6.5, 8.5}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestReductions(t *testing.T) {
	v := Load([]uint32{4, 9, 1, 7})

	if got := ReduceSum(v); got != 21 {
		t.Errorf("ReduceSum = %v, want 21", got)
	}
	if got := ReduceMin(v); got != 1 {
		t.Errorf("ReduceMin = %v, want 1", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax = %v, want 9", got)
	}
}

func TestComparisons(t *testing.T) {
	a := Load([]uint32{1, 5, 0x90000000, 3})
	b := Set[uint32](3)

	gt := GreaterThan(a, b)
	lt := LessThan(a, b)
	eq := Equal(a, b)

	wantGT := []bool{false, true, true, false}
	wantLT := []bool{true, false, false, false}
	wantEQ := []bool{false, false, false, true}
	for i := range wantGT {
		if gt.GetBit(i) != wantGT[i] {
			t.Errorf("GreaterThan: lane %d: got %v, want %v", i, gt.GetBit(i), wantGT[i])
		}
		if lt.GetBit(i) != wantLT[i] {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, lt.GetBit(i), wantLT[i])
		}
		if eq.GetBit(i) != wantEQ[i] {
			t.Errorf("Equal: lane %d: got %v, want %v", i, eq.GetBit(i), wantEQ[i])
		}
	}

	if got := CountTrue(gt); got != 2 {
		t.Errorf("CountTrue(gt) = %d, want 2", got)
	}
	if AllTrue(gt) || AllFalse(gt) {
		t.Errorf("mixed mask reported AllTrue=%v AllFalse=%v", AllTrue(gt), AllFalse(gt))
	}
	if gt.GetBit(-1) || gt.GetBit(4) {
		t.Error("GetBit out of range should be false")
	}
}

func TestIfThenElse(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{-1, -2, -3, -4})
	mask := GreaterThan(a, Set[int32](2))
	got := IfThenElse(mask, a, b)
	want := []int32{-1, -2, 3, 4}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestDataIsACopy(t *testing.T) {
	v := Set[uint32](1)
	d := v.Data()
	d[0] = 100
	if v.Lane(0) != 1 {
		t.Errorf("mutating Data() changed the vector: lane 0 = %v", v.Lane(0))
	}
}
