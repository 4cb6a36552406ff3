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

//go:build wasip1

package main

import (
	"unsafe"

	"github.com/ajroetker/arraykernels/abi"
)

func u32(p unsafe.Pointer) *uint32  { return (*uint32)(p) }
func f32(p unsafe.Pointer) *float32 { return (*float32)(p) }

//go:wasmexport sumArray
func sumArray(p unsafe.Pointer, n uint32) uint64 { return abi.SumArray(u32(p), n) }

//go:wasmexport sumArraySIMD
func sumArraySIMD(p unsafe.Pointer, n uint32) uint64 { return abi.SumArraySIMD(u32(p), n) }

//go:wasmexport findMax
func findMax(p unsafe.Pointer, n uint32) uint32 { return abi.FindMax(u32(p), n) }

//go:wasmexport findMaxSIMD
func findMaxSIMD(p unsafe.Pointer, n uint32) uint32 { return abi.FindMaxSIMD(u32(p), n) }

//go:wasmexport findMin
func findMin(p unsafe.Pointer, n uint32) uint32 { return abi.FindMin(u32(p), n) }

//go:wasmexport findMinSIMD
func findMinSIMD(p unsafe.Pointer, n uint32) uint32 { return abi.FindMinSIMD(u32(p), n) }

//go:wasmexport calculateAverage
func calculateAverage(p unsafe.Pointer, n uint32) float64 { return abi.CalculateAverage(u32(p), n) }

//go:wasmexport calculateAverageSIMD
func calculateAverageSIMD(p unsafe.Pointer, n uint32) float64 {
	return abi.CalculateAverageSIMD(u32(p), n)
}

//go:wasmexport calculateVariance
func calculateVariance(p unsafe.Pointer, n uint32) float64 { return abi.CalculateVariance(u32(p), n) }

//go:wasmexport multiplyArray
func multiplyArray(p unsafe.Pointer, n, factor uint32) { abi.MultiplyArray(u32(p), n, factor) }

//go:wasmexport multiplyArraySIMD
func multiplyArraySIMD(p unsafe.Pointer, n, factor uint32) { abi.MultiplyArraySIMD(u32(p), n, factor) }

//go:wasmexport addToArray
func addToArray(p unsafe.Pointer, n, value uint32) { abi.AddToArray(u32(p), n, value) }

//go:wasmexport addToArraySIMD
func addToArraySIMD(p unsafe.Pointer, n, value uint32) { abi.AddToArraySIMD(u32(p), n, value) }

//go:wasmexport countGreaterThan
func countGreaterThan(p unsafe.Pointer, n, threshold uint32) uint32 {
	return abi.CountGreaterThan(u32(p), n, threshold)
}

//go:wasmexport countGreaterThanSIMD
func countGreaterThanSIMD(p unsafe.Pointer, n, threshold uint32) uint32 {
	return abi.CountGreaterThanSIMD(u32(p), n, threshold)
}

//go:wasmexport quickSort
func quickSort(p unsafe.Pointer, n uint32) { abi.QuickSort(u32(p), n) }

//go:wasmexport reverseArray
func reverseArray(p unsafe.Pointer, n uint32) { abi.ReverseArray(u32(p), n) }

//go:wasmexport binarySearch
func binarySearch(p unsafe.Pointer, n, target uint32) int32 { return abi.BinarySearch(u32(p), n, target) }

//go:wasmexport countUnique
func countUnique(p unsafe.Pointer, n uint32) uint32 { return abi.CountUnique(u32(p), n) }

//go:wasmexport transformVectors
func transformVectors(v, m unsafe.Pointer, count uint32) { abi.TransformVectors(f32(v), f32(m), count) }

//go:wasmexport transformVectorsSIMD
func transformVectorsSIMD(v, m unsafe.Pointer, count uint32) {
	abi.TransformVectorsSIMD(f32(v), f32(m), count)
}

//go:wasmexport createTransformMatrix
func createTransformMatrix(m unsafe.Pointer, sx, sy, sz, angleDeg, tx, ty, tz float32) {
	abi.CreateTransformMatrix(f32(m), sx, sy, sz, angleDeg, tx, ty, tz)
}
