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
	"github.com/ajroetker/arraykernels/hwy/contrib/affine"
	"github.com/ajroetker/arraykernels/hwy/contrib/algo"
	"github.com/ajroetker/arraykernels/hwy/contrib/sort"
	"github.com/ajroetker/arraykernels/hwy/contrib/vec"
)

func u32(p *uint32, n uint32) []uint32 {
	return FromPointer(p, n).Slice()
}

// SumArray returns the 64-bit sum of n elements at p.
func SumArray(p *uint32, n uint32) uint64 { return vec.Sum(u32(p, n)) }

// SumArraySIMD is the vectorized SumArray.
func SumArraySIMD(p *uint32, n uint32) uint64 { return vec.SumSIMD(u32(p, n)) }

// FindMax returns the largest of n elements at p, or 0 when n is 0.
func FindMax(p *uint32, n uint32) uint32 { return vec.Max(u32(p, n)) }

// FindMaxSIMD is the vectorized FindMax.
func FindMaxSIMD(p *uint32, n uint32) uint32 { return vec.MaxSIMD(u32(p, n)) }

// FindMin returns the smallest of n elements at p, or 0 when n is 0.
func FindMin(p *uint32, n uint32) uint32 { return vec.Min(u32(p, n)) }

// FindMinSIMD is the vectorized FindMin.
func FindMinSIMD(p *uint32, n uint32) uint32 { return vec.MinSIMD(u32(p, n)) }

// CalculateAverage returns the mean of n elements at p, or 0 when n is 0.
func CalculateAverage(p *uint32, n uint32) float64 { return vec.Average(u32(p, n)) }

// CalculateAverageSIMD is the vectorized CalculateAverage.
func CalculateAverageSIMD(p *uint32, n uint32) float64 { return vec.AverageSIMD(u32(p, n)) }

// CalculateVariance returns the population variance of n elements at p.
func CalculateVariance(p *uint32, n uint32) float64 { return vec.Variance(u32(p, n)) }

// MultiplyArray multiplies n elements at p by factor in place.
func MultiplyArray(p *uint32, n, factor uint32) { vec.Multiply(u32(p, n), factor) }

// MultiplyArraySIMD is the vectorized MultiplyArray.
func MultiplyArraySIMD(p *uint32, n, factor uint32) { vec.MultiplySIMD(u32(p, n), factor) }

// AddToArray adds value to n elements at p in place.
func AddToArray(p *uint32, n, value uint32) { vec.Add(u32(p, n), value) }

// AddToArraySIMD is the vectorized AddToArray.
func AddToArraySIMD(p *uint32, n, value uint32) { vec.AddSIMD(u32(p, n), value) }

// CountGreaterThan counts the elements at p strictly greater than threshold.
func CountGreaterThan(p *uint32, n, threshold uint32) uint32 {
	return algo.CountGreaterThan(u32(p, n), threshold)
}

// CountGreaterThanSIMD is the vectorized CountGreaterThan.
func CountGreaterThanSIMD(p *uint32, n, threshold uint32) uint32 {
	return algo.CountGreaterThanSIMD(u32(p, n), threshold)
}

// QuickSort sorts n elements at p ascending, in place.
func QuickSort(p *uint32, n uint32) { sort.QuickSort(u32(p, n)) }

// ReverseArray reverses n elements at p in place.
func ReverseArray(p *uint32, n uint32) { vec.Reverse(u32(p, n)) }

// BinarySearch returns the index of target among n ascending elements at p,
// or -1.
func BinarySearch(p *uint32, n, target uint32) int32 {
	return algo.BinarySearch(u32(p, n), target)
}

// CountUnique returns the number of distinct values among n elements at p.
func CountUnique(p *uint32, n uint32) uint32 { return algo.CountUnique(u32(p, n)) }

// TransformVectors applies the 16-float column-major matrix at m to count
// packed (x, y, z) points at v, in place.
func TransformVectors(v, m *float32, count uint32) {
	affine.Transform(points(v, count), matrix(m))
}

// TransformVectorsSIMD is the vectorized TransformVectors.
func TransformVectorsSIMD(v, m *float32, count uint32) {
	affine.TransformSIMD(points(v, count), matrix(m))
}

// CreateTransformMatrix writes the scale, Z rotation and translation matrix
// built by affine.BuildTransform to the 16 floats at m.
func CreateTransformMatrix(m *float32, sx, sy, sz, angleDeg, tx, ty, tz float32) {
	*matrix(m) = affine.BuildTransform(sx, sy, sz, angleDeg, tx, ty, tz)
}

func points(v *float32, count uint32) []float32 {
	return FromPointer(v, 3*count).Slice()
}

func matrix(m *float32) *affine.Matrix4 {
	return (*affine.Matrix4)(FromPointer(m, 16).Slice())
}
