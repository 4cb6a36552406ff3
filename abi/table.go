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
	"github.com/ajroetker/arraykernels/hwy"
	"github.com/ajroetker/arraykernels/hwy/contrib/algo"
	"github.com/ajroetker/arraykernels/hwy/contrib/vec"
)

// Table holds one implementation of each integer kernel that has both a
// scalar and a SIMD variant.
type Table struct {
	Name             string
	Sum              func([]uint32) uint64
	Max              func([]uint32) uint32
	Min              func([]uint32) uint32
	Average          func([]uint32) float64
	Multiply         func([]uint32, uint32)
	Add              func([]uint32, uint32)
	CountGreaterThan func([]uint32, uint32) uint32
}

// Scalar is the table of scalar kernels.
var Scalar = Table{
	Name:             "scalar",
	Sum:              vec.Sum,
	Max:              vec.Max,
	Min:              vec.Min,
	Average:          vec.Average,
	Multiply:         vec.Multiply,
	Add:              vec.Add,
	CountGreaterThan: algo.CountGreaterThan,
}

// SIMD is the table of vectorized kernels.
var SIMD = Table{
	Name:             "simd",
	Sum:              vec.SumSIMD,
	Max:              vec.MaxSIMD,
	Min:              vec.MinSIMD,
	Average:          vec.AverageSIMD,
	Multiply:         vec.MultiplySIMD,
	Add:              vec.AddSIMD,
	CountGreaterThan: algo.CountGreaterThanSIMD,
}

// Best returns SIMD unless dispatch resolved to hwy.DispatchScalar, either
// because no vector unit was detected or because HWY_NO_SIMD is set.
func Best() *Table {
	return best(hwy.CurrentLevel())
}

func best(level hwy.DispatchLevel) *Table {
	if level == hwy.DispatchScalar {
		return &Scalar
	}
	return &SIMD
}
