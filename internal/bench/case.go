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

package bench

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"slices"

	"github.com/ajroetker/arraykernels/hwy/contrib/affine"
)

var (
	// ErrUnknownCase is returned when a case name is not registered.
	ErrUnknownCase = errors.New("unknown benchmark case")

	// ErrDuplicateCase is returned when a case name is registered twice.
	ErrDuplicateCase = errors.New("duplicate benchmark case")

	// ErrNoIterations is returned when a run is configured with no timed
	// iterations.
	ErrNoIterations = errors.New("no iterations")

	// ErrMismatch is returned when the scalar and SIMD variants of a case
	// disagree.
	ErrMismatch = errors.New("scalar and simd results differ")
)

// Fixture is the data a case runs against.
type Fixture struct {
	Ints   []uint32
	Points []float32
	Matrix affine.Matrix4
	Target uint32
}

// Clone returns a deep copy of f.
func (f *Fixture) Clone() *Fixture {
	return &Fixture{
		Ints:   slices.Clone(f.Ints),
		Points: slices.Clone(f.Points),
		Matrix: f.Matrix,
		Target: f.Target,
	}
}

// restore resets f's buffers to the contents of src, which must have
// been produced by Clone or Prepare for the same case.
func (f *Fixture) restore(src *Fixture) {
	copy(f.Ints, src.Ints)
	copy(f.Points, src.Points)
}

// Kernel runs one variant of a case against a fixture and returns its
// scalar result, or nil for in-place kernels.
type Kernel func(f *Fixture) any

// Outcome is what one variant produced: its return value and the fixture
// after the call.
type Outcome struct {
	Value   any
	Fixture *Fixture
}

// Case is one benchmarked kernel.
type Case struct {
	Name     string
	Category string

	// Prepare builds the fixture for a run.
	Prepare func(cfg Config, rng *rand.Rand) *Fixture

	// Scalar is required. SIMD is nil for cases without a vector variant.
	Scalar Kernel
	SIMD   Kernel

	// Mutates is set for in-place kernels: the fixture is restored before
	// every call, outside the timed region.
	Mutates bool

	// Check compares the two variants once before timing. When nil,
	// ExactCheck is used.
	Check func(scalar, simd Outcome) error
}

// ExactCheck requires identical return values and identical fixtures.
func ExactCheck(scalar, simd Outcome) error {
	if !reflect.DeepEqual(scalar.Value, simd.Value) {
		return fmt.Errorf("%w: scalar returned %v, simd returned %v", ErrMismatch, scalar.Value, simd.Value)
	}
	if len(scalar.Fixture.Ints) != len(simd.Fixture.Ints) {
		return fmt.Errorf("%w: buffers have lengths %d and %d", ErrMismatch, len(scalar.Fixture.Ints), len(simd.Fixture.Ints))
	}
	if i := firstDiff(scalar.Fixture.Ints, simd.Fixture.Ints); i >= 0 {
		return fmt.Errorf("%w: element %d: scalar %d, simd %d",
			ErrMismatch, i, scalar.Fixture.Ints[i], simd.Fixture.Ints[i])
	}
	if !slices.Equal(scalar.Fixture.Points, simd.Fixture.Points) {
		return fmt.Errorf("%w: points differ", ErrMismatch)
	}
	return nil
}

// ApproxPointsCheck returns a check that accepts point buffers whose
// components differ by at most tol, relative to the larger magnitude when
// that exceeds 1.
func ApproxPointsCheck(tol float64) func(scalar, simd Outcome) error {
	return func(scalar, simd Outcome) error {
		a, b := scalar.Fixture.Points, simd.Fixture.Points
		if len(a) != len(b) {
			return fmt.Errorf("%w: point buffers have lengths %d and %d", ErrMismatch, len(a), len(b))
		}
		for i := range a {
			x, y := float64(a[i]), float64(b[i])
			scale := max(1, math.Abs(x), math.Abs(y))
			if math.Abs(x-y) > tol*scale {
				return fmt.Errorf("%w: component %d: scalar %g, simd %g", ErrMismatch, i, x, y)
			}
		}
		return nil
	}
}

// firstDiff returns the first index where equal-length a and b differ, or -1.
func firstDiff(a, b []uint32) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
