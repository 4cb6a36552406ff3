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

package affine

import "github.com/ajroetker/arraykernels/hwy"

// TransformSIMD computes the same transform as Transform, four points per step.
//
// Each step deinterleaves four points into xs, ys and zs vectors, combines
// them with the twelve broadcast matrix entries through multiply-adds, and
// interleaves the results back. Points left over after the last full step
// use the scalar loop.
func TransformSIMD(points []float32, m *Matrix4) {
	n := len(points) / 3
	lanes := hwy.MaxLanes[float32]()
	stride := 3 * lanes

	m0, m1, m2 := hwy.Set(m[0]), hwy.Set(m[1]), hwy.Set(m[2])
	m4, m5, m6 := hwy.Set(m[4]), hwy.Set(m[5]), hwy.Set(m[6])
	m8, m9, m10 := hwy.Set(m[8]), hwy.Set(m[9]), hwy.Set(m[10])
	m12, m13, m14 := hwy.Set(m[12]), hwy.Set(m[13]), hwy.Set(m[14])

	// Process full vectors
	var p int
	for p = 0; p+lanes <= n; p += lanes {
		block := points[3*p : 3*p+stride]
		xs, ys, zs := hwy.LoadInterleaved3(block)

		nx := hwy.MulAdd(zs, m8, hwy.MulAdd(ys, m4, hwy.MulAdd(xs, m0, m12)))
		ny := hwy.MulAdd(zs, m9, hwy.MulAdd(ys, m5, hwy.MulAdd(xs, m1, m13)))
		nz := hwy.MulAdd(zs, m10, hwy.MulAdd(ys, m6, hwy.MulAdd(xs, m2, m14)))

		hwy.StoreInterleaved3(nx, ny, nz, block)
	}

	// Handle tail points with scalar code
	transformScalar(points[3*p:3*n], m)
}
