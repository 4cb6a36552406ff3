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

import "math"

// degToRad converts degrees to radians.
const degToRad = 3.14159265359 / 180

// Matrix4 is a column-major 4x4 float32 matrix.
type Matrix4 [16]float32

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the entry at row r, column c.
func (m *Matrix4) At(r, c int) float32 {
	return m[4*c+r]
}

// Set stores v at row r, column c.
func (m *Matrix4) Set(r, c int, v float32) {
	m[4*c+r] = v
}

// Mul returns the matrix product a*b. Applying the result to a point is
// equivalent to applying b first and then a.
func Mul(a, b *Matrix4) Matrix4 {
	var out Matrix4
	for c := range 4 {
		for r := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[4*k+r] * b[4*c+k]
			}
			out[4*c+r] = sum
		}
	}
	return out
}

// TransformPoint returns m applied to the point (x, y, z, 1).
func (m *Matrix4) TransformPoint(x, y, z float32) (float32, float32, float32) {
	nx := m[0]*x + m[4]*y + m[8]*z + m[12]
	ny := m[1]*x + m[5]*y + m[9]*z + m[13]
	nz := m[2]*x + m[6]*y + m[10]*z + m[14]
	return nx, ny, nz
}

// BuildTransform returns the matrix that scales by (sx, sy, sz), rotates
// about the Z axis by angleDeg degrees, and then translates by (tx, ty, tz).
//
// The columns are:
//
//	(sx*cos, sx*sin, 0, 0)
//	(-sy*sin, sy*cos, 0, 0)
//	(0, 0, sz, 0)
//	(tx, ty, tz, 1)
func BuildTransform(sx, sy, sz, angleDeg, tx, ty, tz float32) Matrix4 {
	rad := float64(angleDeg) * degToRad
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))

	return Matrix4{
		sx * cos, sx * sin, 0, 0,
		-sy * sin, sy * cos, 0, 0,
		0, 0, sz, 0,
		tx, ty, tz, 1,
	}
}
