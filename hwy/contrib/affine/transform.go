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

// Transform applies m to every complete (x, y, z) triple in points, in place.
// A trailing partial triple is left untouched.
func Transform(points []float32, m *Matrix4) {
	n := len(points) / 3
	transformScalar(points[:3*n], m)
}

func transformScalar(points []float32, m *Matrix4) {
	for i := 0; i+2 < len(points); i += 3 {
		points[i], points[i+1], points[i+2] = m.TransformPoint(points[i], points[i+1], points[i+2])
	}
}
