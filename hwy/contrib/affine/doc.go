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

// Package affine applies 4x4 affine transforms to batches of packed 3D points.
//
// Points are stored interleaved as x0, y0, z0, x1, y1, z1, ... and are
// transformed in place. Matrices are column-major: entry (row r, column c)
// lives at index 4*c+r, so the translation occupies indices 12, 13 and 14.
//
// Transform is the scalar reference. TransformSIMD processes four points per
// step with hwy vectors; because it fuses multiply-adds its results may
// differ from Transform in the last bits.
package affine
