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

import "fmt"

// Config controls the size and length of a benchmark run.
type Config struct {
	// ArraySize is the number of uint32 elements, or 3D points for
	// transform cases, in each fixture.
	ArraySize int

	// Iterations is the number of timed calls per variant.
	Iterations int

	// WarmupIterations is the number of untimed calls per variant made
	// before timing starts.
	WarmupIterations int

	// Seed seeds the fixture generator, so runs are reproducible.
	Seed int64
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		ArraySize:        100_000,
		Iterations:       100,
		WarmupIterations: 10,
		Seed:             1,
	}
}

// Validate reports whether the configuration can drive a run.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations = %d: %w", c.Iterations, ErrNoIterations)
	}
	if c.ArraySize < 0 {
		return fmt.Errorf("negative array size %d", c.ArraySize)
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("negative warmup iterations %d", c.WarmupIterations)
	}
	return nil
}
