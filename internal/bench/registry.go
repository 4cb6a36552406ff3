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
	"fmt"
	"slices"
)

// Registry is an ordered collection of benchmark cases.
// Registration order is preserved by All, ByCategory and Categories.
type Registry struct {
	cases      []Case
	categories []string
}

// Register adds c to the registry.
func (r *Registry) Register(c Case) error {
	if c.Name == "" || c.Scalar == nil || c.Prepare == nil {
		return fmt.Errorf("case %q: name, Prepare and Scalar are required", c.Name)
	}
	if _, err := r.Lookup(c.Name); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCase, c.Name)
	}
	r.cases = append(r.cases, c)
	if !slices.Contains(r.categories, c.Category) {
		r.categories = append(r.categories, c.Category)
	}
	return nil
}

// All returns every registered case.
func (r *Registry) All() []Case {
	return slices.Clone(r.cases)
}

// ByCategory returns the cases registered under category.
func (r *Registry) ByCategory(category string) []Case {
	var out []Case
	for _, c := range r.cases {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the distinct categories in registration order.
func (r *Registry) Categories() []string {
	return slices.Clone(r.categories)
}

// Lookup returns the case with the given name.
func (r *Registry) Lookup(name string) (Case, error) {
	for _, c := range r.cases {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("%w: %s", ErrUnknownCase, name)
}
