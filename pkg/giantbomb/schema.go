// Zaparoo GiantBomb
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo GiantBomb.
//
// Zaparoo GiantBomb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo GiantBomb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo GiantBomb.  If not, see <http://www.gnu.org/licenses/>.

package giantbomb

import (
	"maps"
	"slices"
)

// Field describes what a resource allows a field to be used for. Every field
// in a Schema may be requested as a return field.
type Field struct {
	Filter bool
	Sort   bool
}

// Schema maps the field names of one API resource to their capabilities.
// Schemas are package-level values and must not be modified.
type Schema map[string]Field

// Has reports whether name is a field of the resource.
func (s Schema) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Filterable reports whether name may be used as a search filter.
func (s Schema) Filterable(name string) bool {
	f, ok := s[name]
	return ok && f.Filter
}

// Sortable reports whether name may be used as a sort key.
func (s Schema) Sortable(name string) bool {
	f, ok := s[name]
	return ok && f.Sort
}

// Names returns the field names in lexical order.
func (s Schema) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
