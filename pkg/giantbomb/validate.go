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

import "errors"

// ValidateReturnFields checks that every requested field exists in the
// schema. The first unknown field, in request order, is reported.
func ValidateReturnFields(s Schema, fields []string) error {
	for _, f := range fields {
		if !s.Has(f) {
			return &FieldError{Kind: ErrInvalidReturnField, Field: f}
		}
	}
	return nil
}

// ValidateSortField checks that field exists in the schema and is sortable.
func ValidateSortField(s Schema, field string) error {
	if !s.Sortable(field) {
		return &FieldError{Kind: ErrInvalidSortField, Field: field}
	}
	return nil
}

// ValidateFilterFields checks that every filter names a filterable field of
// the schema. Filters with an absent value are still checked.
func ValidateFilterFields(s Schema, filters Filters) error {
	for _, f := range filters {
		if !s.Filterable(f.Field) {
			return &FieldError{Kind: ErrInvalidFilterField, Field: f.Field}
		}
	}
	return nil
}

// forResource stamps the resource name on a FieldError.
func forResource(err error, resource string) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Resource = resource
	}
	return err
}
