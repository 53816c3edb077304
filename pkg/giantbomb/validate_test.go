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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	"id":       {Filter: true, Sort: true},
	"name":     {Filter: true},
	"rating":   {Sort: true},
	"deck":     {},
	"platform": {Filter: true},
}

func TestSchema(t *testing.T) {
	t.Parallel()

	assert.True(t, testSchema.Has("deck"))
	assert.False(t, testSchema.Has("bogus"))
	assert.True(t, testSchema.Filterable("name"))
	assert.False(t, testSchema.Filterable("rating"))
	assert.False(t, testSchema.Filterable("bogus"))
	assert.True(t, testSchema.Sortable("rating"))
	assert.False(t, testSchema.Sortable("name"))
	assert.False(t, testSchema.Sortable("bogus"))
	assert.Equal(t, []string{"deck", "id", "name", "platform", "rating"}, testSchema.Names())
}

func TestValidateReturnFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantField string
		fields    []string
	}{
		{name: "empty", fields: nil},
		{name: "all known", fields: []string{"deck", "id", "rating"}},
		{name: "one unknown", fields: []string{"id", "bogus"}, wantField: "bogus"},
		{name: "first unknown reported", fields: []string{"nope", "id", "bogus"}, wantField: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateReturnFields(testSchema, tt.fields)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidReturnField)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestValidateSortField(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSortField(testSchema, "rating"))
	require.NoError(t, ValidateSortField(testSchema, "id"))
	require.ErrorIs(t, ValidateSortField(testSchema, "name"), ErrInvalidSortField)
	require.ErrorIs(t, ValidateSortField(testSchema, "bogus"), ErrInvalidSortField)
}

func TestValidateFilterFields(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateFilterFields(testSchema, nil))
	require.NoError(t, ValidateFilterFields(testSchema, Filters{
		{Field: "name", Value: "portal"},
		{Field: "platform", Value: nil},
	}))

	err := ValidateFilterFields(testSchema, Filters{
		{Field: "name", Value: "portal"},
		{Field: "deck", Value: nil},
		{Field: "rating", Value: 5},
	})
	require.ErrorIs(t, err, ErrInvalidFilterField)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "deck", fe.Field)
}

func TestForResource(t *testing.T) {
	t.Parallel()

	err := forResource(ValidateSortField(testSchema, "deck"), "games")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "games", fe.Resource)

	assert.NoError(t, forResource(nil, "games"))
}
