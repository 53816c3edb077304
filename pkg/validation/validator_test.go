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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type durationParams struct {
	Timeout string `validate:"omitempty,duration"`
}

type rangeParams struct {
	Limit  *int   `validate:"omitempty,gte=0"`
	Format string `validate:"omitempty,oneof=json xml"`
}

func TestValidateDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: ""},
		{name: "seconds", value: "30s"},
		{name: "compound", value: "1m30s"},
		{name: "zero", value: "0s"},
		{name: "negative", value: "-5s", wantErr: true},
		{name: "bare number", value: "30", wantErr: true},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(&durationParams{Timeout: tt.value})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "timeout must be a valid duration")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	limit := -1
	err := Validate(&rangeParams{Limit: &limit, Format: "csv"})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "Limit", verr.Fields[0].Field)
	assert.Equal(t, "gte", verr.Fields[0].Tag)
	assert.Equal(t, "limit must be greater than or equal to 0", verr.Fields[0].Message)
	assert.Equal(t, "oneof", verr.Fields[1].Tag)
	assert.Equal(t, "format must be one of: json xml", verr.Fields[1].Message)
	assert.Equal(t,
		"limit must be greater than or equal to 0; format must be one of: json xml",
		verr.Error())
}

func TestValidateNilPointerSkipped(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Validate(&rangeParams{}))
}

func TestEmptyErrorMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "validation failed", (&Error{}).Error())
}
