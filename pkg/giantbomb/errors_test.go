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
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsShareRoot(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		ErrInvalidFilterField,
		ErrInvalidSortField,
		ErrInvalidReturnField,
		ErrInvalidArgument,
		ErrBadRequest,
		ErrInvalidResponse,
		ErrMalformedResponse,
		ErrInvalidClient,
	} {
		assert.ErrorIs(t, err, ErrClient, err.Error())
	}
	assert.NotErrorIs(t, ErrBadRequest, ErrInvalidResponse)
	assert.NotErrorIs(t, ErrMalformedResponse, ErrInvalidResponse)
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", &FieldError{
		Kind:     ErrInvalidSortField,
		Resource: "games",
		Field:    "deck",
	})

	require.ErrorIs(t, err, ErrInvalidSortField)
	require.ErrorIs(t, err, ErrClient)
	assert.NotErrorIs(t, err, ErrInvalidFilterField)
	assert.Equal(t, `wrapped: giantbomb: invalid sort field: "deck" is not valid for games`, err.Error())

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "deck", fe.Field)
}

func TestRequestError(t *testing.T) {
	t.Parallel()

	err := &RequestError{StatusCode: 500, Err: errors.New("internal server error")}
	require.ErrorIs(t, err, ErrBadRequest)
	require.ErrorIs(t, err, ErrClient)
	assert.Equal(t, "giantbomb: bad request: http 500: internal server error", err.Error())

	transport := &RequestError{Err: context.DeadlineExceeded}
	require.ErrorIs(t, transport, ErrBadRequest)
	require.ErrorIs(t, transport, context.DeadlineExceeded)
	assert.Equal(t, "giantbomb: bad request: context deadline exceeded", transport.Error())
}

func TestResponseError(t *testing.T) {
	t.Parallel()

	err := &ResponseError{StatusCode: 100, Message: "Invalid API Key"}
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.NotErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "giantbomb: invalid response: response code 100: Invalid API Key", err.Error())
}

func TestMalformedResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *MalformedResponseError
		want string
	}{
		{
			err:  &MalformedResponseError{Key: "results"},
			want: `giantbomb: malformed response: missing key "results"`,
		},
		{
			err:  &MalformedResponseError{Key: "status_code", Err: errors.New("not a number")},
			want: `giantbomb: malformed response: key "status_code": not a number`,
		},
		{
			err:  &MalformedResponseError{Err: errors.New("unexpected end of JSON input")},
			want: "giantbomb: malformed response: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
		assert.ErrorIs(t, tt.err, ErrMalformedResponse)
		assert.NotErrorIs(t, tt.err, ErrInvalidResponse)
	}
}
