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
	"errors"
	"fmt"
)

// ErrClient is the root of every error returned by this package. Use
// errors.Is(err, ErrClient) to tell client failures apart from, for example,
// context cancellation.
var ErrClient = errors.New("giantbomb")

var (
	ErrInvalidFilterField = fmt.Errorf("%w: invalid filter field", ErrClient)
	ErrInvalidSortField   = fmt.Errorf("%w: invalid sort field", ErrClient)
	ErrInvalidReturnField = fmt.Errorf("%w: invalid return field", ErrClient)
	ErrInvalidArgument    = fmt.Errorf("%w: invalid argument", ErrClient)
	ErrBadRequest         = fmt.Errorf("%w: bad request", ErrClient)
	ErrInvalidResponse    = fmt.Errorf("%w: invalid response", ErrClient)
	ErrMalformedResponse  = fmt.Errorf("%w: malformed response", ErrClient)
	ErrInvalidClient      = fmt.Errorf("%w: invalid client", ErrClient)
)

// FieldError reports a field name rejected by a resource schema. Kind is one
// of ErrInvalidFilterField, ErrInvalidSortField or ErrInvalidReturnField.
type FieldError struct {
	Kind     error
	Resource string
	Field    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %q is not valid for %s", e.Kind, e.Field, e.Resource)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// RequestError is returned when the API answers with a non-2xx HTTP status or
// the transport fails before a response is received.
type RequestError struct {
	Err        error
	StatusCode int
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %v", ErrBadRequest, e.Err)
	}
	return fmt.Sprintf("%v: http %d: %v", ErrBadRequest, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() []error {
	return []error{ErrBadRequest, e.Err}
}

// ResponseError is returned when the HTTP exchange succeeded but the API
// reported a status code other than StatusOK.
type ResponseError struct {
	Message    string
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v: response code %d: %s", ErrInvalidResponse, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return ErrInvalidResponse
}

// MalformedResponseError is returned when a response body cannot be decoded
// or is missing one of the keys every API response carries.
type MalformedResponseError struct {
	Err error
	Key string
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("%v: key %q: %v", ErrMalformedResponse, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%v: missing key %q", ErrMalformedResponse, e.Key)
	default:
		return fmt.Sprintf("%v: %v", ErrMalformedResponse, e.Err)
	}
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}
