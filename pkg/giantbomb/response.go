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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// StatusOK is the only status_code value the API uses for success.
const StatusOK = 1

// Keys of the response envelope.
const (
	keyStatusCode      = "status_code"
	keyError           = "error"
	keyPageResults     = "number_of_page_results"
	keyTotalResults    = "number_of_total_results"
	keyResults         = "results"
	jsonNull           = "null"
	recordDecodeTagKey = "json"
)

// Record is one resource object as returned by the API.
type Record map[string]any

// Response is the normalized result of a successful request.
//
// Results is never nil. When the API returned a single object, as fetch
// requests do, Results holds just that object and Result points at it too.
// For searches Result is nil.
type Response struct {
	Result          Record
	URI             string
	Results         []Record
	NumPageResults  int
	NumTotalResults int
}

// envelope is the undecoded top level of a response body.
type envelope map[string]json.RawMessage

func parseEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if env == nil {
		return nil, &MalformedResponseError{Err: errors.New("body is not a JSON object")}
	}
	return env, nil
}

func (env envelope) raw(key string) (json.RawMessage, bool) {
	raw, ok := env[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == jsonNull {
		return nil, false
	}
	return raw, true
}

func (env envelope) intField(key string) (int, error) {
	raw, ok := env.raw(key)
	if !ok {
		return 0, &MalformedResponseError{Key: key}
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, &MalformedResponseError{Key: key, Err: err}
	}
	return n, nil
}

func (env envelope) stringField(key string) string {
	raw, ok := env.raw(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

// checkStatus rejects envelopes whose status_code is not StatusOK.
func (env envelope) checkStatus() error {
	code, err := env.intField(keyStatusCode)
	if err != nil {
		return err
	}
	if code != StatusOK {
		return &ResponseError{StatusCode: code, Message: env.stringField(keyError)}
	}
	return nil
}

// NormalizeResponse converts a raw response body into a Response. The body
// must carry the page and total counts and a results member that is either
// an object or an array of objects. It does not look at status_code.
func NormalizeResponse(uri string, body []byte) (*Response, error) {
	env, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}
	return env.normalize(uri)
}

func (env envelope) normalize(uri string) (*Response, error) {
	page, err := env.intField(keyPageResults)
	if err != nil {
		return nil, err
	}
	total, err := env.intField(keyTotalResults)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		URI:             uri,
		NumPageResults:  page,
		NumTotalResults: total,
		Results:         []Record{},
	}

	raw, present := env[keyResults]
	if !present {
		return nil, &MalformedResponseError{Key: keyResults}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == jsonNull {
		return resp, nil
	}

	switch raw[0] {
	case '{':
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &MalformedResponseError{Key: keyResults, Err: err}
		}
		resp.Result = rec
		resp.Results = []Record{rec}
	case '[':
		var recs []Record
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, &MalformedResponseError{Key: keyResults, Err: err}
		}
		if recs != nil {
			resp.Results = recs
		}
	default:
		return nil, &MalformedResponseError{
			Key: keyResults,
			Err: fmt.Errorf("expected object or array, got %s", raw),
		}
	}

	return resp, nil
}

// Decode copies Results into dst, which must be a pointer to a slice of
// structs or maps. Struct fields are matched on their json tag.
func (r *Response) Decode(dst any) error {
	return decodeRecords(r.Results, dst)
}

// DecodeResult copies the single Result into dst, a pointer to a struct. It
// fails when the response came from a search.
func (r *Response) DecodeResult(dst any) error {
	if r.Result == nil {
		return fmt.Errorf("%w: response has no single result", ErrInvalidArgument)
	}
	return decodeRecords(r.Result, dst)
}

func decodeRecords(src, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          recordDecodeTagKey,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("failed to decode records: %w", err)
	}
	return nil
}
