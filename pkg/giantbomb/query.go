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
	"cmp"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names understood by the API.
const (
	ParamAPIKey    = "api_key"
	ParamFormat    = "format"
	ParamID        = "id"
	ParamFilter    = "filter"
	ParamFieldList = "field_list"
	ParamSort      = "sort"
	ParamLimit     = "limit"
	ParamOffset    = "offset"
)

// Response formats accepted by the format parameter.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// SortOrder is the direction of a sort. The zero value sorts descending.
type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

func (o SortOrder) orDefault() SortOrder {
	if o == "" {
		return SortDescending
	}
	return o
}

// Filter is a single equality filter. A nil Value, or a nil pointer, marks
// the filter as unset: it is validated but never sent.
type Filter struct {
	Value any
	Field string
}

// Filters is an ordered set of filters. Order is preserved on the wire.
type Filters []Filter

// FiltersFromMap converts a map to Filters ordered by field name.
func FiltersFromMap(m map[string]any) Filters {
	fs := make(Filters, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fs = append(fs, Filter{Field: k, Value: m[k]})
	}
	return fs
}

// With returns a copy of fs with an extra filter appended.
func (fs Filters) With(field string, value any) Filters {
	out := make(Filters, len(fs), len(fs)+1)
	copy(out, fs)
	return append(out, Filter{Field: field, Value: value})
}

// Params holds the query parameters of one request.
type Params struct {
	values url.Values
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Set sets key to a string value.
func (p *Params) Set(key, value string) {
	p.values.Set(key, value)
}

// SetInt sets key to an integer value.
func (p *Params) SetInt(key string, value int) {
	p.values.Set(key, strconv.Itoa(value))
}

// Get returns the value of key or an empty string.
func (p *Params) Get(key string) string {
	return p.values.Get(key)
}

// Has reports whether key is set.
func (p *Params) Has(key string) bool {
	return p.values.Has(key)
}

// Del removes key.
func (p *Params) Del(key string) {
	p.values.Del(key)
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	c := NewParams()
	for k, v := range p.values {
		c.values[k] = slices.Clone(v)
	}
	return c
}

// Encode returns the URL encoded form, keys sorted.
func (p *Params) Encode() string {
	return p.values.Encode()
}

// BuildFilterString joins active filters as "field:value" pairs separated by
// commas. Filters with a nil value are skipped.
func BuildFilterString(filters Filters) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if isAbsent(f.Value) {
			continue
		}
		parts = append(parts, f.Field+":"+formatValue(f.Value))
	}
	return strings.Join(parts, ",")
}

// BuildReturnFieldsString joins field names with commas in caller order.
// An empty result means the field_list parameter must be omitted.
func BuildReturnFieldsString(fields []string) string {
	return strings.Join(fields, ",")
}

// BuildSortString renders a sort directive as "field:asc" or "field:desc".
func BuildSortString(field string, order SortOrder) string {
	return field + ":" + string(order.orDefault())
}

// FinalizeParams returns a copy of base with the API key set and the format
// set when base does not already carry one.
func FinalizeParams(base *Params, apiKey, format string) *Params {
	p := base.Clone()
	p.Set(ParamAPIKey, apiKey)
	if !p.Has(ParamFormat) {
		p.Set(ParamFormat, cmp.Or(format, FormatJSON))
	}
	return p
}

const redactedValue = "<redacted>"

// RedactAPIKey drops the api_key parameter from a request URL. Unparsable
// input is returned unchanged.
func RedactAPIKey(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	q := u.Query()
	if !q.Has(ParamAPIKey) {
		return uri
	}
	q.Del(ParamAPIKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// isAbsent reports whether v is nil, including typed nil pointers such as a
// nil *int platform id. Pointer chains are followed, so a pointer to a nil
// pointer is absent too.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return false
}

func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	switch val := rv.Interface().(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
