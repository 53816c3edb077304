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
	"fmt"
	"net/url"
	"strings"

	"github.com/ZaparooProject/giantbomb/pkg/validation"
	"github.com/go-viper/mapstructure/v2"
)

// Resource describes one API endpoint.
type Resource struct {
	Schema Schema
	Name   string
}

// ResourceClient is implemented by every resource client.
type ResourceClient interface {
	Resource() Resource
}

// Fetcher is a resource addressed by id.
type Fetcher interface {
	ResourceClient
	Fetch(ctx context.Context, id string, returnFields ...string) (*Response, error)
}

// Searcher is a collection resource that can be filtered, sorted and paged.
type Searcher interface {
	ResourceClient
	Search(ctx context.Context, opts SearchOptions) (*Response, error)
	QuickSearch(ctx context.Context, name string, opts QuickSearchOptions) (*Response, error)
}

// SearchOptions are the arguments of a search. A nil ReturnFields returns
// every field. An empty SortBy leaves ordering to the API.
type SearchOptions struct {
	Limit        *int      `mapstructure:"limit" validate:"omitempty,gte=0"`
	Offset       *int      `mapstructure:"offset" validate:"omitempty,gte=0"`
	SortBy       string    `mapstructure:"sort_by"`
	Order        SortOrder `mapstructure:"order" validate:"omitempty,oneof=asc desc"`
	Filters      Filters   `mapstructure:"-" validate:"-"`
	ReturnFields []string  `mapstructure:"return_fields"`
}

// QuickSearchOptions are the arguments of a search by name. Platform, when
// non-zero, restricts results to one platform id on resources that can be
// filtered by platform.
type QuickSearchOptions struct {
	SortBy   string
	Order    SortOrder
	Platform int
}

// searchArgs adds the boolean desc flag accepted by DecodeSearchOptions.
type searchArgs struct {
	Desc          *bool `mapstructure:"desc"`
	SearchOptions `mapstructure:",squash"`
}

// DecodeSearchOptions builds SearchOptions from loosely typed values, such as
// command line flags or query strings. Recognised keys are return_fields
// (a slice or a comma separated string), sort_by, order, desc, limit and
// offset. Numbers are converted here, so a limit of "ten" fails with
// ErrInvalidArgument before any field is validated or request sent.
func DecodeSearchOptions(raw map[string]any) (SearchOptions, error) {
	var args searchArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &args,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return SearchOptions{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return SearchOptions{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	opts := args.SearchOptions
	if args.Desc != nil && opts.Order == "" {
		if *args.Desc {
			opts.Order = SortDescending
		} else {
			opts.Order = SortAscending
		}
	}
	return opts, nil
}

// fetch validates returnFields and requests {resource}/{id}.
func (c *Client) fetch(ctx context.Context, res Resource, id string, returnFields []string) (*Response, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty %s id", ErrInvalidArgument, res.Name)
	}
	if err := ValidateReturnFields(res.Schema, returnFields); err != nil {
		return nil, forResource(err, res.Name)
	}

	params := NewParams()
	if fl := BuildReturnFieldsString(returnFields); fl != "" {
		params.Set(ParamFieldList, fl)
	}

	return c.get(ctx, res.Name+"/"+url.PathEscape(id), params)
}

// search validates every option and then requests {resource}. Validation
// order is filters, sort field, return fields, then numeric ranges.
func (c *Client) search(ctx context.Context, res Resource, opts SearchOptions) (*Response, error) {
	params, err := searchParams(res, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, res.Name, params)
}

// searchParams validates opts against the resource and builds the request
// parameters. It performs no I/O.
func searchParams(res Resource, opts SearchOptions) (*Params, error) {
	if err := ValidateFilterFields(res.Schema, opts.Filters); err != nil {
		return nil, forResource(err, res.Name)
	}
	if opts.SortBy != "" {
		if err := ValidateSortField(res.Schema, opts.SortBy); err != nil {
			return nil, forResource(err, res.Name)
		}
	}
	if err := ValidateReturnFields(res.Schema, opts.ReturnFields); err != nil {
		return nil, forResource(err, res.Name)
	}
	if err := validation.Validate(&opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	params := NewParams()
	if filter := BuildFilterString(opts.Filters); filter != "" {
		params.Set(ParamFilter, filter)
	}
	if fl := BuildReturnFieldsString(opts.ReturnFields); fl != "" {
		params.Set(ParamFieldList, fl)
	}
	if opts.SortBy != "" {
		params.Set(ParamSort, BuildSortString(opts.SortBy, opts.Order))
	}
	if opts.Limit != nil {
		params.SetInt(ParamLimit, *opts.Limit)
	}
	if opts.Offset != nil {
		params.SetInt(ParamOffset, *opts.Offset)
	}
	return params, nil
}

// quickSearch searches by name, adding a platforms filter when asked. The
// extra filter goes through the same schema validation as any other.
func (c *Client) quickSearch(
	ctx context.Context,
	res Resource,
	name string,
	opts QuickSearchOptions,
) (*Response, error) {
	filters := Filters{{Field: "name", Value: name}}
	if opts.Platform != 0 {
		filters = filters.With("platforms", opts.Platform)
	}
	return c.search(ctx, res, SearchOptions{
		Filters: filters,
		SortBy:  opts.SortBy,
		Order:   opts.Order,
	})
}
