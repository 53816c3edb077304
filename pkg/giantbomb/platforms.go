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
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Platform ids for use as a games filter.
const (
	PS1     = 22
	PS2     = 19
	PS3     = 35
	PS4     = 146
	Xbox    = 32
	Xbox360 = 20
	XboxOne = 145
	Mac     = 17
	PC      = 94
)

var platformNames = map[string]int{
	"ps1":     PS1,
	"ps2":     PS2,
	"ps3":     PS3,
	"ps4":     PS4,
	"xbox":    Xbox,
	"xbox360": Xbox360,
	"xboxone": XboxOne,
	"mac":     Mac,
	"pc":      PC,
}

// platformKey folds full-width characters and case, then drops separators.
func platformKey(name string) string {
	s := strings.TrimSpace(name)
	if folded, _, err := transform.String(width.Fold, s); err == nil {
		s = folded
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, cases.Fold().String(s))
}

// LookupPlatform resolves a platform id from a known short name such as
// "ps4" or "Xbox One", or from a plain number.
func LookupPlatform(name string) (int, bool) {
	key := platformKey(name)
	if id, ok := platformNames[key]; ok {
		return id, true
	}
	if id, err := strconv.Atoi(key); err == nil && id > 0 {
		return id, true
	}
	return 0, false
}

// PlatformsSchema lists the fields of the platforms resource.
// https://www.giantbomb.com/api/documentation#toc-0-30
var PlatformsSchema = Schema{
	"abbreviation":      {Filter: true, Sort: true},
	"api_detail_url":    {},
	"company":           {Filter: true},
	"date_added":        {Filter: true, Sort: true},
	"date_last_updated": {Filter: true, Sort: true},
	"deck":              {},
	"description":       {},
	"guid":              {},
	"id":                {Filter: true, Sort: true},
	"image":             {},
	"image_tags":        {},
	"install_base":      {Filter: true, Sort: true},
	"name":              {Filter: true, Sort: true},
	"online_support":    {Filter: true, Sort: true},
	"original_price":    {Filter: true, Sort: true},
	"release_date":      {Filter: true, Sort: true},
	"site_detail_url":   {},
}

// PlatformsResource is the platforms collection endpoint.
var PlatformsResource = Resource{Name: "platforms", Schema: PlatformsSchema}

// PlatformsClient searches the platforms collection.
type PlatformsClient struct {
	*Client
}

var _ Searcher = (*PlatformsClient)(nil)

// NewPlatformsClient creates a client for the platforms resource.
func NewPlatformsClient(apiKey string, opts ...Option) *PlatformsClient {
	return &PlatformsClient{Client: NewClient(apiKey, opts...)}
}

// Resource returns the platforms resource description.
func (*PlatformsClient) Resource() Resource {
	return PlatformsResource
}

// Search runs a filtered, sorted and paged search of platforms.
func (c *PlatformsClient) Search(ctx context.Context, opts SearchOptions) (*Response, error) {
	return c.search(ctx, PlatformsResource, opts)
}

// QuickSearch finds platforms by name. Platforms cannot be filtered by
// platform, so a non-zero opts.Platform fails with ErrInvalidFilterField.
func (c *PlatformsClient) QuickSearch(ctx context.Context, name string, opts QuickSearchOptions) (*Response, error) {
	return c.quickSearch(ctx, PlatformsResource, name, opts)
}
