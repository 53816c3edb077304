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

import "context"

// GamesSchema lists the fields of the games resource.
// https://www.giantbomb.com/api/documentation#toc-0-17
var GamesSchema = Schema{
	"aliases":                  {Filter: true},
	"api_detail_url":           {},
	"date_added":               {Filter: true, Sort: true},
	"date_last_updated":        {Filter: true, Sort: true},
	"deck":                     {},
	"description":              {},
	"expected_release_month":   {Filter: true},
	"expected_release_quarter": {Filter: true},
	"expected_release_year":    {Filter: true},
	"id":                       {Filter: true, Sort: true},
	"image":                    {},
	"name":                     {Filter: true, Sort: true},
	"number_of_user_reviews":   {Filter: true, Sort: true},
	"original_game_rating":     {Sort: true},
	"original_release_date":    {Filter: true, Sort: true},
	"platforms":                {Filter: true},
	"site_detail_url":          {},
}

// GamesResource is the games collection endpoint.
var GamesResource = Resource{Name: "games", Schema: GamesSchema}

// GamesClient searches the games collection.
type GamesClient struct {
	*Client
}

var _ Searcher = (*GamesClient)(nil)

// NewGamesClient creates a client for the games resource.
func NewGamesClient(apiKey string, opts ...Option) *GamesClient {
	return &GamesClient{Client: NewClient(apiKey, opts...)}
}

// Resource returns the games resource description.
func (*GamesClient) Resource() Resource {
	return GamesResource
}

// Search runs a filtered, sorted and paged search of games.
func (c *GamesClient) Search(ctx context.Context, opts SearchOptions) (*Response, error) {
	return c.search(ctx, GamesResource, opts)
}

// QuickSearch finds games by name, optionally limited to one platform id
// such as PC.
func (c *GamesClient) QuickSearch(ctx context.Context, name string, opts QuickSearchOptions) (*Response, error) {
	return c.quickSearch(ctx, GamesResource, name, opts)
}
