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

// GameSchema lists the fields of the game resource.
// https://www.giantbomb.com/api/documentation#toc-0-16
var GameSchema = Schema{
	"aliases":                     {Filter: true},
	"api_detail_url":              {Filter: true},
	"characters":                  {Filter: true},
	"concepts":                    {Filter: true},
	"date_added":                  {Filter: true},
	"date_last_updated":           {Filter: true},
	"deck":                        {Filter: true},
	"description":                 {Filter: true},
	"developers":                  {Filter: true},
	"expected_release_day":        {Filter: true},
	"expected_release_month":      {Filter: true},
	"expected_release_quarter":    {Filter: true},
	"expected_release_year":       {Filter: true},
	"first_appearance_characters": {Filter: true},
	"first_appearance_concepts":   {Filter: true},
	"first_appearance_locations":  {Filter: true},
	"first_appearance_objects":    {Filter: true},
	"first_appearance_people":     {Filter: true},
	"franchises":                  {Filter: true},
	"genres":                      {Filter: true},
	"id":                          {Filter: true},
	"image":                       {Filter: true},
	"images":                      {Filter: true},
	"killed_characters":           {Filter: true},
	"locations":                   {Filter: true},
	"name":                        {Filter: true},
	"number_of_user_reviews":      {Filter: true},
	"objects":                     {Filter: true},
	"original_game_rating":        {Sort: true},
	"original_release_date":       {Filter: true},
	"people":                      {Filter: true},
	"platforms":                   {Filter: true},
	"publishers":                  {Filter: true},
	"releases":                    {Filter: true},
	"reviews":                     {Filter: true},
	"similar_games":               {Filter: true},
	"site_detail_url":             {Filter: true},
	"themes":                      {Filter: true},
	"videos":                      {Filter: true},
}

// GameResource is the single game endpoint.
var GameResource = Resource{Name: "game", Schema: GameSchema}

// GameClient fetches one game by id.
type GameClient struct {
	*Client
}

var _ Fetcher = (*GameClient)(nil)

// NewGameClient creates a client for the game resource.
func NewGameClient(apiKey string, opts ...Option) *GameClient {
	return &GameClient{Client: NewClient(apiKey, opts...)}
}

// Resource returns the game resource description.
func (*GameClient) Resource() Resource {
	return GameResource
}

// Fetch returns the game with the given id. When returnFields is empty every
// field is returned. The game is available as both resp.Result and
// resp.Results[0].
func (c *GameClient) Fetch(ctx context.Context, id string, returnFields ...string) (*Response, error) {
	return c.fetch(ctx, GameResource, id, returnFields)
}
