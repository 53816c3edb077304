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

// The structs below cover the commonly used fields of each resource. Decode
// a Response into them with Response.Decode or Response.DecodeResult. Fields
// absent from the response, for example because of a field list, are left
// at their zero value.

// Image holds the URLs of one image in several sizes.
type Image struct {
	IconURL     string `json:"icon_url"`
	MediumURL   string `json:"medium_url"`
	ScreenURL   string `json:"screen_url"`
	SmallURL    string `json:"small_url"`
	SuperURL    string `json:"super_url"`
	ThumbURL    string `json:"thumb_url"`
	TinyURL     string `json:"tiny_url"`
	OriginalURL string `json:"original_url"`
	ImageTags   string `json:"image_tags"`
}

// Ref is a reference to another resource embedded in a record.
type Ref struct {
	APIDetailURL  string `json:"api_detail_url"`
	SiteDetailURL string `json:"site_detail_url"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	ID            int    `json:"id"`
}

// Game is a record of the game or games resource.
type Game struct {
	Image                  *Image `json:"image"`
	Aliases                string `json:"aliases"`
	APIDetailURL           string `json:"api_detail_url"`
	DateAdded              string `json:"date_added"`
	DateLastUpdated        string `json:"date_last_updated"`
	Deck                   string `json:"deck"`
	Description            string `json:"description"`
	GUID                   string `json:"guid"`
	Name                   string `json:"name"`
	OriginalReleaseDate    string `json:"original_release_date"`
	SiteDetailURL          string `json:"site_detail_url"`
	Developers             []Ref  `json:"developers"`
	Genres                 []Ref  `json:"genres"`
	Platforms              []Ref  `json:"platforms"`
	Publishers             []Ref  `json:"publishers"`
	SimilarGames           []Ref  `json:"similar_games"`
	Franchises             []Ref  `json:"franchises"`
	ExpectedReleaseYear    int    `json:"expected_release_year"`
	ExpectedReleaseMonth   int    `json:"expected_release_month"`
	ExpectedReleaseDay     int    `json:"expected_release_day"`
	ExpectedReleaseQuarter int    `json:"expected_release_quarter"`
	ID                     int    `json:"id"`
	NumberOfUserReviews    int    `json:"number_of_user_reviews"`
}

// Platform is a record of the platforms resource.
type Platform struct {
	Company         *Ref   `json:"company"`
	Image           *Image `json:"image"`
	Abbreviation    string `json:"abbreviation"`
	APIDetailURL    string `json:"api_detail_url"`
	DateAdded       string `json:"date_added"`
	DateLastUpdated string `json:"date_last_updated"`
	Deck            string `json:"deck"`
	Description     string `json:"description"`
	GUID            string `json:"guid"`
	InstallBase     string `json:"install_base"`
	Name            string `json:"name"`
	OriginalPrice   string `json:"original_price"`
	ReleaseDate     string `json:"release_date"`
	SiteDetailURL   string `json:"site_detail_url"`
	ID              int    `json:"id"`
	OnlineSupport   bool   `json:"online_support"`
}
