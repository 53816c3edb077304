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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "games", want: "games"},
		{in: "Games", want: "games"},
		{in: "GamesClient", want: "games"},
		{in: "games_client", want: "games"},
		{in: "GameClient", want: "game"},
		{in: " platforms ", want: "platforms"},
		{in: "PlatformsClient", want: "platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestRegistryDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Equal(t, []string{"game", "games", "platforms"}, r.Names())
	assert.True(t, r.Has("GamesClient"))
	assert.False(t, r.Has("franchises"))

	_, err := r.Get("franchises")
	require.ErrorIs(t, err, ErrInvalidClient)
	require.ErrorIs(t, err, ErrClient)
}

func TestFactoryBuild(t *testing.T) {
	t.Parallel()

	f := NewFactory(testKey, WithFormat(FormatXML), WithBaseURL("http://localhost/api/"))

	rc, err := f.Build("GameClient")
	require.NoError(t, err)
	game, ok := rc.(*GameClient)
	require.True(t, ok)
	assert.Equal(t, testKey, game.APIKey)
	assert.Equal(t, FormatXML, game.Format)
	assert.Equal(t, "http://localhost/api/", game.BaseURL)
	assert.Equal(t, GameResource.Name, game.Resource().Name)

	searcher, err := f.Searcher("games")
	require.NoError(t, err)
	assert.Equal(t, "games", searcher.Resource().Name)

	fetcher, err := f.Fetcher("game")
	require.NoError(t, err)
	assert.Equal(t, "game", fetcher.Resource().Name)

	_, err = f.Build("reviews")
	require.ErrorIs(t, err, ErrInvalidClient)
}

func TestFactoryCapabilityMismatch(t *testing.T) {
	t.Parallel()

	f := NewFactory(testKey)

	_, err := f.Fetcher("games")
	require.ErrorIs(t, err, ErrInvalidClient)
	assert.Contains(t, err.Error(), "does not support fetch")

	_, err = f.Searcher("game")
	require.ErrorIs(t, err, ErrInvalidClient)
	assert.Contains(t, err.Error(), "does not support search")
}

type franchiseClient struct {
	*Client
}

func (*franchiseClient) Resource() Resource {
	return Resource{Name: "franchise", Schema: Schema{"name": {Filter: true}}}
}

func TestFactoryCustomRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("FranchiseClient", func(apiKey string, opts ...Option) ResourceClient {
		return &franchiseClient{Client: NewClient(apiKey, opts...)}
	})
	assert.Equal(t, []string{"franchise", "game", "games", "platforms"}, r.Names())

	f := NewFactory(testKey).WithRegistry(r)
	rc, err := f.Build("franchise")
	require.NoError(t, err)
	assert.Equal(t, "franchise", rc.Resource().Name)

	_, err = f.Fetcher("franchise")
	require.ErrorIs(t, err, ErrInvalidClient)

	// the default registry is untouched
	_, err = NewFactory(testKey).Build("franchise")
	require.ErrorIs(t, err, ErrInvalidClient)
}

//nolint:paralleltest // replaces the global logger
func TestNewRegistry_Quiet(t *testing.T) {
	logs := captureLogs(t)

	r := NewRegistry()
	assert.Equal(t, []string{"game", "games", "platforms"}, r.Names())
	assert.Empty(t, logs.String())

	r.Register("franchises", func(apiKey string, opts ...Option) ResourceClient {
		return NewGamesClient(apiKey, opts...)
	})
	assert.Contains(t, logs.String(), "registered giantbomb resource")
}
