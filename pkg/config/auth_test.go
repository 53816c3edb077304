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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuthFromData_RootFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.giantbomb.com/api/"]
api_key = "root-key"

["localhost:8080"]
api_key = "local-key"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "root-key", result["https://www.giantbomb.com/api/"].APIKey)
	assert.Equal(t, "local-key", result["localhost:8080"].APIKey)
}

func TestLoadAuthFromData_MixedFormats(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.giantbomb.com/api/"]
api_key = "root-key"

[creds."www.giantbomb.com"]
api_key = "creds-key"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "root-key", result["https://www.giantbomb.com/api/"].APIKey)
	assert.Equal(t, "creds-key", result["www.giantbomb.com"].APIKey)
	assert.NotContains(t, result, "creds")
}

func TestLoadAuthFromData_Invalid(t *testing.T) {
	t.Parallel()
	assert.Empty(t, LoadAuthFromData([]byte("this is [not toml")))
}

func TestLookupAuth(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"http://www.giantbomb.com/":     {APIKey: "site"},
		"http://www.giantbomb.com/api/": {APIKey: "api"},
		"https://www.giantbomb.com/":    {APIKey: "secure"},
		"localhost:8080":                {APIKey: "local"},
		"::bad::":                       {APIKey: "bad"},
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "longest prefix wins", url: "http://www.giantbomb.com/api/game/1/", want: "api"},
		{name: "shorter prefix", url: "http://www.giantbomb.com/wiki/", want: "site"},
		{name: "scheme must match", url: "https://www.giantbomb.com/api/", want: "secure"},
		{name: "host case insensitive", url: "http://WWW.GiantBomb.com/api/", want: "api"},
		{name: "schemeless host", url: "http://localhost:8080/api/", want: "local"},
		{name: "no match", url: "http://example.com/api/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LookupAuth(creds, tt.url)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.APIKey)
		})
	}
}

func TestLookupAuth_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, LookupAuth(nil, "http://www.giantbomb.com/api/"))
}
