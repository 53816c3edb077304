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

package telemetry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "nothing to scrub",
			input:    "/usr/local/bin/giantbomb",
			expected: "/usr/local/bin/giantbomb",
		},
		{
			name:     "api key in url",
			input:    "GET http://www.giantbomb.com/api/game/1/?api_key=abc123&format=json",
			expected: "GET http://www.giantbomb.com/api/game/1/?api_key=<redacted>&format=json",
		},
		{
			name:     "api key at end",
			input:    "filter=name:portal&API_KEY=secret",
			expected: "filter=name:portal&API_KEY=<redacted>",
		},
		{
			name:     "api key in quoted url",
			input:    `Get "http://localhost/api/games?api_key=k3y": connection refused`,
			expected: `Get "http://localhost/api/games?api_key=<redacted>": connection refused`,
		},
		{
			name:     "linux home path",
			input:    "/home/alice/.config/giantbomb/giantbomb.toml",
			expected: "/home/<user>/.config/giantbomb/giantbomb.toml",
		},
		{
			name:     "macos users path",
			input:    "/users/alice/Library/giantbomb.toml",
			expected: "/Users/<user>/Library/giantbomb.toml",
		},
		{
			name:     "windows path",
			input:    "d:\\Users\\Bob\\AppData\\Roaming\\giantbomb",
			expected: "C:\\Users\\<user>\\AppData\\Roaming\\giantbomb",
		},
		{
			name:     "key and path together",
			input:    "/home/alice/log: api_key=xyz",
			expected: "/home/<user>/log: api_key=<redacted>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitize(tt.input))
		})
	}
}

func TestSanitizeEvent(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "my-laptop",
		Message:    "request failed: http://x/api/?api_key=secret",
		Request: &sentry.Request{
			URL:         "http://x/api/games?api_key=secret",
			QueryString: "api_key=secret&format=json",
		},
		Exception: []sentry.Exception{{
			Value: "api_key=secret",
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{{
				AbsPath:  "/home/alice/src/giantbomb/client.go",
				Filename: "/home/alice/src/giantbomb/client.go",
			}}},
		}},
		Extra: map[string]any{
			"path":  "/home/alice/.config",
			"count": 3,
		},
	}

	got := sanitizeEvent(event)
	require.NotNil(t, got)

	assert.Empty(t, got.ServerName)
	assert.Equal(t, "request failed: http://x/api/?api_key=<redacted>", got.Message)
	assert.Equal(t, "http://x/api/games?api_key=<redacted>", got.Request.URL)
	assert.Equal(t, "api_key=<redacted>&format=json", got.Request.QueryString)
	assert.Equal(t, "api_key=<redacted>", got.Exception[0].Value)
	frame := got.Exception[0].Stacktrace.Frames[0]
	assert.Equal(t, "/home/<user>/src/giantbomb/client.go", frame.AbsPath)
	assert.Equal(t, "/home/<user>/src/giantbomb/client.go", frame.Filename)
	assert.Equal(t, "/home/<user>/.config", got.Extra["path"])
	assert.Equal(t, 3, got.Extra["count"])
}

func TestInitDisabled(t *testing.T) {
	t.Parallel()
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, Enabled())
}

func TestInitMissingDSN(t *testing.T) {
	t.Parallel()
	err := Init(Options{Enabled: true})
	require.ErrorIs(t, err, ErrMissingDSN)
	assert.False(t, Enabled())
}

func TestCloseWhenDisabled(t *testing.T) {
	t.Parallel()
	Close()
}
