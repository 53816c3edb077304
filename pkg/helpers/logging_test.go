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

package helpers

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/giantbomb/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file replace the global logger and must not run in parallel.

func restoreLogger(t *testing.T) {
	t.Helper()
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	prevWriter := logWriter
	t.Cleanup(func() {
		log.Logger = prev
		logWriter = prevWriter
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestInitLogging_WritesFileAndWriters(t *testing.T) {
	restoreLogger(t)

	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	var buf bytes.Buffer

	require.NoError(t, InitLogging(logDir, false, &buf))

	log.Info().Str("resource", "game").Msg("hello")
	log.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), `"resource":"game"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.NotContains(t, buf.String(), "hidden")

	_, err := LogWriter().Write([]byte("raw line\n"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "raw line")

	data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestInitLogging_Debug(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, InitLogging("", true, &buf))

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitLogging_ErrorStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, InitLogging("", false, &buf))

	log.Error().Err(errors.New("boom")).Msg("failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestInitLogging_NoWriters(t *testing.T) {
	restoreLogger(t)
	require.NoError(t, InitLogging("", false))
	log.Info().Msg("discarded")
	assert.NotNil(t, LogWriter())
}

func TestInitLogging_BadDir(t *testing.T) {
	restoreLogger(t)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := InitLogging(filepath.Join(file, "logs"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}

func TestConsoleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriter(&buf))
	logger.Info().Str("resource", "games").Msg("search")

	assert.Contains(t, buf.String(), "search")
	assert.Contains(t, buf.String(), "resource=games")
}

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, ExeDir())
	assert.NotEmpty(t, ConfigDir())
	assert.NotEmpty(t, LogDir())
}
