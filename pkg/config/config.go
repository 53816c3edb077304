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

// Package config loads client settings from giantbomb.toml, credentials from
// auth.toml, and overrides from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/giantbomb/pkg/helpers/syncutil"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	CfgFile   = "giantbomb.toml"
	AuthFile  = "auth.toml"
	LogFile   = "giantbomb.log"
	CfgEnv    = "GIANTBOMB_CFG"
	APIKeyEnv = "GIANTBOMB_API_KEY"
)

type Values struct {
	APIKey            string  `toml:"api_key,omitempty"`
	Format            string  `toml:"format,omitempty" validate:"omitempty,oneof=json xml"`
	BaseURL           string  `toml:"base_url,omitempty" validate:"omitempty,url"`
	Timeout           string  `toml:"timeout,omitempty" validate:"omitempty,duration"`
	SentryDSN         string  `toml:"sentry_dsn,omitempty" validate:"omitempty,url"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"gte=0"`
	DebugLogging      bool    `toml:"debug_logging"`
	ErrorReporting    bool    `toml:"error_reporting"`
}

var BaseDefaults = Values{
	Format:            "json",
	BaseURL:           "http://www.giantbomb.com/api/",
	Timeout:           "30s",
	RequestsPerSecond: 1,
}

// Instance is a loaded configuration. It is safe for concurrent use.
type Instance struct {
	fs             afero.Fs
	auth           map[string]CredentialEntry
	cfgPath        string
	authPath       string
	apiKeyOverride string
	vals           Values
	defaults       Values
	mu             syncutil.RWMutex
}

// NewConfig loads the config from cfgDir, writing a file with the defaults
// first when none exists. The GIANTBOMB_CFG environment variable, when set,
// names the config file directly.
func NewConfig(afs afero.Fs, cfgDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(cfgDir, CfgFile)
	}

	cfg := &Instance{
		fs:       afs,
		cfgPath:  cfgPath,
		authPath: filepath.Join(filepath.Dir(cfgPath), AuthFile),
		defaults: defaults,
		vals:     defaults,
	}

	if _, err := afs.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", cfgPath).Msg("saving new default config to disk")
		if err := afs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load re-reads the config and auth files.
func (c *Instance) Load() error {
	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	vals := c.defaults
	if err := toml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", c.cfgPath, err)
	}
	if err := Validate(&vals); err != nil {
		return fmt.Errorf("invalid config file %s: %w", c.cfgPath, err)
	}

	auth := map[string]CredentialEntry{}
	authData, err := afero.ReadFile(c.fs, c.authPath)
	switch {
	case err == nil:
		auth = LoadAuthFromData(authData)
		log.Debug().Int("entries", len(auth)).Msg("loaded auth file")
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("failed to read auth file: %w", err)
	}

	c.mu.Lock()
	c.vals = vals
	c.auth = auth
	c.mu.Unlock()

	log.Debug().Str("path", c.cfgPath).Msg("loaded config")
	return nil
}

// Save writes the current values to the config file.
func (c *Instance) Save() error {
	c.mu.RLock()
	data, err := toml.Marshal(&c.vals)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadEnv loads .env style files into the process environment. Missing files
// are skipped and existing variables are not overwritten.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
		log.Debug().Str("path", p).Msg("loaded env file")
	}
	return nil
}

// APIKey resolves the API key. In order of priority: SetAPIKey (the -api-key
// flag), the GIANTBOMB_API_KEY environment variable, a matching auth.toml
// entry for the base URL, then api_key in the config file.
func (c *Instance) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apiKeyOverride != "" {
		return c.apiKeyOverride
	}
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	if creds := LookupAuth(c.auth, c.vals.BaseURL); creds != nil && creds.APIKey != "" {
		return creds.APIKey
	}
	return c.vals.APIKey
}

func (c *Instance) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKeyOverride = key
}

func (c *Instance) Format() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Format
}

// SetFormat changes the response format. Unsupported formats are rejected.
func (c *Instance) SetFormat(format string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	vals := c.vals
	vals.Format = format
	if err := Validate(&vals); err != nil {
		return err
	}
	c.vals = vals
	return nil
}

func (c *Instance) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.BaseURL
}

// Timeout returns the HTTP timeout, or zero when unset.
func (c *Instance) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.vals.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// RequestsPerSecond is the client side request rate limit. Zero disables it.
func (c *Instance) RequestsPerSecond() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.RequestsPerSecond
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) ErrorReporting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ErrorReporting
}

func (c *Instance) SentryDSN() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.SentryDSN
}

// Path returns the config file path.
func (c *Instance) Path() string {
	return c.cfgPath
}
