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
	"fmt"
	"slices"
	"strings"

	"github.com/ZaparooProject/giantbomb/pkg/helpers/syncutil"
	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog/log"
)

// Constructor creates a resource client.
type Constructor func(apiKey string, opts ...Option) ResourceClient

// Registry maps resource names to client constructors.
type Registry struct {
	constructors map[string]Constructor
	mu           syncutil.RWMutex
}

// NewRegistry creates a registry holding the built-in resources.
func NewRegistry() *Registry {
	r := &Registry{
		constructors: make(map[string]Constructor),
	}
	r.registerDefaults()
	return r
}

// registerDefaults fills the map without logging, since DefaultRegistry is
// built before any logger is configured.
func (r *Registry) registerDefaults() {
	r.constructors[GameResource.Name] = func(apiKey string, opts ...Option) ResourceClient {
		return NewGameClient(apiKey, opts...)
	}
	r.constructors[GamesResource.Name] = func(apiKey string, opts ...Option) ResourceClient {
		return NewGamesClient(apiKey, opts...)
	}
	r.constructors[PlatformsResource.Name] = func(apiKey string, opts ...Option) ResourceClient {
		return NewPlatformsClient(apiKey, opts...)
	}
}

// DefaultRegistry holds the built-in resources.
var DefaultRegistry = NewRegistry()

// NormalizeName maps the accepted spellings of a client name to the resource
// name: "GamesClient", "games_client", "Games" and "games" all give "games".
func NormalizeName(name string) string {
	n := strcase.ToSnake(strings.TrimSpace(name))
	return strings.TrimSuffix(n, "_client")
}

// Register adds or replaces the constructor for name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[NormalizeName(name)] = ctor
	log.Debug().Str("name", name).Msg("registered giantbomb resource")
}

// Get returns the constructor for name.
func (r *Registry) Get(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClient, name)
	}
	return ctor, nil
}

// Names returns the registered resource names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Factory builds resource clients that share one API key and option set.
type Factory struct {
	registry *Registry
	APIKey   string
	opts     []Option
}

// NewFactory creates a Factory backed by DefaultRegistry.
func NewFactory(apiKey string, opts ...Option) *Factory {
	return &Factory{registry: DefaultRegistry, APIKey: apiKey, opts: opts}
}

// WithRegistry returns a copy of f that looks names up in r.
func (f *Factory) WithRegistry(r *Registry) *Factory {
	c := *f
	c.registry = r
	return &c
}

// Build creates the client registered under name. Unknown names fail with
// ErrInvalidClient.
func (f *Factory) Build(name string) (ResourceClient, error) {
	ctor, err := f.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return ctor(f.APIKey, f.opts...), nil
}

// Fetcher builds the client for name and checks that it fetches by id.
func (f *Factory) Fetcher(name string) (Fetcher, error) {
	rc, err := f.Build(name)
	if err != nil {
		return nil, err
	}
	fc, ok := rc.(Fetcher)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support fetch", ErrInvalidClient, name)
	}
	return fc, nil
}

// Searcher builds the client for name and checks that it supports search.
func (f *Factory) Searcher(name string) (Searcher, error) {
	rc, err := f.Build(name)
	if err != nil {
		return nil, err
	}
	sc, ok := rc.(Searcher)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support search", ErrInvalidClient, name)
	}
	return sc, nil
}
