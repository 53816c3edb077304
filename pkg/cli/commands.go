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

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/ZaparooProject/giantbomb/pkg/config"
	"github.com/ZaparooProject/giantbomb/pkg/giantbomb"
	"golang.org/x/sync/errgroup"
)

type cmdEnv struct {
	app     *App
	cfg     *config.Instance
	factory *giantbomb.Factory
	enc     encoder
}

type command struct {
	run  func(ctx context.Context, env *cmdEnv, args []string) error
	name string
	help string
}

var commands = []command{
	{name: "fetch", help: "fetch one item by id", run: runFetch},
	{name: "search", help: "search a collection with filters", run: runSearch},
	{name: "quick-search", help: "search a collection by name", run: runQuickSearch},
	{name: "resources", help: "list resources and their fields", run: runResources},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (env *cmdEnv) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.app.Stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	return nil
}

func isFlagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (env *cmdEnv) requireAPIKey() error {
	if env.cfg.APIKey() == "" {
		return ErrNoAPIKey
	}
	return nil
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// filterFlag collects repeated -filter field:value arguments in order.
type filterFlag struct {
	filters giantbomb.Filters
}

func (f *filterFlag) String() string {
	if f == nil {
		return ""
	}
	return giantbomb.BuildFilterString(f.filters)
}

func (f *filterFlag) Set(s string) error {
	field, value, ok := strings.Cut(s, ":")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return fmt.Errorf("filter %q must be field:value", s)
	}
	f.filters = append(f.filters, giantbomb.Filter{Field: field, Value: value})
	return nil
}

// maxConcurrentFetches bounds parallel fetches when several ids are given.
const maxConcurrentFetches = 4

func runFetch(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flagSet("fetch")
	resource := fs.String("resource", "game", "resource to fetch from")
	id := fs.String("id", "", "id or guid of the item, or a comma separated list")
	fields := fs.String("fields", "", "comma separated fields to return")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	ids := splitList(*id)
	if len(ids) == 0 {
		return fmt.Errorf("%w: -id is required", ErrUsage)
	}
	if err := env.requireAPIKey(); err != nil {
		return err
	}

	client, err := env.factory.Fetcher(*resource)
	if err != nil {
		return err
	}
	returnFields := splitList(*fields)

	if len(ids) == 1 {
		resp, err := client.Fetch(ctx, ids[0], returnFields...)
		if err != nil {
			return fmt.Errorf("fetch %s %s: %w", *resource, ids[0], err)
		}
		return env.enc(newResponseOutput(resp))
	}

	outputs := make([]responseOutput, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, itemID := range ids {
		g.Go(func() error {
			resp, err := client.Fetch(gctx, itemID, returnFields...)
			if err != nil {
				return fmt.Errorf("fetch %s %s: %w", *resource, itemID, err)
			}
			outputs[i] = newResponseOutput(resp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return env.enc(outputs)
}

func runSearch(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flagSet("search")
	resource := fs.String("resource", "games", "resource to search")
	var filters filterFlag
	fs.Var(&filters, "filter", "field:value filter, may be repeated")
	fields := fs.String("fields", "", "comma separated fields to return")
	sortBy := fs.String("sort", "", "field to sort by")
	asc := fs.Bool("asc", false, "sort ascending instead of descending")
	limit := fs.String("limit", "", "maximum number of results")
	offset := fs.String("offset", "", "number of results to skip")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := env.requireAPIKey(); err != nil {
		return err
	}

	raw := map[string]any{
		"sort_by":       *sortBy,
		"desc":          !*asc,
		"return_fields": *fields,
	}
	if isFlagPassed(fs, "limit") {
		raw["limit"] = *limit
	}
	if isFlagPassed(fs, "offset") {
		raw["offset"] = *offset
	}
	opts, err := giantbomb.DecodeSearchOptions(raw)
	if err != nil {
		return err
	}
	opts.Filters = filters.filters

	client, err := env.factory.Searcher(*resource)
	if err != nil {
		return err
	}
	resp, err := client.Search(ctx, opts)
	if err != nil {
		return fmt.Errorf("search %s: %w", *resource, err)
	}
	return env.enc(newResponseOutput(resp))
}

func runQuickSearch(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flagSet("quick-search")
	resource := fs.String("resource", "games", "resource to search")
	name := fs.String("name", "", "name to search for")
	platform := fs.String("platform", "", "platform id or short name, e.g. ps4")
	sortBy := fs.String("sort", "", "field to sort by")
	asc := fs.Bool("asc", false, "sort ascending instead of descending")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name is required", ErrUsage)
	}

	opts := giantbomb.QuickSearchOptions{SortBy: *sortBy, Order: giantbomb.SortDescending}
	if *asc {
		opts.Order = giantbomb.SortAscending
	}
	if *platform != "" {
		id, ok := giantbomb.LookupPlatform(*platform)
		if !ok {
			return fmt.Errorf("%w: unknown platform %q", ErrUsage, *platform)
		}
		opts.Platform = id
	}
	if err := env.requireAPIKey(); err != nil {
		return err
	}

	client, err := env.factory.Searcher(*resource)
	if err != nil {
		return err
	}
	resp, err := client.QuickSearch(ctx, *name, opts)
	if err != nil {
		return fmt.Errorf("quick search %s: %w", *resource, err)
	}
	return env.enc(newResponseOutput(resp))
}

type fieldInfo struct {
	Name   string `json:"name" yaml:"name"`
	Filter bool   `json:"filter" yaml:"filter"`
	Sort   bool   `json:"sort" yaml:"sort"`
}

type resourceInfo struct {
	Name       string      `json:"name" yaml:"name"`
	Operations []string    `json:"operations" yaml:"operations"`
	Fields     []fieldInfo `json:"fields" yaml:"fields"`
}

func runResources(_ context.Context, env *cmdEnv, args []string) error {
	fs := env.flagSet("resources")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	registry := env.app.Registry
	if registry == nil {
		registry = giantbomb.DefaultRegistry
	}

	infos := make([]resourceInfo, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		rc, err := env.factory.Build(name)
		if err != nil {
			return err
		}
		res := rc.Resource()
		info := resourceInfo{Name: name}
		if _, ok := rc.(giantbomb.Fetcher); ok {
			info.Operations = append(info.Operations, "fetch")
		}
		if _, ok := rc.(giantbomb.Searcher); ok {
			info.Operations = append(info.Operations, "search", "quick-search")
		}
		for _, field := range res.Schema.Names() {
			f := res.Schema[field]
			info.Fields = append(info.Fields, fieldInfo{Name: field, Filter: f.Filter, Sort: f.Sort})
		}
		infos = append(infos, info)
	}
	return env.enc(infos)
}

type responseOutput struct {
	Result          giantbomb.Record   `json:"result,omitempty" yaml:"result,omitempty"`
	URI             string             `json:"uri" yaml:"uri"`
	Results         []giantbomb.Record `json:"results" yaml:"results"`
	NumPageResults  int                `json:"number_of_page_results" yaml:"number_of_page_results"`
	NumTotalResults int                `json:"number_of_total_results" yaml:"number_of_total_results"`
}

func newResponseOutput(resp *giantbomb.Response) responseOutput {
	results := resp.Results
	if results == nil {
		results = []giantbomb.Record{}
	}
	return responseOutput{
		Result:          resp.Result,
		URI:             giantbomb.RedactAPIKey(resp.URI),
		Results:         results,
		NumPageResults:  resp.NumPageResults,
		NumTotalResults: resp.NumTotalResults,
	}
}

// IsUsageError reports whether err came from bad command line input.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}
