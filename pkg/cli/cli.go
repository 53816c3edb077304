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

// Package cli implements the giantbomb command line tool.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/giantbomb/pkg/config"
	"github.com/ZaparooProject/giantbomb/pkg/giantbomb"
	"github.com/ZaparooProject/giantbomb/pkg/helpers"
	"github.com/ZaparooProject/giantbomb/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	ErrUsage    = errors.New("usage error")
	ErrNoAPIKey = errors.New("no api key configured, set " + config.APIKeyEnv + " or use -api-key")
)

// App holds everything a command needs from the outside world.
type App struct {
	Fs       afero.Fs
	Stdout   io.Writer
	Stderr   io.Writer
	HTTP     giantbomb.Doer
	Registry *giantbomb.Registry
	// Setup runs once the config is loaded, before any command.
	Setup     func(cfg *config.Instance) error
	ConfigDir string
}

// NewApp returns an App wired to the real filesystem and terminal.
func NewApp() *App {
	return &App{
		Fs:        afero.NewOsFs(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Registry:  giantbomb.DefaultRegistry,
		ConfigDir: helpers.ConfigDir(),
	}
}

type globalFlags struct {
	configDir *string
	apiKey    *string
	format    *string
	output    *string
	debug     *bool
	version   *bool
}

func (a *App) setupGlobalFlags(fs *flag.FlagSet) *globalFlags {
	return &globalFlags{
		configDir: fs.String(
			"config",
			a.ConfigDir,
			"directory containing "+config.CfgFile,
		),
		apiKey: fs.String(
			"api-key",
			"",
			"giant bomb api key",
		),
		format: fs.String(
			"format",
			"",
			"response format requested from the api, only json is decoded",
		),
		output: fs.String(
			"output",
			outputJSON,
			"output encoding (json or yaml)",
		),
		debug: fs.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func (a *App) usage(fs *flag.FlagSet) func() {
	return func() {
		_, _ = fmt.Fprintf(a.Stderr, "Usage: giantbomb [flags] <command> [command flags]\n\n")
		_, _ = fmt.Fprintf(a.Stderr, "Commands:\n")
		for _, c := range commands {
			_, _ = fmt.Fprintf(a.Stderr, "  %-14s %s\n", c.name, c.help)
		}
		_, _ = fmt.Fprintf(a.Stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
}

// Run parses args (without the program name) and runs one command.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("giantbomb", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	flags := a.setupGlobalFlags(fs)
	fs.Usage = a.usage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if *flags.version {
		_, _ = fmt.Fprintf(a.Stdout, "giantbomb v%s\n", giantbomb.Version)
		return nil
	}

	enc, err := newEncoder(*flags.output, a.Stdout)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	cmd, ok := lookupCommand(fs.Arg(0))
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, fs.Arg(0))
	}

	cfg, err := config.NewConfig(a.Fs, *flags.configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if *flags.apiKey != "" {
		cfg.SetAPIKey(*flags.apiKey)
	}
	if *flags.format != "" {
		if err := cfg.SetFormat(*flags.format); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}
	if *flags.debug {
		cfg.SetDebugLogging(true)
	}

	if a.Setup != nil {
		if err := a.Setup(cfg); err != nil {
			return err
		}
	}

	env := &cmdEnv{
		app:     a,
		cfg:     cfg,
		enc:     enc,
		factory: a.factory(cfg),
	}

	log.Debug().Str("command", cmd.name).Msg("running command")
	return cmd.run(ctx, env, fs.Args()[1:])
}

func (a *App) factory(cfg *config.Instance) *giantbomb.Factory {
	var doer giantbomb.Doer = a.HTTP
	if doer == nil {
		doer = httpclient.NewClientFromConfig(cfg)
	}
	registry := a.Registry
	if registry == nil {
		registry = giantbomb.DefaultRegistry
	}
	return giantbomb.NewFactory(
		cfg.APIKey(),
		giantbomb.WithHTTPClient(doer),
		giantbomb.WithBaseURL(cfg.BaseURL()),
		giantbomb.WithFormat(cfg.Format()),
	).WithRegistry(registry)
}
