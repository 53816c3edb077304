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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/giantbomb/internal/telemetry"
	"github.com/ZaparooProject/giantbomb/pkg/cli"
	"github.com/ZaparooProject/giantbomb/pkg/config"
	"github.com/ZaparooProject/giantbomb/pkg/giantbomb"
	"github.com/ZaparooProject/giantbomb/pkg/helpers"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp()
	app.Setup = func(cfg *config.Instance) error {
		var writers []io.Writer
		if cfg.DebugLogging() {
			writers = append(writers, helpers.ConsoleWriter(os.Stderr))
		}
		if err := helpers.InitLogging(helpers.LogDir(), cfg.DebugLogging(), writers...); err != nil {
			return fmt.Errorf("error initializing logging: %w", err)
		}
		log.Info().Str("version", giantbomb.Version).Str("config", cfg.Path()).Msg("giantbomb starting")

		return telemetry.Init(telemetry.Options{
			Enabled: cfg.ErrorReporting(),
			DSN:     cfg.SentryDSN(),
			Release: giantbomb.Version,
			Writer:  helpers.LogWriter(),
		})
	}
	defer telemetry.Close()

	err := app.Run(ctx, os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}
