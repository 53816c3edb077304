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
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "giantbomb"

// ConfigDir is where giantbomb.toml and auth.toml live. A "user" directory
// next to the executable takes priority for portable installs.
func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	if xdg.ConfigHome != "" {
		return filepath.Join(xdg.ConfigHome, appDir)
	}
	return filepath.Join(ExeDir(), appDir)
}

// LogDir is where the rotating log file is written.
func LogDir() string {
	if v, ok := HasUserDir(); ok {
		return filepath.Join(v, "logs")
	}
	if xdg.CacheHome != "" {
		return filepath.Join(xdg.CacheHome, appDir, "logs")
	}
	return filepath.Join(os.TempDir(), appDir, "logs")
}

// ExeDir returns the directory of the running executable, or the working
// directory if it can't be found.
func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}

// HasUserDir reports whether a "user" directory exists next to the
// executable.
func HasUserDir() (string, bool) {
	userDir := filepath.Join(ExeDir(), "user")
	info, err := os.Stat(userDir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return userDir, true
}
