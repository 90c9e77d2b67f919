// Tank Battle
// Copyright (c) 2025 The Tank Battle Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Tank Battle.
//
// Tank Battle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tank Battle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tank Battle.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/clawintheshell/tank-battle-game/pkg/launcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the user directories, logging and config. Returns a user
// config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	dirs helpers.Dirs,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	// Ensure directories exist before logging initialization
	err := helpers.EnsureDirectories(dirs)
	if err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	err = helpers.InitLogging(dirs.LogDir, writers)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(dirs.ConfigDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("config", cfg.Path()).
		Msg("launcher setup complete")

	return cfg, nil
}

// ExitCode maps the result of a launcher run to a process exit status.
// Launcher exit errors keep their code, a child that exited non-zero hands
// its own status through, and anything else is reported on w as status 1.
func ExitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if code, ok := command.ExitCode(err); ok {
		log.Info().Int("code", code).Msg("passing through child exit status")
		if code < 0 {
			// killed by a signal
			return 1
		}
		return code
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
	return 1
}
