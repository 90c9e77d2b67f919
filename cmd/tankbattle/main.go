/*
Tank Battle
Copyright (C) 2025 The Tank Battle Contributors.

This file is part of Tank Battle.

Tank Battle is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Tank Battle is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Tank Battle.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clawintheshell/tank-battle-game/pkg/cli"
	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/clawintheshell/tank-battle-game/pkg/launcher"
	"github.com/clawintheshell/tank-battle-game/pkg/platforms"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := cli.Setup(helpers.DefaultDirs(), config.BaseDefaults, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", r)
			log.Error().Msgf("panic: %v", r)
			code = 1
		}
	}()

	ctx := context.Background()
	cmd := &command.RealExecutor{}

	profile := platforms.Detect(platforms.OptionsFromConfig(cfg, cmd))
	log.Info().
		Str("host", platforms.HostDescription(ctx)).
		Bool("headless", profile.Headless()).
		Bool("managed", profile.UseManaged()).
		Msg("environment detected")

	l := launcher.New(cfg, cmd, profile, os.Stdin, os.Stdout, os.Stderr)
	return cli.ExitCode(l.Run(ctx), os.Stderr)
}
