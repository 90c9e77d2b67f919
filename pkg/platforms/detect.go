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

package platforms

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/afero"
)

// DetectOptions holds every input Detect reads. Nothing else in the process
// environment is consulted.
type DetectOptions struct {
	Fs          afero.Fs
	Getenv      func(string) string
	LookPath    func(string) (string, error)
	GOOS        string
	ProjectDir  string
	Manifest    string
	ManagedTool string
	DisplayVars []string
}

// OptionsFromConfig builds detection options for the real host.
func OptionsFromConfig(cfg *config.Instance, cmd command.Executor) DetectOptions {
	return DetectOptions{
		Fs:          afero.NewOsFs(),
		Getenv:      os.Getenv,
		LookPath:    cmd.LookPath,
		GOOS:        runtime.GOOS,
		ProjectDir:  cfg.ProjectDir(),
		Manifest:    cfg.ManagerManifest(),
		ManagedTool: cfg.ManagerTool(),
		DisplayVars: cfg.DisplayEnvVars(),
	}
}

// Detect computes the environment profile. It has no side effects.
//
//nolint:gocritic // options struct passed by value
func Detect(opts DetectOptions) Profile {
	p := Profile{
		Host: HostFromGOOS(opts.GOOS),
	}

	for _, name := range opts.DisplayVars {
		if opts.Getenv != nil && opts.Getenv(name) != "" {
			p.DisplayPresent = true
			p.DisplayVar = name
			break
		}
	}

	if opts.Fs != nil && opts.Manifest != "" {
		ok, err := afero.Exists(opts.Fs, filepath.Join(opts.ProjectDir, opts.Manifest))
		if err != nil {
			log.Debug().Err(err).Str("manifest", opts.Manifest).Msg("failed to stat manifest")
		}
		p.ManifestPresent = ok
	}

	if opts.LookPath != nil && opts.ManagedTool != "" {
		path, err := opts.LookPath(opts.ManagedTool)
		if err == nil {
			p.ManagedToolPath = path
		}
	}

	return p
}

// HostDescription returns a short human readable description of the host
// OS for the startup log line.
func HostDescription(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read host info")
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	return fmt.Sprintf("%s %s (%s, %s)", info.Platform, info.PlatformVersion, info.OS, info.KernelArch)
}
