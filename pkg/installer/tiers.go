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

package installer

import (
	"context"
	"errors"
	"fmt"

	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/clawintheshell/tank-battle-game/pkg/platforms"
)

// Managed syncs the project's isolated environment with the managed
// dependency tool.
type Managed struct {
	Cmd      command.Executor
	Tool     string
	ToolPath string
	Dir      string
	// EnvDir is where the tool creates the isolated environment.
	EnvDir string
	Opts   command.RunOptions
}

func (m *Managed) Name() string { return m.Tool }

func (m *Managed) Available() bool { return m.ToolPath != "" }

func (m *Managed) Install(ctx context.Context) error {
	opts := m.Opts
	opts.Dir = m.Dir
	if err := m.Cmd.RunWithOptions(ctx, opts, m.Tool, "sync"); err != nil {
		return fmt.Errorf("%s sync: %w", m.Tool, err)
	}
	return nil
}

// Pip installs the named packages with the Python package manager.
type Pip struct {
	Cmd      command.Executor
	Pip      string
	Packages []string
	Opts     command.RunOptions
}

func (p *Pip) Name() string { return p.Pip }

func (p *Pip) Available() bool {
	_, err := p.Cmd.LookPath(p.Pip)
	return err == nil
}

func (p *Pip) Install(ctx context.Context) error {
	args := append([]string{"install"}, p.Packages...)
	if err := p.Cmd.RunWithOptions(ctx, p.Opts, p.Pip, args...); err != nil {
		return fmt.Errorf("%s install: %w", p.Pip, err)
	}
	return nil
}

// System installs distribution packages with the host package manager.
// It is the last resort and usually needs elevated privileges.
type System struct {
	Cmd     command.Executor
	Command []string
	Opts    command.RunOptions
}

func (s *System) Name() string {
	if len(s.Command) == 0 {
		return "system package manager"
	}
	return s.Command[0]
}

func (s *System) Available() bool {
	if len(s.Command) == 0 {
		return false
	}
	_, err := s.Cmd.LookPath(s.Command[0])
	return err == nil
}

func (s *System) Install(ctx context.Context) error {
	if len(s.Command) == 0 {
		return errors.New("no system install command configured")
	}
	if err := s.Cmd.RunWithOptions(ctx, s.Opts, s.Command[0], s.Command[1:]...); err != nil {
		return fmt.Errorf("system install: %w", err)
	}
	return nil
}

// Tiers builds the ordered install plan for a profile. With the managed
// tool present it is the only tier, so a failed sync never falls through to
// pip. Without it the plan is pip, then the system package manager.
func Tiers(
	cfg *config.Instance,
	p platforms.Profile,
	cmd command.Executor,
	opts command.RunOptions,
) []Strategy {
	if p.HasManagedTool() {
		return []Strategy{&Managed{
			Cmd:      cmd,
			Tool:     cfg.ManagerTool(),
			ToolPath: p.ManagedToolPath,
			Dir:      cfg.ProjectDir(),
			EnvDir:   cfg.ManagedEnvDir(),
			Opts:     opts,
		}}
	}

	return []Strategy{
		&Pip{
			Cmd:      cmd,
			Pip:      cfg.Pip(),
			Packages: cfg.InstallPackages(),
			Opts:     opts,
		},
		&System{
			Cmd:     cmd,
			Command: cfg.SystemInstallCommand(),
			Opts:    opts,
		},
	}
}
