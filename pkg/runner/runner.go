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

// Package runner chooses how a child program is started (through the
// managed dependency tool's wrapper or straight through the interpreter) and
// hands the terminal over to it.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/clawintheshell/tank-battle-game/pkg/platforms"
	"github.com/rs/zerolog/log"
)

type Strategy int

const (
	StrategyDirect Strategy = iota
	StrategyManaged
)

func (s Strategy) String() string {
	switch s {
	case StrategyManaged:
		return "managed"
	case StrategyDirect:
		return "direct"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Select picks the managed wrapper when the profile has both the tool and
// the manifest, and the plain interpreter otherwise.
func Select(p platforms.Profile) Strategy {
	if p.UseManaged() {
		return StrategyManaged
	}
	return StrategyDirect
}

// Target is one of the external programs the launcher can start.
type Target string

const (
	TargetGame   Target = "game"
	TargetEditor Target = "editor"
	TargetTests  Target = "tests"
)

// Entry returns the configured entry point for t.
func (t Target) Entry(progs config.Programs) string {
	switch t {
	case TargetGame:
		return progs.Game
	case TargetEditor:
		return progs.Editor
	case TargetTests:
		return progs.Tests
	default:
		return ""
	}
}

// Invocation is a fully resolved child command line.
type Invocation struct {
	Target   Target
	Name     string
	Dir      string
	Args     []string
	Env      []string
	Strategy Strategy
}

// String renders the command line the way an operator would type it.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Name}, i.Args...), " ")
}

// Plan resolves the command line for target. The audio driver override is
// always part of the returned environment.
func Plan(cfg *config.Instance, p platforms.Profile, target Target) Invocation {
	inv := Invocation{
		Target:   target,
		Strategy: Select(p),
		Dir:      cfg.ProjectDir(),
		Env:      []string{cfg.AudioEnv()},
	}

	entry := target.Entry(cfg.Programs())
	switch inv.Strategy {
	case StrategyManaged:
		inv.Name = cfg.ManagerTool()
		inv.Args = []string{"run", cfg.Interpreter(), entry}
	default:
		inv.Name = cfg.Interpreter()
		inv.Args = []string{entry}
	}

	return inv
}

// Stdio is the terminal the child takes over.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Dispatch runs inv to completion. There is no timeout and no supervision;
// the returned error is whatever the child's run produced.
//
//nolint:gocritic // invocation passed by value
func Dispatch(ctx context.Context, cmd command.Executor, inv Invocation, stdio Stdio) error {
	log.Info().
		Str("target", string(inv.Target)).
		Stringer("strategy", inv.Strategy).
		Str("dir", inv.Dir).
		Strs("env", inv.Env).
		Msgf("dispatching: %s", inv)

	err := cmd.RunWithOptions(ctx, command.RunOptions{
		Stdin:  stdio.In,
		Stdout: stdio.Out,
		Stderr: stdio.Err,
		Dir:    inv.Dir,
		Env:    inv.Env,
	}, inv.Name, inv.Args...)
	if err != nil {
		log.Error().Err(err).Str("target", string(inv.Target)).Msg("child exited with error")
		return fmt.Errorf("%s: %w", inv.Target, err)
	}

	log.Info().Str("target", string(inv.Target)).Msg("child exited")
	return nil
}
