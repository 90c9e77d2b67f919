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

// Package launcher implements the interactive launcher: it shows the menu,
// reads one selection and carries out exactly that action.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clawintheshell/tank-battle-game/pkg/config"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers"
	"github.com/clawintheshell/tank-battle-game/pkg/helpers/command"
	"github.com/clawintheshell/tank-battle-game/pkg/installer"
	"github.com/clawintheshell/tank-battle-game/pkg/platforms"
	"github.com/clawintheshell/tank-battle-game/pkg/runner"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const banner = "========================================"

type Launcher struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Config  *config.Instance
	Cmd     command.Executor
	reader  *bufio.Reader
	logger  zerolog.Logger
	Profile platforms.Profile
}

// New returns a launcher bound to the given terminal. The profile must
// already be detected; the launcher never re-inspects the environment.
//
//nolint:gocritic // profile is an immutable snapshot
func New(
	cfg *config.Instance,
	cmd command.Executor,
	profile platforms.Profile,
	in io.Reader,
	out, errOut io.Writer,
) *Launcher {
	session := uuid.NewString()
	return &Launcher{
		In:      in,
		Out:     out,
		Err:     errOut,
		Config:  cfg,
		Cmd:     cmd,
		Profile: profile,
		reader:  bufio.NewReader(in),
		logger:  log.With().Str("session", session).Logger(),
	}
}

func (l *Launcher) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(l.Out, format, a...)
}

func (l *Launcher) println(a ...any) {
	_, _ = fmt.Fprintln(l.Out, a...)
}

func (l *Launcher) printMenu() {
	l.println(banner)
	l.println("  Tank Battle Game Launcher")
	l.println(banner)
	l.println()
	for c := ChoiceGame; c <= ChoiceExit; c++ {
		l.printf("%d. %s\n", int(c), c)
	}
	l.println()
	l.printf("Enter your choice (%d-%d): ", int(ChoiceGame), int(ChoiceExit))
}

// Run shows the menu, reads one selection and performs it. A nil error
// means exit status 0. Invalid selections return an *ExitError with code 1.
// Errors from a dispatched child are returned as-is so the caller can pass
// the child's exit status through.
func (l *Launcher) Run(ctx context.Context) error {
	l.logger.Info().
		Str("host", string(l.Profile.Host)).
		Bool("display", l.Profile.DisplayPresent).
		Bool("manifest", l.Profile.ManifestPresent).
		Str("managed_tool", l.Profile.ManagedToolPath).
		Msg("launcher started")

	l.printMenu()

	input, err := helpers.ReadLine(l.reader)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	choice, err := ParseChoice(input)
	if err != nil {
		l.println()
		l.printf("Invalid choice: %s. Please run the launcher again and pick 1-5.\n", input)
		l.logger.Warn().Str("input", input).Msg("invalid menu choice")
		return &ExitError{Code: 1, Err: err}
	}

	l.logger.Info().Stringer("choice", choice).Msg("menu choice")

	switch choice {
	case ChoiceGame:
		return l.launch(ctx, runner.TargetGame, "Starting Tank Battle Game...", true)
	case ChoiceEditor:
		return l.launch(ctx, runner.TargetEditor, "Starting Map Editor...", true)
	case ChoiceInstall:
		return l.install(ctx)
	case ChoiceTests:
		return l.launch(ctx, runner.TargetTests, "Running tests...", false)
	case ChoiceExit:
		l.println("Exiting...")
		return nil
	default:
		return &ExitError{Code: 1, Err: ErrInvalidChoice}
	}
}

// confirmHeadless warns that input won't reach the child and asks whether to
// go on. It returns true without asking when a display is available.
func (l *Launcher) confirmHeadless() bool {
	if !l.Profile.Headless() {
		return true
	}

	vars := strings.Join(l.Config.DisplayEnvVars(), "/")
	l.println()
	l.printf("⚠️  WARNING: No display detected (%s not set).\n", vars)
	l.println("⚠️  Keyboard and mouse input will not work in this environment.")
	l.println("⚠️  Run the launcher from a desktop session or enable X forwarding.")
	l.logger.Warn().Msg("no display detected")

	if !helpers.ConfirmPrompt(l.reader, l.Out, "Continue anyway?") {
		l.println("Launch cancelled.")
		l.logger.Info().Msg("headless launch declined")
		return false
	}
	return true
}

func (l *Launcher) launch(ctx context.Context, target runner.Target, intro string, needsDisplay bool) error {
	if needsDisplay && !l.confirmHeadless() {
		return nil
	}

	inv := runner.Plan(l.Config, l.Profile, target)

	l.println()
	l.println(intro)
	if inv.Strategy == runner.StrategyManaged {
		l.printf("Using %s (%s found)\n", l.Config.ManagerTool(), l.Config.ManagerManifest())
	} else {
		l.printf("Using %s\n", l.Config.Interpreter())
	}

	l.logger.Info().Str("command", inv.String()).Msg("launching")

	return runner.Dispatch(ctx, l.Cmd, inv, runner.Stdio{
		In:  l.In,
		Out: l.Out,
		Err: l.Err,
	})
}

func (l *Launcher) install(ctx context.Context) error {
	opts := command.RunOptions{
		Stdin:  l.In,
		Stdout: l.Out,
		Stderr: l.Err,
	}
	tiers := installer.Tiers(l.Config, l.Profile, l.Cmd, opts)

	l.println()
	if !l.Profile.HasManagedTool() {
		l.printf("%s not found. Falling back to %s.\n", l.Config.ManagerTool(), l.Config.Pip())
	}

	seq := &installer.Sequence{
		Strategies: tiers,
		OnAttempt: func(s installer.Strategy) {
			l.printf("Installing dependencies with %s...\n", s.Name())
		},
		OnReport: func(r installer.Report) {
			switch r.Outcome {
			case installer.OutcomeSkipped:
				l.printf("%s not found, skipping.\n", r.Strategy)
			case installer.OutcomeFailed:
				l.printf("❌ Installation with %s failed.\n", r.Strategy)
			case installer.OutcomeSucceeded:
				l.println("✅ Dependencies installed successfully!")
			}
		},
	}

	winner, err := seq.Run(ctx)
	if err != nil {
		l.logger.Error().Err(err).Msg("dependency install failed")
		l.printf("❌ Could not install dependencies. Install %s manually and try again.\n",
			strings.Join(l.Config.InstallPackages(), " "))
		return &ExitError{Code: 1, Err: err}
	}

	if m, ok := winner.(*installer.Managed); ok {
		l.printf("Virtual environment created at: %s\n", m.EnvDir)
	}
	return nil
}
