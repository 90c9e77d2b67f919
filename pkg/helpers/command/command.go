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

// Package command provides an abstraction over exec.Command for testability.
package command

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// RunOptions configures how a blocking child process is attached to the
// launcher.
type RunOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory of the child. Empty means the current
	// directory.
	Dir string
	// Env entries are appended to the parent environment for the child only.
	// The parent process environment is never modified.
	Env []string
}

// Executor provides an abstraction over exec.Command for testability.
// This allows commands to be mocked in tests without executing real system commands.
type Executor interface {
	// Run executes a command and waits for it to complete.
	// Returns an error if the command fails to start or exits with non-zero status.
	Run(ctx context.Context, name string, args ...string) error

	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunWithOptions executes a command attached to the given stdio and
	// environment and waits for it to complete.
	RunWithOptions(ctx context.Context, opts RunOptions, name string, args ...string) error

	// LookPath searches for an executable named file in the directories
	// named by the PATH environment variable.
	LookPath(file string) (string, error)
}

// RealExecutor uses actual exec.Command to execute system commands.
// This is the production implementation used in normal operation.
type RealExecutor struct{}

// Run executes a system command using exec.CommandContext.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Output runs a command and returns its standard output.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// RunWithOptions runs a command with its own working directory, stdio and
// extra environment.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) RunWithOptions(
	ctx context.Context,
	opts RunOptions,
	name string,
	args ...string,
) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	return cmd.Run()
}

// LookPath wraps exec.LookPath.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExitCode returns the exit status carried by err when it came from a
// process that started and then exited non-zero. ok is false for any other
// error, including failures to start.
func ExitCode(err error) (code int, ok bool) {
	var exitErr *exec.ExitError
	if err == nil || !errors.As(err, &exitErr) {
		return 0, false
	}
	return exitErr.ExitCode(), true
}
