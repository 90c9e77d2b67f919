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

package command

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("relies on unix true/false")
	}

	executor := &RealExecutor{}

	t.Run("executes_successful_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "false")

		assert.Error(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}

func TestRealExecutor_RunWithOptions(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := &RealExecutor{}

	t.Run("passes_extra_env_to_child_only", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		opts := RunOptions{
			Stdout: &out,
			Env:    []string{"TANKBATTLE_TEST_VAR=dummy"},
		}
		err := executor.RunWithOptions(context.Background(), opts, "sh", "-c", "printf %s \"$TANKBATTLE_TEST_VAR\"")

		require.NoError(t, err)
		assert.Equal(t, "dummy", out.String())
	})

	t.Run("runs_in_working_directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var out bytes.Buffer
		opts := RunOptions{Stdout: &out, Dir: dir}
		err := executor.RunWithOptions(context.Background(), opts, "pwd")

		require.NoError(t, err)
		assert.Contains(t, out.String(), dir)
	})

	t.Run("reports_child_exit_code", func(t *testing.T) {
		t.Parallel()

		err := executor.RunWithOptions(context.Background(), RunOptions{}, "sh", "-c", "exit 3")

		require.Error(t, err)
		code, ok := ExitCode(err)
		assert.True(t, ok)
		assert.Equal(t, 3, code)
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("nil_error", func(t *testing.T) {
		t.Parallel()

		_, ok := ExitCode(nil)
		assert.False(t, ok)
	})

	t.Run("non_exit_error", func(t *testing.T) {
		t.Parallel()

		_, ok := ExitCode(errors.New("executable file not found"))
		assert.False(t, ok)
	})
}

func TestRealExecutor_LookPath(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	_, err := executor.LookPath("nonexistent_command_that_should_not_exist_12345")

	require.Error(t, err)
}

func TestExecutor_Interface(t *testing.T) {
	t.Parallel()

	// Verify that RealExecutor implements Executor
	var _ Executor = (*RealExecutor)(nil)
}
