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

package helpers

import (
	"errors"
	"os/exec"

	"github.com/clawintheshell/tank-battle-game/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockCommandExecutor creates a MockCommandExecutor that succeeds by default.
// All Run(), Output() and RunWithOptions() calls will return success unless
// explicitly overridden with On(). LookPath() reports every program as missing
// by default; use WithPrograms to make some of them resolvable.
//
// Override specific commands in tests that need to verify exact behavior:
//
//	cmd := helpers.NewMockCommandExecutor()
//	// Clear defaults first
//	cmd.ExpectedCalls = nil
//	// Set specific expectations (note: args is []string not variadic in mock)
//	cmd.On("Run", mock.Anything, "uv", []string{"sync"}).Return(nil)
func NewMockCommandExecutor() *mocks.MockCommandExecutor {
	cmd := &mocks.MockCommandExecutor{}
	// Match any command with any arguments - all succeed by default
	cmd.On("Run", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	cmd.On("Output", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return([]byte{}, nil).Maybe()
	cmd.On(
		"RunWithOptions", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything,
	).Return(nil).Maybe()
	return cmd
}

// WithPrograms registers LookPath results for the named programs, mapping
// each one to /usr/bin/<name>. Any other lookup fails with exec.ErrNotFound.
// Call it once per mock, after overriding any defaults.
func WithPrograms(cmd *mocks.MockCommandExecutor, names ...string) *mocks.MockCommandExecutor {
	for _, name := range names {
		cmd.On("LookPath", name).Return("/usr/bin/"+name, nil).Maybe()
	}
	cmd.On("LookPath", mock.AnythingOfType("string")).
		Return("", &exec.Error{Name: "", Err: exec.ErrNotFound}).Maybe()
	return cmd
}

// ErrCommandFailed is a generic failure for command expectations.
var ErrCommandFailed = errors.New("command failed")
