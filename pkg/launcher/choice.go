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

package launcher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Choice is a single menu selection. One choice is handled per process.
type Choice int

const (
	ChoiceGame Choice = iota + 1
	ChoiceEditor
	ChoiceInstall
	ChoiceTests
	ChoiceExit
)

var ErrInvalidChoice = errors.New("invalid choice")

var choiceLabels = map[Choice]string{
	ChoiceGame:    "Run Game",
	ChoiceEditor:  "Run Map Editor",
	ChoiceInstall: "Install Dependencies",
	ChoiceTests:   "Run Tests",
	ChoiceExit:    "Exit",
}

func (c Choice) String() string {
	if label, ok := choiceLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// ParseChoice accepts exactly "1" to "5", ignoring surrounding whitespace.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(ChoiceGame) || n > int(ChoiceExit) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
	return Choice(n), nil
}

// ExitError carries the process exit code back to main.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
