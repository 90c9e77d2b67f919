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
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyParseChoiceOnlyDigitsOneToFive verifies that the only accepted
// selections are the five menu digits.
func TestPropertyParseChoiceOnlyDigitsOneToFive(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")

		choice, err := ParseChoice(input)

		trimmed := strings.TrimSpace(input)
		n, convErr := strconv.Atoi(trimmed)
		valid := len(trimmed) == 1 && convErr == nil && n >= 1 && n <= 5
		if valid {
			if err != nil || int(choice) != n {
				t.Fatalf("ParseChoice(%q) = %v, %v; want %d", input, choice, err, n)
			}
			return
		}
		if !errors.Is(err, ErrInvalidChoice) {
			t.Fatalf("ParseChoice(%q) should be invalid, got %v", input, choice)
		}
	})
}

// TestPropertyInvalidInputExitsOne verifies any non-menu line exits with
// status 1 and starts nothing.
func TestPropertyInvalidInputExitsOne(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringMatching(`[0-9a-z ]{0,4}`).
			Filter(func(s string) bool {
				_, err := ParseChoice(s)
				return err != nil
			}).
			Draw(rt, "input")

		h := newHarness(t, desktopLinux, input+"\n")
		err := h.l.Run(context.Background())

		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != 1 {
			rt.Fatalf("input %q: want exit 1, got %v", input, err)
		}
		if len(h.cmd.Calls) != 0 {
			rt.Fatalf("input %q: unexpected command calls %v", input, h.cmd.Calls)
		}
	})
}
