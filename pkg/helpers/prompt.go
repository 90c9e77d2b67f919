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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads a single line from r with surrounding whitespace removed.
// A final line without a newline is returned as-is; io.EOF is only returned
// when nothing at all could be read.
func ReadLine(r *bufio.Reader) (string, error) {
	s, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// IsAffirmative reports whether an answer means yes. Only "y" and "yes" count,
// in any case.
func IsAffirmative(answer string) bool {
	s := strings.ToLower(strings.TrimSpace(answer))
	return s == "y" || s == "yes"
}

// ConfirmPrompt writes label to out and reads one answer from r. Anything
// other than an affirmative answer, including EOF, is a no.
func ConfirmPrompt(r *bufio.Reader, out io.Writer, label string) bool {
	_, _ = fmt.Fprintf(out, "%s (y/N): ", label)
	s, err := ReadLine(r)
	if err != nil {
		_, _ = fmt.Fprintln(out)
		return false
	}
	return IsAffirmative(s)
}
