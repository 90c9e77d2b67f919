/*
Tank Battle
Copyright (C) 2025 The Tank Battle Contributors.

This file is part of Tank Battle.

Tank Battle is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Tank Battle is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Tank Battle.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clawintheshell/tank-battle-game/pkg/maps"
	"github.com/spf13/afero"
)

const usage = `usage: tankmap <command> [flags] FILE

commands:
  new    create an empty grass map
  show   print a map and its tile counts
  check  verify a map has a player spawn and an enemy spawn
`

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return 1
	}

	var err error
	switch args[0] {
	case "new":
		err = runNew(args[1:], fs, stdout, stderr)
	case "show":
		err = runShow(args[1:], fs, stdout, stderr)
	case "check":
		err = runCheck(args[1:], fs, stdout, stderr)
	case "-h", "-help", "--help", "help":
		_, _ = fmt.Fprint(stdout, usage)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 1
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

type sizeFlags struct {
	width  *int
	height *int
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, sizeFlags) {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(stderr)
	return set, sizeFlags{
		width:  set.Int("w", maps.DefaultWidth, "map width in tiles"),
		height: set.Int("h", maps.DefaultHeight, "map height in tiles"),
	}
}

func fileArg(set *flag.FlagSet) (string, error) {
	if set.NArg() != 1 {
		return "", fmt.Errorf("%s requires exactly one FILE argument", set.Name())
	}
	return set.Arg(0), nil
}

func runNew(args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	set, size := newFlagSet("new", stderr)
	name := set.String("name", "Untitled", "map name written to the header")
	if err := set.Parse(args); err != nil {
		return err //nolint:wrapcheck // flag already printed the problem
	}
	path, err := fileArg(set)
	if err != nil {
		return err
	}

	m, err := maps.New(*size.width, *size.height)
	if err != nil {
		return err //nolint:wrapcheck // maps errors carry the size
	}
	if err := maps.Save(fs, path, m, *name); err != nil {
		return err //nolint:wrapcheck // maps errors carry the path
	}

	_, _ = fmt.Fprintf(stdout, "Map saved to %s\n", path)
	return nil
}

func runShow(args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	set, size := newFlagSet("show", stderr)
	if err := set.Parse(args); err != nil {
		return err //nolint:wrapcheck // flag already printed the problem
	}
	path, err := fileArg(set)
	if err != nil {
		return err
	}

	m, err := maps.Load(fs, path, *size.width, *size.height)
	if err != nil {
		return err //nolint:wrapcheck // maps errors carry the path
	}

	_, _ = fmt.Fprintf(stdout, "Map size: %dx%d\n", m.Width, m.Height)
	_, _ = fmt.Fprint(stdout, m.String())

	var counts []string
	for t := maps.Grass; t <= maps.PowerUpSpawn; t++ {
		if n := m.Count(t); n > 0 {
			counts = append(counts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	_, _ = fmt.Fprintln(stdout, strings.Join(counts, " "))
	return nil
}

func runCheck(args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	set, size := newFlagSet("check", stderr)
	if err := set.Parse(args); err != nil {
		return err //nolint:wrapcheck // flag already printed the problem
	}
	path, err := fileArg(set)
	if err != nil {
		return err
	}

	m, err := maps.Load(fs, path, *size.width, *size.height)
	if err != nil {
		return err //nolint:wrapcheck // maps errors carry the path
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stdout, "%s: ok\n", path)
	return nil
}
