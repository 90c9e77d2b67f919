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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// ProjectLayout describes a game checkout to lay down with CreateProject.
type ProjectLayout struct {
	Dir      string
	Manifest string
	Programs []string
}

// DefaultProjectLayout matches the default config: three entry points and a
// pyproject.toml manifest.
func DefaultProjectLayout(dir string) ProjectLayout {
	return ProjectLayout{
		Dir:      dir,
		Manifest: "pyproject.toml",
		Programs: []string{"game.py", "map_editor.py", "test_game.py"},
	}
}

// CreateProject writes the project directory, its entry points and, when
// Manifest is set, the dependency manifest.
func (h *FSHelper) CreateProject(layout ProjectLayout) error {
	if err := h.Fs.MkdirAll(layout.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	for _, prog := range layout.Programs {
		path := filepath.Join(layout.Dir, prog)
		if err := afero.WriteFile(h.Fs, path, []byte("# "+prog+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to write program %s: %w", prog, err)
		}
	}

	if layout.Manifest != "" {
		manifest := "[project]\nname = \"tank-battle\"\ndependencies = [\"pygame\"]\n"
		path := filepath.Join(layout.Dir, layout.Manifest)
		if err := afero.WriteFile(h.Fs, path, []byte(manifest), 0o600); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}
	return nil
}

// CreateMapFile writes a raw map file made of the given rows, creating any
// parent directories.
func (h *FSHelper) CreateMapFile(path string, rows ...string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create map directory: %w", err)
	}

	data := strings.Join(rows, "\n") + "\n"
	if err := afero.WriteFile(h.Fs, path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return nil
}

// FileExists checks if a file exists in the filesystem
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}

// ReadFile reads a file from the filesystem
func (h *FSHelper) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
