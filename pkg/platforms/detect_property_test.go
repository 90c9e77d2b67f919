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

package platforms

import (
	"testing"

	"github.com/spf13/afero"
	"pgregory.net/rapid"
)

// TestPropertyHeadlessOnlyWithoutDisplay verifies Headless is exactly
// "no display variable set and host does not own its display".
func TestPropertyHeadlessOnlyWithoutDisplay(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		goos := rapid.SampledFrom([]string{"linux", "darwin", "windows", "freebsd"}).Draw(t, "goos")
		display := rapid.StringMatching(`(:[0-9])?`).Draw(t, "display")
		wayland := rapid.StringMatching(`(wayland-[0-9])?`).Draw(t, "wayland")

		p := Detect(DetectOptions{
			Fs:          afero.NewMemMapFs(),
			Getenv:      envFrom(map[string]string{"DISPLAY": display, "WAYLAND_DISPLAY": wayland}),
			GOOS:        goos,
			DisplayVars: []string{"DISPLAY", "WAYLAND_DISPLAY"},
		})

		hasDisplay := display != "" || wayland != ""
		if p.DisplayPresent != hasDisplay {
			t.Fatalf("DisplayPresent=%v, want %v", p.DisplayPresent, hasDisplay)
		}
		wantHeadless := !hasDisplay && goos != "darwin" && goos != "windows"
		if p.Headless() != wantHeadless {
			t.Fatalf("Headless()=%v, want %v for goos=%q", p.Headless(), wantHeadless, goos)
		}
	})
}

// TestPropertyUseManagedNeedsBoth verifies the managed wrapper is chosen
// only when both the tool and the manifest are present.
func TestPropertyUseManagedNeedsBoth(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		tool := rapid.Bool().Draw(t, "tool")
		manifest := rapid.Bool().Draw(t, "manifest")

		fs := afero.NewMemMapFs()
		if manifest {
			if err := afero.WriteFile(fs, "/p/pyproject.toml", nil, 0o644); err != nil {
				t.Fatal(err)
			}
		}
		var found []string
		if tool {
			found = append(found, "uv")
		}

		p := Detect(DetectOptions{
			Fs:          fs,
			LookPath:    lookPathFrom(found...),
			GOOS:        "linux",
			ProjectDir:  "/p",
			Manifest:    "pyproject.toml",
			ManagedTool: "uv",
		})

		if p.UseManaged() != (tool && manifest) {
			t.Fatalf("UseManaged()=%v with tool=%v manifest=%v", p.UseManaged(), tool, manifest)
		}
	})
}
