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

// Package platforms detects what the host can do before anything is launched:
// whether a display is attached, which OS family it is, and whether the
// managed dependency tool and its manifest are available.
package platforms

import (
	"github.com/clawintheshell/tank-battle-game/pkg/platforms/ids"
)

// HostKind is the operating system family the launcher is running on.
type HostKind string

const (
	HostLinux   HostKind = ids.Linux
	HostMac     HostKind = ids.Mac
	HostWindows HostKind = ids.Windows
	HostOther   HostKind = ids.Other
)

// HostFromGOOS maps a runtime.GOOS value to a HostKind.
func HostFromGOOS(goos string) HostKind {
	switch goos {
	case "linux":
		return HostLinux
	case "darwin":
		return HostMac
	case "windows":
		return HostWindows
	default:
		return HostOther
	}
}

// ManagesDisplay is true for desktop systems whose window server is always
// present even when no display variable is exported.
func (h HostKind) ManagesDisplay() bool {
	return h == HostMac || h == HostWindows
}

// Profile is the environment capability snapshot taken once at startup and
// passed to every dispatch decision.
type Profile struct {
	Host HostKind
	// DisplayVar names the variable that signalled a display, if any.
	DisplayVar string
	// ManagedToolPath is the resolved path of the managed dependency tool,
	// empty when it is not installed.
	ManagedToolPath string
	DisplayPresent  bool
	ManifestPresent bool
}

// HasManagedTool reports whether the managed dependency tool was found on
// the search path.
func (p Profile) HasManagedTool() bool {
	return p.ManagedToolPath != ""
}

// UseManaged reports whether children should run through the managed
// tool's wrapper. It needs both the tool and the project manifest.
func (p Profile) UseManaged() bool {
	return p.HasManagedTool() && p.ManifestPresent
}

// Headless reports whether keyboard and mouse input can't reach a child
// window.
func (p Profile) Headless() bool {
	return !p.DisplayPresent && !p.Host.ManagesDisplay()
}
