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


package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ManagedEnvDir reads ProjectDir, which takes its own RLock. With
// -tags=deadlock a recursive RLock panics, so this fails if the accessor
// regresses to holding the lock across the call.
func TestManagedEnvDir_NoRecursiveLock(t *testing.T) {
	t.Parallel()

	cfg := NewForTesting(Values{
		ProjectDir: "/game",
		Manager:    Manager{EnvDir: ".venv"},
	})

	done := make(chan string)
	go func() {
		done <- cfg.ManagedEnvDir()
	}()

	select {
	case dir := <-done:
		assert.Equal(t, "/game/.venv", dir)
	case <-time.After(2 * time.Second):
		t.Fatal("ManagedEnvDir() deadlocked")
	}
}

func TestAccessors_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg := NewForTesting(BaseDefaults)

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for range 100 {
				_ = cfg.AudioEnv()
				_ = cfg.InstallPackages()
				_ = cfg.ManagedEnvDir()
				if i == 0 {
					cfg.SetDebugLogging(false)
				}
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access deadlocked")
		}
	}
}
