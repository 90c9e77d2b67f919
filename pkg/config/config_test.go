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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WritesDefaultsOnFirstRun(t *testing.T) {
	t.Setenv(CfgEnv, "")

	tempDir := t.TempDir()

	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	cfgPath := filepath.Join(tempDir, CfgFile)
	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config_schema = 1")
	assert.Contains(t, string(data), "[manager]")

	assert.Equal(t, "python3", cfg.Interpreter())
	assert.Equal(t, "uv", cfg.ManagerTool())
	assert.Equal(t, "pyproject.toml", cfg.ManagerManifest())
	assert.Equal(t, []string{"pygame", "pytest"}, cfg.InstallPackages())
}

func TestNewConfig_EnvOverridesPath(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, "custom", "launcher.toml")
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(filepath.Join(tempDir, "unused"), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)
	assert.NoDirExists(t, filepath.Join(tempDir, "unused"))
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)

	minimalConfig := fmt.Sprintf("config_schema = %d\n", SchemaVersion)
	err := os.WriteFile(cfgPath, []byte(minimalConfig), 0o600)
	require.NoError(t, err)

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     clone(BaseDefaults),
		defaults: clone(BaseDefaults),
	}

	err = cfg.Load()
	require.NoError(t, err)

	assert.Equal(t, "dummy", cfg.AudioDriver())
	assert.Equal(t, []string{"DISPLAY", "WAYLAND_DISPLAY"}, cfg.DisplayEnvVars())
	assert.Equal(t, "game.py", cfg.Programs().Game)
	assert.False(t, cfg.DebugLogging())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)

	configContent := fmt.Sprintf(`config_schema = %d
debug_logging = true
project_dir = "/opt/tank-battle"

[python]
interpreter = "python3.12"
pip = "pip"

[manager]
tool = "poetry"
manifest = "poetry.lock"
env_dir = "/opt/venv"

[install]
packages = ["pygame"]
system_command = ["apk", "add", "py3-pygame"]

[audio]
driver = "disk"
`, SchemaVersion)

	err := os.WriteFile(cfgPath, []byte(configContent), 0o600)
	require.NoError(t, err)

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     clone(BaseDefaults),
		defaults: clone(BaseDefaults),
	}

	err = cfg.Load()
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "/opt/tank-battle", cfg.ProjectDir())
	assert.Equal(t, "python3.12", cfg.Interpreter())
	assert.Equal(t, "pip", cfg.Pip())
	assert.Equal(t, "poetry", cfg.ManagerTool())
	assert.Equal(t, "/opt/venv", cfg.ManagedEnvDir())
	assert.Equal(t, []string{"pygame"}, cfg.InstallPackages())
	assert.Equal(t, []string{"apk", "add", "py3-pygame"}, cfg.SystemInstallCommand())
	assert.Equal(t, "SDL_AUDIODRIVER=disk", cfg.AudioEnv())

	// the shared defaults must survive an override
	assert.Equal(t, []string{"pygame", "pytest"}, BaseDefaults.Install.Packages)
	assert.Equal(t, "sudo", BaseDefaults.Install.SystemCommand[0])
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)
	err := os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600)
	require.NoError(t, err)

	cfg := &Instance{cfgPath: cfgPath, vals: clone(BaseDefaults), defaults: clone(BaseDefaults)}

	err = cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "empty interpreter",
			content: "[python]\ninterpreter = \"\"\npip = \"pip3\"\n",
			field:   "Interpreter",
		},
		{
			name:    "empty package list",
			content: "[install]\npackages = []\n",
			field:   "Packages",
		},
		{
			name:    "blank display var",
			content: "[display]\nenv_vars = [\"\"]\n",
			field:   "EnvVars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgPath := filepath.Join(t.TempDir(), CfgFile)
			content := fmt.Sprintf("config_schema = %d\n%s", SchemaVersion, tt.content)
			require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

			cfg := &Instance{cfgPath: cfgPath, vals: clone(BaseDefaults), defaults: clone(BaseDefaults)}

			err := cfg.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	require.Error(t, cfg.Load())
	require.Error(t, cfg.Save())
}

func TestValidate_BaseDefaults(t *testing.T) {
	t.Parallel()

	vals := clone(BaseDefaults)
	assert.NoError(t, Validate(&vals))
}

func TestManagedEnvDir_RelativeToProject(t *testing.T) {
	t.Parallel()

	vals := clone(BaseDefaults)
	vals.ProjectDir = "/srv/tank"
	cfg := NewForTesting(vals)

	assert.Equal(t, filepath.Join("/srv/tank", ".venv"), cfg.ManagedEnvDir())
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	cfg := NewForTesting(BaseDefaults)

	pkgs := cfg.InstallPackages()
	pkgs[0] = "changed"

	assert.Equal(t, "pygame", cfg.InstallPackages()[0])
}
