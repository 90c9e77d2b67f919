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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/clawintheshell/tank-battle-game/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const SchemaVersion = 1

type Values struct {
	ProjectDir   string   `toml:"project_dir,omitempty"`
	Python       Python   `toml:"python"`
	Programs     Programs `toml:"programs"`
	Manager      Manager  `toml:"manager"`
	Install      Install  `toml:"install"`
	Audio        Audio    `toml:"audio"`
	Display      Display  `toml:"display"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

type Python struct {
	Interpreter string `toml:"interpreter" validate:"required"`
	Pip         string `toml:"pip" validate:"required"`
}

// Programs are the entry points handed to the interpreter, relative to the
// project directory.
type Programs struct {
	Game   string `toml:"game" validate:"required"`
	Editor string `toml:"editor" validate:"required"`
	Tests  string `toml:"tests" validate:"required"`
}

// Manager describes the managed dependency tool that owns an isolated
// environment and a lockfile-pinned package set.
type Manager struct {
	Tool     string `toml:"tool" validate:"required"`
	Manifest string `toml:"manifest" validate:"required"`
	EnvDir   string `toml:"env_dir" validate:"required"`
}

type Install struct {
	Packages      []string `toml:"packages" validate:"required,min=1,dive,required"`
	SystemCommand []string `toml:"system_command,multiline" validate:"required,min=1,dive,required"`
}

type Audio struct {
	Driver string `toml:"driver" validate:"required"`
}

type Display struct {
	EnvVars []string `toml:"env_vars" validate:"required,min=1,dive,required"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Python: Python{
		Interpreter: "python3",
		Pip:         "pip3",
	},
	Programs: Programs{
		Game:   "game.py",
		Editor: "map_editor.py",
		Tests:  "test_game.py",
	},
	Manager: Manager{
		Tool:     "uv",
		Manifest: "pyproject.toml",
		EnvDir:   ".venv",
	},
	Install: Install{
		Packages: []string{"pygame", "pytest"},
		SystemCommand: []string{
			"sudo", "apt-get", "install", "-y", "python3-pygame", "python3-pytest",
		},
	},
	Audio: Audio{
		Driver: "dummy",
	},
	Display: Display{
		EnvVars: []string{"DISPLAY", "WAYLAND_DISPLAY"},
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Instance is the loaded launcher configuration. It is read once at startup
// and not modified while an action is running.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// clone returns a copy of v that shares no slices with it, so decoding a
// file on top of the copy can't write through to the defaults.
//
//nolint:gocritic // config struct copied for immutability
func clone(v Values) Values {
	v.Install.Packages = slices.Clone(v.Install.Packages)
	v.Install.SystemCommand = slices.Clone(v.Install.SystemCommand)
	v.Display.EnvVars = slices.Clone(v.Display.EnvVars)
	return v
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     clone(defaults),
		defaults: clone(defaults),
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Instance) Load() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := clone(c.defaults)
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := Validate(&newVals); err != nil {
		return err
	}

	c.mu.Lock()
	c.vals = newVals
	c.mu.Unlock()
	return nil
}

func (c *Instance) Save() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks required fields and list contents of a set of values.
func Validate(v *Values) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config value %s: failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Path returns the location of the config file on disk.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	c.vals.DebugLogging = enabled
	c.mu.Unlock()
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// ProjectDir returns the directory holding the game sources and manifest.
// An unset value resolves to the current working directory.
func (c *Instance) ProjectDir() string {
	c.mu.RLock()
	dir := c.vals.ProjectDir
	c.mu.RUnlock()
	if dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get working directory")
		return "."
	}
	return wd
}

func (c *Instance) Interpreter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Python.Interpreter
}

func (c *Instance) Pip() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Python.Pip
}

func (c *Instance) Programs() Programs {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Programs
}

func (c *Instance) ManagerTool() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Manager.Tool
}

func (c *Instance) ManagerManifest() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Manager.Manifest
}

// ManagedEnvDir returns the path of the isolated environment created by the
// managed tool inside the project directory.
func (c *Instance) ManagedEnvDir() string {
	c.mu.RLock()
	envDir := c.vals.Manager.EnvDir
	c.mu.RUnlock()
	if filepath.IsAbs(envDir) {
		return envDir
	}
	return filepath.Join(c.ProjectDir(), envDir)
}

func (c *Instance) InstallPackages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Install.Packages)
}

func (c *Instance) SystemInstallCommand() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Install.SystemCommand)
}

func (c *Instance) AudioDriver() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Audio.Driver
}

// AudioEnv is the environment entry that forces the child's audio driver.
func (c *Instance) AudioEnv() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return AudioEnv + "=" + c.vals.Audio.Driver
}

func (c *Instance) DisplayEnvVars() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Display.EnvVars)
}

// NewForTesting builds an Instance from values without touching disk.
//
//nolint:gocritic // config struct copied for immutability
func NewForTesting(vals Values) *Instance {
	return &Instance{
		vals:     clone(vals),
		defaults: clone(vals),
	}
}
