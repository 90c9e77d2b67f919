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

// Package maps reads and writes the plain-text map files shared by the game
// and the map editor. Each map row is one line; each character is a tile.
package maps

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	DefaultWidth  = 20
	DefaultHeight = 15
)

var (
	ErrMapNotFound  = errors.New("map file not found")
	ErrInvalidSize  = errors.New("invalid map size")
	ErrNoPlayer     = errors.New("map has no player spawn")
	ErrNoEnemySpawn = errors.New("map has no enemy spawn")
)

type Tile int

const (
	Grass Tile = iota
	Brick
	Steel
	Water
	Forest
	Ice
	PlayerSpawn
	EnemySpawn
	PowerUpSpawn
)

var tileChars = [...]byte{
	Grass:        '0',
	Brick:        '1',
	Steel:        '2',
	Water:        '3',
	Forest:       '4',
	Ice:          '5',
	PlayerSpawn:  'P',
	EnemySpawn:   'E',
	PowerUpSpawn: 'U',
}

var tileNames = [...]string{
	Grass:        "Grass",
	Brick:        "Brick",
	Steel:        "Steel",
	Water:        "Water",
	Forest:       "Forest",
	Ice:          "Ice",
	PlayerSpawn:  "PlayerSpawn",
	EnemySpawn:   "EnemySpawn",
	PowerUpSpawn: "PowerUpSpawn",
}

func (t Tile) valid() bool {
	return t >= Grass && t <= PowerUpSpawn
}

// Char returns the file character for t. Unknown tiles are written as grass.
func (t Tile) Char() byte {
	if !t.valid() {
		return tileChars[Grass]
	}
	return tileChars[t]
}

func (t Tile) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return tileNames[t]
}

// TileFromChar maps a file character to a tile. Unknown characters are
// grass.
func TileFromChar(c byte) Tile {
	for t, tc := range tileChars {
		if tc == c {
			return Tile(t)
		}
	}
	return Grass
}

// Map is a rectangular grid of tiles, indexed [y][x].
type Map struct {
	Tiles  [][]Tile
	Width  int
	Height int
}

// New returns a map of the given size filled with grass.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Map{Tiles: tiles, Width: width, Height: height}, nil
}

func (m *Map) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Grass
	}
	return m.Tiles[y][x]
}

func (m *Map) Set(x, y int, t Tile) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Tiles[y][x] = t
}

// String renders the map rows without a header.
func (m *Map) String() string {
	var sb strings.Builder
	for y := range m.Height {
		for x := range m.Width {
			sb.WriteByte(m.Tiles[y][x].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Count returns how many cells hold tile t.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, row := range m.Tiles {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}

// Validate checks the map is playable: it needs a player spawn and at least
// one enemy spawn.
func (m *Map) Validate() error {
	var errs []error
	if m.Count(PlayerSpawn) == 0 {
		errs = append(errs, ErrNoPlayer)
	}
	if m.Count(EnemySpawn) == 0 {
		errs = append(errs, ErrNoEnemySpawn)
	}
	return errors.Join(errs...)
}

// Parse reads map rows from data. Blank lines and lines starting with '#'
// are skipped. Rows and columns are padded with grass or truncated to fit
// width x height.
func Parse(data []byte, width, height int) (*Map, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	if len(rows) != height {
		log.Warn().Msgf("map height %d doesn't match expected %d", len(rows), height)
	}

	for y := 0; y < height && y < len(rows); y++ {
		row := rows[y]
		for x := 0; x < width && x < len(row); x++ {
			m.Tiles[y][x] = TileFromChar(row[x])
		}
	}

	return m, nil
}

// Load reads a map file from fs.
func Load(fs afero.Fs, path string, width, height int) (*Map, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat map %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}

	m, err := Parse(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("error loading map %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("map loaded")
	return m, nil
}

// Marshal renders m with the standard file header.
func Marshal(m *Map, name string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Tank Battle Map: %s\n", name)
	fmt.Fprintf(&buf, "# Size: %dx%d\n", m.Width, m.Height)
	buf.WriteString("# Format: Each character represents a tile\n")
	buf.WriteString("# 0=Grass, 1=Brick, 2=Steel, 3=Water, 4=Forest, 5=Ice\n")
	buf.WriteString("# P=PlayerSpawn, E=EnemySpawn, U=PowerUpSpawn\n")
	buf.WriteString("#\n")
	buf.WriteString(m.String())
	return buf.Bytes()
}

// Save writes m to path on fs, creating parent directories as needed.
func Save(fs afero.Fs, path string, m *Map, name string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create map directory: %w", err)
		}
	}

	if err := afero.WriteFile(fs, path, Marshal(m, name), 0o644); err != nil {
		return fmt.Errorf("error saving map %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("map saved")
	return nil
}
