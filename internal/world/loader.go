package world

import (
	"encoding/json"
	"fmt"
)

// LevelLayout is the JSON-serializable definition of a dungeon level.
// Tiles are written top row first; markers for entities sit on floor.
type LevelLayout struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

// Spawn is an entity marker found in a layout, in grid coordinates.
type Spawn struct {
	Marker rune
	X, Y   int
}

// LoadLevelLayout parses a LevelLayout from JSON bytes.
func LoadLevelLayout(data []byte) (*LevelLayout, error) {
	var layout LevelLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse level layout: %w", err)
	}
	if len(layout.Tiles) != layout.Height {
		return nil, fmt.Errorf("tile rows (%d) != declared height (%d)", len(layout.Tiles), layout.Height)
	}
	if _, err := layout.PlayerSpawn(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// ToTileGrid converts a LevelLayout into a TileGrid. Row 0 of the layout
// becomes the top row (y = Height-1).
func (l *LevelLayout) ToTileGrid() *TileGrid {
	grid := NewTileGrid(l.Width, l.Height)
	l.each(func(x, y int, ch rune) {
		grid.Set(x, y, charToTile(ch))
	})
	return grid
}

// Spawns returns every entity marker in the layout, scanning rows top to
// bottom and left to right.
func (l *LevelLayout) Spawns() []Spawn {
	var out []Spawn
	l.each(func(x, y int, ch rune) {
		if isMarker(ch) {
			out = append(out, Spawn{Marker: ch, X: x, Y: y})
		}
	})
	return out
}

// PlayerSpawn returns the position of the single '@' marker.
func (l *LevelLayout) PlayerSpawn() (Spawn, error) {
	var found []Spawn
	l.each(func(x, y int, ch rune) {
		if ch == '@' {
			found = append(found, Spawn{Marker: ch, X: x, Y: y})
		}
	})
	if len(found) != 1 {
		return Spawn{}, fmt.Errorf("level %q: expected one player spawn, found %d", l.Name, len(found))
	}
	return found[0], nil
}

func (l *LevelLayout) each(fn func(x, y int, ch rune)) {
	for row, line := range l.Tiles {
		y := l.Height - 1 - row
		x := 0
		for _, ch := range line {
			if x >= l.Width {
				break
			}
			fn(x, y, ch)
			x++
		}
	}
}

func isMarker(ch rune) bool {
	if ch == '@' || ch == '"' {
		return true
	}
	if _, ok := Weapons[ch]; ok {
		return true
	}
	_, ok := Monsters[ch]
	return ok
}

func charToTile(ch rune) Tile {
	switch ch {
	case '#':
		return Tile{Kind: TileWall}
	case '+':
		return Tile{Kind: TileDoor}
	case '>':
		return Tile{Kind: TileStairs}
	case '.':
		return Tile{Kind: TileFloor}
	}
	if isMarker(ch) {
		return Tile{Kind: TileFloor}
	}
	return Tile{Kind: TileVoid}
}
