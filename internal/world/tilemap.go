package world

// TileKind represents the structural type of a tile.
type TileKind uint8

const (
	TileVoid   TileKind = iota // rock outside the dungeon
	TileFloor                  // walkable floor
	TileWall                   // impassable wall
	TileDoor                   // walkable doorway
	TileStairs                 // walkable, leads to the next level
)

// Tile represents a single map tile.
type Tile struct {
	Kind TileKind
}

// TileGrid is a 2D grid of tiles. Y grows upward: row 0 is the bottom row
// of the playable area, matching the grid coordinates the HUD resolves.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewTileGrid creates an empty tile grid filled with void.
func NewTileGrid(w, h int) *TileGrid {
	return &TileGrid{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
	}
}

// Get returns the tile at (x, y). Out-of-bounds returns void.
func (g *TileGrid) Get(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Tile{Kind: TileVoid}
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t Tile) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.Tiles[y*g.Width+x] = t
	}
}

// IsWalkable returns true if an entity can walk on (x, y).
func (g *TileGrid) IsWalkable(x, y int) bool {
	switch g.Get(x, y).Kind {
	case TileFloor, TileDoor, TileStairs:
		return true
	default:
		return false
	}
}

// Describe returns a human-readable description of a tile.
func (t Tile) Describe() string {
	return tileDescriptions[t.Kind]
}

var tileDescriptions = map[TileKind]string{
	TileVoid:   "Solid rock",
	TileFloor:  "Floor",
	TileWall:   "Wall",
	TileDoor:   "Doorway",
	TileStairs: "Stairs down",
}
