package render

import (
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/world"
)

// TileVisuals returns how a map tile is drawn.
func TileVisuals(t world.Tile) (glyph byte, fg, bg uint8) {
	switch t.Kind {
	case world.TileWall:
		return '#', ColorLightGray, ColorDarkGray
	case world.TileFloor:
		return '.', ColorDarkGray, ColorBlack
	case world.TileDoor:
		return '+', ColorBrown, ColorBlack
	case world.TileStairs:
		return '>', ColorYellow, ColorBlack
	default:
		return ' ', ColorBlack, ColorBlack
	}
}

// SpriteVisuals returns the glyph and color of an entity.
func SpriteVisuals(r game.Renderable) (glyph byte, fg uint8) {
	switch r.Kind {
	case game.SpritePlayer:
		return r.Glyph, ColorWhite
	case game.SpriteEnemy:
		return r.Glyph, ColorLightRed
	case game.SpriteWeapon:
		return r.Glyph, ColorLightCyan
	case game.SpriteAmulet:
		return r.Glyph, ColorYellow
	}
	return r.Glyph, ColorLightGray
}
