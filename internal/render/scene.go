package render

import (
	"errors"
	"math"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/ui"
)

// Glyph is one character at a window pixel position, top-left origin.
// Sprites have a ColorNone background so the tile under them shows.
type Glyph struct {
	X, Y   float64
	Code   byte
	FG, BG uint8
}

// Scene places the level tiles and then the sprites, bottom layer first,
// in window pixels as seen through the camera.
func Scene(s *game.Sim, window geom.Vec2, dims ui.Dims) ([]Glyph, error) {
	camera, err := s.Camera()
	if err != nil {
		return nil, err
	}
	if _, ok := camera.InverseAffine(); !ok {
		return nil, errors.New("camera transform is not invertible")
	}
	tileW := window.X / float64(dims.Cols)
	tileH := window.Y / float64(dims.Rows)

	// GridToScreen gives the tile center with a bottom-left origin.
	place := func(x, y int) (float64, float64) {
		p, _ := ui.GridToScreen(geom.Vec2{X: float64(x), Y: float64(y)}, window, camera, dims)
		return p.X - tileW/2, window.Y - p.Y - tileH/2
	}

	grid := s.Grid
	out := make([]Glyph, 0, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			code, fg, bg := TileVisuals(grid.Get(x, y))
			px, py := place(x, y)
			out = append(out, Glyph{X: px, Y: py, Code: code, FG: fg, BG: bg})
		}
	}
	for _, sp := range s.Sprites() {
		code, fg := SpriteVisuals(sp.Renderable)
		px, py := place(sp.Pos.X, sp.Pos.Y)
		out = append(out, Glyph{X: px, Y: py, Code: code, FG: fg, BG: ColorNone})
	}
	return out, nil
}

// DrawScene snaps scene glyphs to the nearest cells of buf.
func DrawScene(buf *CellBuffer, glyphs []Glyph, m ui.Metrics) {
	for _, g := range glyphs {
		x := int(math.Round(g.X / m.CharW))
		y := int(math.Round(g.Y / m.LineH))
		bg := g.BG
		if bg == ColorNone {
			bg = buf.Get(x, y).BG
		}
		buf.Set(x, y, g.Code, g.FG, bg)
	}
}
