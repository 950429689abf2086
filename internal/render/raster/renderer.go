package raster

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/roguequest/roguequest/internal/render"
)

// GridRenderer draws cell buffers and free-floating glyphs to an
// Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders a CellBuffer. Cells with a ColorNone background and a blank
// glyph leave the screen untouched, so a UI buffer can sit over the scene.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)
			if cell.BG != render.ColorNone {
				r.fill(screen, px, py, cell.BG)
			}
			r.DrawFloating(screen, cell.Glyph, cell.FG, px, py)
		}
	}
}

// DrawScene renders scene glyphs at their exact pixel positions.
func (r *GridRenderer) DrawScene(screen *ebiten.Image, glyphs []render.Glyph) {
	for _, g := range glyphs {
		// The screen starts black every frame.
		if g.BG != render.ColorNone && g.BG != render.ColorBlack {
			r.fill(screen, g.X, g.Y, g.BG)
		}
		r.DrawFloating(screen, g.Code, g.FG, g.X, g.Y)
	}
}

func (r *GridRenderer) fill(screen *ebiten.Image, px, py float64, bg uint8) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(render.Palette[bg%16])
	screen.DrawImage(r.bgPixel, &op)
}

// DrawFloating renders a single glyph at sub-pixel screen coordinates.
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph byte, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	g := r.Atlas.Glyph(glyph)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW)/GlyphWidth, float64(r.CellH)/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(render.Palette[fg%16])
	screen.DrawImage(g, &op)
}
