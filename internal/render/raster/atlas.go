// Package raster draws cell buffers and scene glyphs with Ebitengine.
package raster

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8 // printable ASCII fits in the first 128 codes
)

// FontAtlas holds the glyph atlas and cached sub-images. Codes outside the
// atlas render as '?'.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [AtlasCols * AtlasRows]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 into a
// single image at startup.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	for code := 33; code <= 126; code++ {
		x, y := cellOrigin(code)
		drawFontGlyph(img, face, x, y, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := range a.glyphs {
		x, y := cellOrigin(code)
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

func cellOrigin(code int) (int, int) {
	return (code % AtlasCols) * GlyphWidth, (code / AtlasCols) * GlyphHeight
}

// Glyph returns the cached sub-image for a character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}
