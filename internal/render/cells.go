package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15), or ColorNone
}

// CellBuffer is a 2D grid of character cells. Row 0 is the top of the
// screen.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) inside(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if b.inside(x, y) {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.inside(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{Glyph: ' ', BG: ColorNone}
}

// Paint fills a cell with a background color and clears its glyph.
func (b *CellBuffer) Paint(x, y int, bg uint8) {
	b.Set(x, y, ' ', ColorWhite, bg)
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	b.Fill(ColorBlack)
}

// Fill resets all cells to spaces on the given background. ColorNone
// leaves the buffer fully transparent.
func (b *CellBuffer) Fill(bg uint8) {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: bg}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one
// cell and keeps the background already there.
func (b *CellBuffer) WriteString(x, y int, s string, fg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, b.Get(x+offset, y).BG)
		offset++
	}
}

// Row returns the glyphs of row y as a string. Tests use it.
func (b *CellBuffer) Row(y int) string {
	out := make([]byte, b.Cols)
	for x := range out {
		out[x] = b.Get(x, y).Glyph
	}
	return string(out)
}
