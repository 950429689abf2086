package render

import (
	"math"
	"strings"

	"github.com/roguequest/roguequest/internal/ui"
)

// Compose draws the visible UI nodes into buf, parents before children.
// The layout must have been computed with the same metrics.
func Compose(buf *CellBuffer, t *ui.Tree, l ui.Layout, m ui.Metrics) {
	t.Walk(func(n *ui.Node) bool {
		r, ok := l[n.ID]
		if !n.Visible || !ok {
			return false
		}
		x0, y0, x1, y1 := cellSpan(r, m)

		if bg := UIColor(n.Style.Background); bg != ColorNone {
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					buf.Paint(x, y, bg)
				}
			}
		}
		if n.Style.Border > 0 {
			bc := UIColor(n.Style.BorderColor)
			bw := max(int(math.Round(n.Style.Border/m.CharW)), 1)
			bh := max(int(math.Round(n.Style.Border/m.LineH)), 1)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if x < x0+bw || x >= x1-bw || y < y0+bh || y >= y1-bh {
						buf.Paint(x, y, bc)
					}
				}
			}
		}
		if len(n.Sections) > 0 {
			drawText(buf, n, l.Content(n), m)
		}
		return true
	})
}

func cellSpan(r ui.Rect, m ui.Metrics) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X / m.CharW))
	y0 = int(math.Round(r.Y / m.LineH))
	x1 = int(math.Round((r.X + r.W) / m.CharW))
	y1 = int(math.Round((r.Y + r.H) / m.LineH))
	return
}

type textRun struct {
	text string
	fg   uint8
}

// drawText lays the sections out line by line, clipped to the content box.
func drawText(buf *CellBuffer, n *ui.Node, content ui.Rect, m ui.Metrics) {
	lines := [][]textRun{nil}
	for _, sec := range n.Sections {
		fg := UIColor(sec.Color)
		if fg == ColorNone {
			fg = ColorWhite
		}
		for i, part := range strings.Split(sec.Text, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], textRun{part, fg})
			}
		}
	}

	x0, y0, x1, y1 := cellSpan(content, m)
	for i, line := range lines {
		y := y0 + i
		if y >= y1 {
			break
		}
		x := x0
		if n.Style.CenterText {
			width := 0
			for _, r := range line {
				width += len(r.text)
			}
			x += max((x1-x0-width)/2, 0)
		}
		for _, r := range line {
			for _, ch := range r.text {
				if x >= x1 {
					break
				}
				buf.WriteString(x, y, string(ch), r.fg)
				x++
			}
		}
	}
}
