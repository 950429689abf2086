package ui

import "github.com/roguequest/roguequest/internal/geom"

// Dims is the logical screen size in tiles. Band is the number of rows at
// the bottom of the window reserved for the HUD.
type Dims struct {
	Cols, Rows int
	Band       int
}

// ScreenToGrid converts a cursor position (origin bottom-left, y up) into
// fractional grid coordinates. Integer grid coordinates are tile centers.
func ScreenToGrid(cursor, window geom.Vec2, camera geom.Mat4, d Dims) geom.Vec2 {
	p := cursor.Sub(window.Scale(0.5))
	w := camera.ApplyPoint(p)
	tileW := window.X / float64(d.Cols)
	tileH := window.Y / float64(d.Rows)
	return geom.Vec2{
		X: w.X/tileW + float64(d.Cols/2),
		Y: w.Y/tileH + float64(d.Rows/2) - float64(d.Band/2),
	}
}

// GridToScreen is the inverse of ScreenToGrid. It fails only when the
// camera transform cannot be inverted.
func GridToScreen(g, window geom.Vec2, camera geom.Mat4, d Dims) (geom.Vec2, bool) {
	inv, ok := camera.InverseAffine()
	if !ok {
		return geom.Vec2{}, false
	}
	tileW := window.X / float64(d.Cols)
	tileH := window.Y / float64(d.Rows)
	w := geom.Vec2{
		X: (g.X - float64(d.Cols/2)) * tileW,
		Y: (g.Y - float64(d.Rows/2) + float64(d.Band/2)) * tileH,
	}
	return inv.ApplyPoint(w).Add(window.Scale(0.5)), true
}
