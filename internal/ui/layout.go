package ui

import (
	"strings"

	"github.com/roguequest/roguequest/internal/geom"
)

// Unit says how a Val is interpreted.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Val is a length: automatic, in pixels, or a percentage of the parent.
type Val struct {
	Unit  Unit
	Value float64
}

// Auto is the automatic length.
var Auto = Val{}

// Px returns a pixel length.
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a length relative to the parent's content box.
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

func (v Val) resolve(parent, auto float64) float64 {
	switch v.Unit {
	case UnitPx:
		return v.Value
	case UnitPercent:
		return parent * v.Value / 100
	}
	return auto
}

// Direction is the main axis children are laid out along.
type Direction uint8

const (
	Column Direction = iota // top to bottom
	Row                     // left to right
)

// Align places children on an axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignSpaceBetween
)

// Style is the subset of flexbox the HUD needs.
type Style struct {
	Width, Height Val
	// Absolute nodes ignore the flow and sit at Left/Bottom inside the
	// parent's content box.
	Absolute     bool
	Left, Bottom Val

	Direction  Direction
	Justify    Align // main axis
	AlignItems Align // cross axis

	Padding     float64
	Border      float64
	BorderColor Color
	Background  Color
	CenterText  bool
}

// Rect is a pixel rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Metrics gives the size of one character cell in pixels.
type Metrics struct {
	CharW, LineH float64
}

// Layout maps every mounted node to its pixel rectangle.
type Layout map[NodeID]Rect

// Content returns the node's rectangle minus border and padding.
func (l Layout) Content(n *Node) Rect {
	return l[n.ID].inset(n.Style.Border + n.Style.Padding)
}

// ComputeLayout resolves the tree against a window of the given size.
func ComputeLayout(t *Tree, window geom.Vec2, m Metrics) Layout {
	l := make(Layout, t.Len())
	screen := Rect{W: window.X, H: window.Y}
	for _, id := range t.roots {
		n := t.nodes[id]
		w, h := size(t, n, screen, m)
		r := Rect{W: w, H: h}
		if n.Style.Absolute {
			r.X, r.Y = absolutePos(n, screen, h)
		}
		l.place(t, n, r, m)
	}
	return l
}

func (l Layout) place(t *Tree, n *Node, r Rect, m Metrics) {
	l[n.ID] = r
	content := r.inset(n.Style.Border + n.Style.Padding)

	var flow []*Node
	for _, c := range n.Children {
		child := t.nodes[c]
		if child.Style.Absolute {
			w, h := size(t, child, content, m)
			x, y := absolutePos(child, content, h)
			l.place(t, child, Rect{X: x, Y: y, W: w, H: h}, m)
			continue
		}
		flow = append(flow, child)
	}
	if len(flow) == 0 {
		return
	}

	rowDir := n.Style.Direction == Row
	mainSpace, crossSpace := content.H, content.W
	if rowDir {
		mainSpace, crossSpace = content.W, content.H
	}

	sizes := make([][2]float64, len(flow))
	total := 0.0
	for i, child := range flow {
		w, h := flowSize(t, child, n, content, m)
		sizes[i] = [2]float64{w, h}
		if rowDir {
			total += w
		} else {
			total += h
		}
	}

	free := max(mainSpace-total, 0)
	offset, gap := 0.0, 0.0
	switch n.Style.Justify {
	case AlignCenter:
		offset = free / 2
	case AlignEnd:
		offset = free
	case AlignSpaceBetween:
		if len(flow) > 1 {
			gap = free / float64(len(flow)-1)
		}
	}

	for i, child := range flow {
		w, h := sizes[i][0], sizes[i][1]
		main, cross := h, w
		if rowDir {
			main, cross = w, h
		}
		crossOff := 0.0
		switch n.Style.AlignItems {
		case AlignCenter:
			crossOff = (crossSpace - cross) / 2
		case AlignEnd:
			crossOff = crossSpace - cross
		}
		cr := Rect{W: w, H: h}
		if rowDir {
			cr.X, cr.Y = content.X+offset, content.Y+crossOff
		} else {
			cr.X, cr.Y = content.X+crossOff, content.Y+offset
		}
		l.place(t, child, cr, m)
		offset += main + gap
	}
}

// size resolves a node that is not part of a flow: auto lengths shrink to
// the content.
func size(t *Tree, n *Node, parent Rect, m Metrics) (float64, float64) {
	iw, ih := intrinsic(t, n, m)
	return n.Style.Width.resolve(parent.W, iw), n.Style.Height.resolve(parent.H, ih)
}

// flowSize resolves a flow child. Auto shrinks to the content on the main
// axis and stretches on the cross axis unless the parent aligns its items.
func flowSize(t *Tree, n *Node, parent *Node, content Rect, m Metrics) (float64, float64) {
	iw, ih := intrinsic(t, n, m)
	stretch := parent.Style.AlignItems != AlignCenter && parent.Style.AlignItems != AlignEnd
	if parent.Style.Direction == Row {
		if stretch {
			ih = content.H
		}
	} else if stretch {
		iw = content.W
	}
	return n.Style.Width.resolve(content.W, iw), n.Style.Height.resolve(content.H, ih)
}

func absolutePos(n *Node, parent Rect, h float64) (float64, float64) {
	x := parent.X + n.Style.Left.resolve(parent.W, 0)
	y := parent.Y + parent.H - n.Style.Bottom.resolve(parent.H, 0) - h
	return x, y
}

// intrinsic is the size a node wants: its text, or else its flow children
// stacked along its main axis. Percent lengths count as content here.
func intrinsic(t *Tree, n *Node, m Metrics) (float64, float64) {
	edge := 2 * (n.Style.Border + n.Style.Padding)
	if len(n.Sections) > 0 {
		lines := strings.Split(n.Text(), "\n")
		widest := 0
		for _, line := range lines {
			widest = max(widest, len(line))
		}
		return float64(widest)*m.CharW + edge, float64(len(lines))*m.LineH + edge
	}

	var w, h float64
	for _, c := range n.Children {
		child := t.nodes[c]
		if child.Style.Absolute {
			continue
		}
		cw, ch := intrinsic(t, child, m)
		if child.Style.Width.Unit == UnitPx {
			cw = child.Style.Width.Value
		}
		if child.Style.Height.Unit == UnitPx {
			ch = child.Style.Height.Value
		}
		if n.Style.Direction == Row {
			w += cw
			h = max(h, ch)
		} else {
			w = max(w, cw)
			h += ch
		}
	}
	return w + edge, h + edge
}
