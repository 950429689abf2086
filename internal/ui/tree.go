package ui

import (
	"slices"

	"github.com/roguequest/roguequest/internal/game"
)

// NodeID identifies a node in a Tree. The zero value means "no node".
type NodeID uint32

// Role tags a node so steps can find it again, the way marker components
// tag UI entities.
type Role uint8

const (
	RoleNone Role = iota
	RoleHUDRoot
	RoleLogPanel
	RoleLogText
	RoleHealthPanel
	RoleHPText
	RoleHPBarFrame
	RoleHPBar
	RoleTooltipBox
	RoleTooltipText
	RoleSplash
	RoleSplashText
	RolePopupRoot
	RoleEquipmentList
	RoleEquipmentDesc
)

var roleNames = [...]string{
	RoleNone:          "node",
	RoleHUDRoot:       "HUD root",
	RoleLogPanel:      "log panel",
	RoleLogText:       "log text",
	RoleHealthPanel:   "health panel",
	RoleHPText:        "HP text",
	RoleHPBarFrame:    "HP bar frame",
	RoleHPBar:         "HP bar",
	RoleTooltipBox:    "tooltip box",
	RoleTooltipText:   "tooltip text",
	RoleSplash:        "splash",
	RoleSplashText:    "splash text",
	RolePopupRoot:     "popup root",
	RoleEquipmentList: "equipment list",
	RoleEquipmentDesc: "equipment description",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Color is a symbolic UI color. Renderers map it to their own palette.
type Color uint8

const (
	ColorNone Color = iota // transparent / inherit
	ColorBlack
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorGold
	ColorYellow
	ColorRed
	ColorDarkRed
	ColorCyan
)

// Section is one run of text with its own color. A newline inside the
// text starts a new line.
type Section struct {
	Text  string
	Color Color
}

// Node is a UI element: a box with optional text.
type Node struct {
	ID       NodeID
	Role     Role
	Parent   NodeID
	Children []NodeID
	Style    Style
	Sections []Section
	Visible  bool
}

// Text joins all sections.
func (n *Node) Text() string {
	var s string
	for _, sec := range n.Sections {
		s += sec.Text
	}
	return s
}

// Tree holds every mounted UI node. Roots keep their mount order, which
// is also the draw order.
type Tree struct {
	nodes map[NodeID]*Node
	roots []NodeID
	next  NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*Node)}
}

// Spawn mounts a visible node under parent, or as a root when parent is 0.
// Spawning under a missing parent mounts nothing and returns 0.
func (t *Tree) Spawn(parent NodeID, role Role, style Style, sections ...Section) NodeID {
	var p *Node
	if parent != 0 {
		if p = t.nodes[parent]; p == nil {
			return 0
		}
	}
	t.next++
	n := &Node{
		ID:       t.next,
		Role:     role,
		Parent:   parent,
		Style:    style,
		Sections: sections,
		Visible:  true,
	}
	t.nodes[n.ID] = n
	if p != nil {
		p.Children = append(p.Children, n.ID)
	} else {
		t.roots = append(t.roots, n.ID)
	}
	return n.ID
}

// Get returns the node with the given id, or nil.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes[id]
}

// Roots returns the root nodes in mount order.
func (t *Tree) Roots() []NodeID {
	return slices.Clone(t.roots)
}

// Len returns the number of mounted nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// DespawnRecursive unmounts a node and all of its descendants.
func (t *Tree) DespawnRecursive(id NodeID) {
	n := t.nodes[id]
	if n == nil {
		return
	}
	if p := t.nodes[n.Parent]; p != nil {
		p.Children = slices.DeleteFunc(p.Children, func(c NodeID) bool { return c == id })
	} else {
		t.roots = slices.DeleteFunc(t.roots, func(r NodeID) bool { return r == id })
	}
	t.free(n)
}

func (t *Tree) free(n *Node) {
	for _, c := range n.Children {
		if child := t.nodes[c]; child != nil {
			t.free(child)
		}
	}
	delete(t.nodes, n.ID)
}

// FindRole returns every node with the given role, in tree order.
func (t *Tree) FindRole(role Role) []NodeID {
	var out []NodeID
	t.Walk(func(n *Node) bool {
		if n.Role == role {
			out = append(out, n.ID)
		}
		return true
	})
	return out
}

// SingleRole returns the only node with the given role. Any other count is
// an invariant violation.
func (t *Tree) SingleRole(role Role) (*Node, error) {
	ids := t.FindRole(role)
	if len(ids) != 1 {
		return nil, &game.InvariantViolation{What: role.String(), Count: len(ids)}
	}
	return t.nodes[ids[0]], nil
}

// Walk visits nodes depth first in draw order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	for _, r := range t.roots {
		t.walk(r, fn)
	}
}

func (t *Tree) walk(id NodeID, fn func(n *Node) bool) {
	n := t.nodes[id]
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		t.walk(c, fn)
	}
}

// SetVisible shows or hides a node. A hidden node hides its subtree.
func (t *Tree) SetVisible(id NodeID, visible bool) {
	if n := t.nodes[id]; n != nil {
		n.Visible = visible
	}
}
