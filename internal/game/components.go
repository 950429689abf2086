package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/geom"
)

// Position is a grid coordinate. Z is the render layer and never takes part
// in equality.
type Position struct {
	X, Y, Z int
}

// Equal compares positions over X and Y only.
func (p Position) Equal(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Key returns a map key that ignores Z.
func (p Position) Key() [2]int {
	return [2]int{p.X, p.Y}
}

// Vec returns the position as a 2D point.
func (p Position) Vec() geom.Vec2 {
	return geom.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Health is current and max hit points.
type Health struct {
	Current, Max int
}

// Naming is the display name of an entity.
type Naming struct {
	Name string
}

// Description is the flavour text shown in the equipment popup.
type Description struct {
	Text string
}

// Carried links an item to the entity holding it. Order is the pickup
// sequence, which is the order items are listed in.
type Carried struct {
	By    ecs.Entity
	Order int
}

// Weapon marks an item as a weapon.
type Weapon struct {
	Damage int
}

// Equipped marks the active weapon of its holder.
type Equipped struct{}

// Player marks the player entity.
type Player struct{}

// Enemy marks a monster.
type Enemy struct {
	Damage int
}

// Amulet marks the win condition item.
type Amulet struct{}

// SpriteKind selects the palette a renderer uses for an entity.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteWeapon
	SpriteAmulet
)

// Renderable is how an entity is drawn on the grid.
type Renderable struct {
	Glyph byte
	Kind  SpriteKind
}

// MainCamera holds the camera's world transform.
type MainCamera struct {
	Transform geom.Mat4
}
