package ui

import (
	"fmt"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
)

// PickRadius is the exclusive distance, in tiles, within which a click
// selects an entity.
const PickRadius = 1.0

// Nearest returns the entity closest to g and strictly within PickRadius.
// On equal distances the entity enumerated first wins.
func Nearest(g geom.Vec2, entities []game.NamedEntity) (game.NamedEntity, bool) {
	best := PickRadius
	var found game.NamedEntity
	ok := false
	for _, e := range entities {
		if d := g.Dist(e.Pos.Vec()); d < best {
			best = d
			found = e
			ok = true
		}
	}
	return found, ok
}

// TooltipLabel is the text shown for a picked entity.
func TooltipLabel(e game.NamedEntity) string {
	if e.HasHealth {
		return fmt.Sprintf("%s HP: %d / %d", e.Label, e.Health.Current, e.Health.Max)
	}
	return e.Label
}
