package ui

import (
	"testing"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
)

func TestNearest(t *testing.T) {
	w := newFakeWorld()
	w.addNamed("Goblin", 5, 5, &game.Health{Current: 2, Max: 2})
	w.addNamed("Spear", 7, 5, nil)

	tests := []struct {
		name  string
		at    geom.Vec2
		want  string
		found bool
	}{
		{"close to goblin", geom.Vec2{X: 5, Y: 5.1}, "Goblin", true},
		{"far away", geom.Vec2{X: 50, Y: 50}, "", false},
		{"closer to spear", geom.Vec2{X: 6.6, Y: 5}, "Spear", true},
		{"exactly one tile is out", geom.Vec2{X: 5, Y: 6}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Nearest(tt.at, w.named)
			if ok != tt.found || got.Label != tt.want {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.want, tt.found, got.Label, ok)
			}
		})
	}
}

func TestNearestTieGoesToFirst(t *testing.T) {
	w := newFakeWorld()
	w.addNamed("Left", 4, 5, nil)
	w.addNamed("Right", 5, 5, nil)

	got, ok := Nearest(geom.Vec2{X: 4.5, Y: 5}, w.named)
	if !ok || got.Label != "Left" {
		t.Errorf("Expected Left, got %q", got.Label)
	}
}

func TestTooltipLabel(t *testing.T) {
	withHP := game.NamedEntity{Label: "Goblin", Health: game.Health{Current: 2, Max: 2}, HasHealth: true}
	if got := TooltipLabel(withHP); got != "Goblin HP: 2 / 2" {
		t.Errorf("Unexpected label %q", got)
	}
	if got := TooltipLabel(game.NamedEntity{Label: "Club"}); got != "Club" {
		t.Errorf("Unexpected label %q", got)
	}
}
