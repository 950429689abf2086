package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/geom"
)

// NamedEntity is an entity the tooltip can describe.
type NamedEntity struct {
	Entity    ecs.Entity
	Label     string
	Pos       Position
	Health    Health
	HasHealth bool
}

// NamedEntities returns every entity with a name and a grid position, in
// query order. The order is stable within a run.
func (s *Sim) NamedEntities() []NamedEntity {
	var out []NamedEntity
	query := s.namedFilter.Query()
	for query.Next() {
		name, pos := query.Get()
		e := query.Entity()
		n := NamedEntity{Entity: e, Label: name.Name, Pos: *pos}
		if s.healthMap.Has(e) {
			n.Health = *s.healthMap.Get(e)
			n.HasHealth = true
		}
		out = append(out, n)
	}
	return out
}

// PlayerHealth returns the health of the single player entity.
func (s *Sim) PlayerHealth() (Health, error) {
	var found []Health
	query := s.playerFilter.Query()
	for query.Next() {
		_, h := query.Get()
		found = append(found, *h)
	}
	if len(found) != 1 {
		return Health{}, &InvariantViolation{What: "player", Count: len(found)}
	}
	return found[0], nil
}

// Camera returns the transform of the single camera entity.
func (s *Sim) Camera() (geom.Mat4, error) {
	var found []geom.Mat4
	query := s.cameraFilter.Query()
	for query.Next() {
		found = append(found, query.Get().Transform)
	}
	if len(found) != 1 {
		return geom.Mat4{}, &InvariantViolation{What: "camera", Count: len(found)}
	}
	return found[0], nil
}

func (s *Sim) singlePlayer() (ecs.Entity, error) {
	var found []ecs.Entity
	query := s.playerFilter.Query()
	for query.Next() {
		found = append(found, query.Entity())
	}
	if len(found) != 1 {
		return ecs.Entity{}, &InvariantViolation{What: "player", Count: len(found)}
	}
	return found[0], nil
}
