package ui

import (
	"errors"

	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/logger"
)

type tag struct{}

// fakeWorld is a hand-built World. Entities come from a real ECS world so
// they compare the way the game's do.
type fakeWorld struct {
	ecs     *ecs.World
	tags    *ecs.Map[tag]
	health  game.Health
	hpErr   error
	camera  geom.Mat4
	camErr  error
	named   []game.NamedEntity
	weapons []game.CarriedWeapon
	equips  int
}

func newFakeWorld() *fakeWorld {
	w := ecs.NewWorld(16)
	return &fakeWorld{
		ecs:    w,
		tags:   ecs.NewMap[tag](w),
		health: game.Health{Current: 20, Max: 20},
		camera: geom.Identity(),
	}
}

func (f *fakeWorld) entity() ecs.Entity {
	return f.tags.NewEntity(&tag{})
}

func (f *fakeWorld) addNamed(label string, x, y int, hp *game.Health) {
	n := game.NamedEntity{Entity: f.entity(), Label: label, Pos: game.Position{X: x, Y: y}}
	if hp != nil {
		n.Health = *hp
		n.HasHealth = true
	}
	f.named = append(f.named, n)
}

func (f *fakeWorld) addWeapon(name string, equipped bool) ecs.Entity {
	e := f.entity()
	f.weapons = append(f.weapons, game.CarriedWeapon{
		Entity:      e,
		Name:        name,
		Description: name + " description",
		Equipped:    equipped,
	})
	return e
}

func (f *fakeWorld) PlayerHealth() (game.Health, error) { return f.health, f.hpErr }
func (f *fakeWorld) Camera() (geom.Mat4, error)         { return f.camera, f.camErr }
func (f *fakeWorld) NamedEntities() []game.NamedEntity  { return f.named }

func (f *fakeWorld) CarriedWeapons() ([]game.CarriedWeapon, error) {
	out := make([]game.CarriedWeapon, len(f.weapons))
	copy(out, f.weapons)
	return out, nil
}

func (f *fakeWorld) Equip(item ecs.Entity) error {
	found := false
	for i := range f.weapons {
		f.weapons[i].Equipped = f.weapons[i].Entity == item
		found = found || f.weapons[i].Equipped
	}
	if !found {
		return errors.New("not carried")
	}
	f.equips++
	return nil
}

func (f *fakeWorld) equipped() []string {
	var out []string
	for _, w := range f.weapons {
		if w.Equipped {
			out = append(out, w.Name)
		}
	}
	return out
}

// Unit tiles: one pixel per tile keeps the grid arithmetic readable.
var testSettings = Settings{
	Window:         geom.Vec2{X: 80, Y: 50},
	Dims:           Dims{Cols: 80, Rows: 50, Band: 8},
	Metrics:        Metrics{CharW: 1, LineH: 1},
	TooltipOffset:  6,
	LogSlots:       4,
	EquipmentSlots: 8,
}

func newTestContext(w *fakeWorld, start game.TurnPhase) *Context {
	logger.Discard()
	return &Context{
		Settings: testSettings,
		Tree:     NewTree(),
		World:    w,
		Log:      game.NewGameLog(4, 38),
		Phases:   game.NewPhases(start),
	}
}

func newTestDriver(w *fakeWorld, start game.TurnPhase) *Driver {
	d := NewDriver(newTestContext(w, start))
	Install(d)
	return d
}
