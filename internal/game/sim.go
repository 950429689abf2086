package game

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/roguequest/roguequest/internal/world"
	"github.com/sirupsen/logrus"
)

// Viewport is the window geometry the camera is fitted to.
type Viewport struct {
	TileW, TileH float64
	Cols, Rows   int
	UIBand       int
}

// Sim is the game simulation. It owns all gameplay state; the HUD only
// observes it, except for the Equipped marker which the equipment popup sets.
type Sim struct {
	ECS    *ecs.World
	Grid   *world.TileGrid
	Level  *world.LevelLayout
	Depth  int
	Log    *GameLog
	Turns  uint64
	Levels []*world.LevelLayout

	view       Viewport
	firstLevel int
	rng        *rand.Rand
	player     ecs.Entity
	hasAmulet  bool
	pickups    int

	posMap      *ecs.Map[Position]
	healthMap   *ecs.Map[Health]
	nameMap     *ecs.Map[Naming]
	descMap     *ecs.Map[Description]
	weaponMap   *ecs.Map[Weapon]
	carriedMap  *ecs.Map[Carried]
	equippedMap *ecs.Map[Equipped]
	enemyMap    *ecs.Map[Enemy]
	cameraMap   *ecs.Map[MainCamera]
	amuletMap   *ecs.Map[Amulet]

	playerBuilder *ecs.Map5[Position, Health, Naming, Renderable, Player]
	enemyBuilder  *ecs.Map6[Position, Health, Naming, Description, Renderable, Enemy]
	itemBuilder   *ecs.Map4[Position, Naming, Description, Renderable]

	playerFilter  *ecs.Filter2[Position, Health]
	cameraFilter  *ecs.Filter1[MainCamera]
	namedFilter   *ecs.Filter2[Naming, Position]
	carriedFilter *ecs.Filter2[Naming, Carried]
	enemyFilter   *ecs.Filter2[Position, Enemy]
	spriteFilter  *ecs.Filter2[Position, Renderable]
	levelFilter   *ecs.Filter1[Position]
}

// NewSim creates a simulation over the given level layouts. The log is
// shared with the HUD, which resets it at the start of every run.
func NewSim(levels []*world.LevelLayout, log *GameLog, view Viewport, seed int64, firstLevel int) (*Sim, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	if firstLevel < 0 || firstLevel >= len(levels) {
		return nil, fmt.Errorf("first level %d out of range [0, %d)", firstLevel, len(levels))
	}
	s := &Sim{
		Levels:     levels,
		Log:        log,
		view:       view,
		firstLevel: firstLevel,
		rng:        rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3))),
	}
	if err := s.NewRun(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevels parses level layouts from raw JSON documents.
func LoadLevels(docs [][]byte) ([]*world.LevelLayout, error) {
	levels := make([]*world.LevelLayout, 0, len(docs))
	for i, data := range docs {
		layout, err := world.LoadLevelLayout(data)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		levels = append(levels, layout)
	}
	return levels, nil
}

func (s *Sim) initWorld() {
	w := ecs.NewWorld(256)
	s.ECS = w

	s.posMap = ecs.NewMap[Position](w)
	s.healthMap = ecs.NewMap[Health](w)
	s.nameMap = ecs.NewMap[Naming](w)
	s.descMap = ecs.NewMap[Description](w)
	s.weaponMap = ecs.NewMap[Weapon](w)
	s.carriedMap = ecs.NewMap[Carried](w)
	s.equippedMap = ecs.NewMap[Equipped](w)
	s.enemyMap = ecs.NewMap[Enemy](w)
	s.cameraMap = ecs.NewMap[MainCamera](w)
	s.amuletMap = ecs.NewMap[Amulet](w)

	s.playerBuilder = ecs.NewMap5[Position, Health, Naming, Renderable, Player](w)
	s.enemyBuilder = ecs.NewMap6[Position, Health, Naming, Description, Renderable, Enemy](w)
	s.itemBuilder = ecs.NewMap4[Position, Naming, Description, Renderable](w)

	s.playerFilter = ecs.NewFilter2[Position, Health](w).With(ecs.C[Player]())
	s.cameraFilter = ecs.NewFilter1[MainCamera](w)
	s.namedFilter = ecs.NewFilter2[Naming, Position](w)
	s.carriedFilter = ecs.NewFilter2[Naming, Carried](w).With(ecs.C[Weapon]())
	s.enemyFilter = ecs.NewFilter2[Position, Enemy](w)
	s.spriteFilter = ecs.NewFilter2[Position, Renderable](w)
	s.levelFilter = ecs.NewFilter1[Position](w).Without(ecs.C[Player]())
}

// NewRun throws away the world and starts over on the first level with a
// fresh player carrying the starting kit.
func (s *Sim) NewRun() error {
	s.initWorld()
	s.Turns = 0
	s.hasAmulet = false
	s.pickups = 0

	s.player = s.playerBuilder.NewEntity(
		&Position{Z: 2},
		&Health{Current: 20, Max: 20},
		&Naming{Name: "Player"},
		&Renderable{Glyph: '@', Kind: SpritePlayer},
		&Player{},
	)
	for i, tmpl := range world.StartingKit {
		item := s.newItem(tmpl, Position{}, SpriteWeapon)
		s.posMap.Remove(item)
		s.weaponMap.Add(item, &Weapon{Damage: tmpl.Damage})
		s.carry(item)
		if i == 0 {
			s.equippedMap.Add(item, &Equipped{})
		}
	}
	s.cameraMap.NewEntity(&MainCamera{Transform: geom.Identity()})

	return s.loadLevel(s.firstLevel)
}

// AdvanceLevel moves the player to the next level, keeping health and
// inventory. It returns false when there is no next level.
func (s *Sim) AdvanceLevel() (bool, error) {
	if s.Depth+1 >= len(s.Levels) {
		return false, nil
	}
	return true, s.loadLevel(s.Depth + 1)
}

// IsLastLevel reports whether the current level is the final one.
func (s *Sim) IsLastLevel() bool {
	return s.Depth == len(s.Levels)-1
}

func (s *Sim) loadLevel(depth int) error {
	layout := s.Levels[depth]
	spawn, err := layout.PlayerSpawn()
	if err != nil {
		return fmt.Errorf("load level %d: %w", depth, err)
	}

	// Everything with a position except the player belongs to the old level.
	var stale []ecs.Entity
	query := s.levelFilter.Query()
	for query.Next() {
		stale = append(stale, query.Entity())
	}
	for _, e := range stale {
		s.ECS.RemoveEntity(e)
	}

	s.Depth = depth
	s.Level = layout
	s.Grid = layout.ToTileGrid()

	pos := s.posMap.Get(s.player)
	pos.X, pos.Y = spawn.X, spawn.Y

	for _, sp := range layout.Spawns() {
		at := Position{X: sp.X, Y: sp.Y, Z: 1}
		if m, ok := world.Monsters[sp.Marker]; ok {
			s.enemyBuilder.NewEntity(
				&at,
				&Health{Current: m.HP, Max: m.HP},
				&Naming{Name: m.Name},
				&Description{Text: m.Description},
				&Renderable{Glyph: m.Glyph, Kind: SpriteEnemy},
				&Enemy{Damage: m.Damage},
			)
			continue
		}
		if w, ok := world.Weapons[sp.Marker]; ok {
			item := s.newItem(w, at, SpriteWeapon)
			s.weaponMap.Add(item, &Weapon{Damage: w.Damage})
			continue
		}
		if sp.Marker == '"' {
			item := s.newItem(world.Amulet, at, SpriteAmulet)
			s.amuletMap.Add(item, &Amulet{})
		}
	}

	s.centerCamera()
	logger.Log.WithFields(logrus.Fields{
		"depth": depth,
		"level": layout.Name,
	}).Info("level loaded")
	return nil
}

func (s *Sim) newItem(t world.WeaponTemplate, at Position, kind SpriteKind) ecs.Entity {
	return s.itemBuilder.NewEntity(
		&at,
		&Naming{Name: t.Name},
		&Description{Text: t.Description},
		&Renderable{Glyph: t.Glyph, Kind: kind},
	)
}

// centerCamera fits the camera so the level sits in the middle of the area
// above the HUD strip.
func (s *Sim) centerCamera() {
	v := s.view
	if v.TileW == 0 || v.TileH == 0 {
		return
	}
	cx := float64(s.Level.Width-1) / 2
	cy := float64(s.Level.Height-1) / 2
	tx := (cx - float64(v.Cols/2)) * v.TileW
	ty := (cy-float64(v.Rows/2)+float64(v.UIBand/2))*v.TileH - float64(v.UIBand)*v.TileH/2

	query := s.cameraFilter.Query()
	for query.Next() {
		cam := query.Get()
		cam.Transform = geom.Translation(tx, ty, 0)
	}
}

// PlayerPos returns the player's current tile coordinates.
func (s *Sim) PlayerPos() (int, int) {
	pos := s.posMap.Get(s.player)
	return pos.X, pos.Y
}

// PlayerEntity returns the player entity.
func (s *Sim) PlayerEntity() ecs.Entity {
	return s.player
}

// Sprite is an entity to draw at a grid position.
type Sprite struct {
	Pos        Position
	Renderable Renderable
}

// Sprites returns every drawable entity sorted by render layer.
func (s *Sim) Sprites() []Sprite {
	var out []Sprite
	query := s.spriteFilter.Query()
	for query.Next() {
		pos, r := query.Get()
		out = append(out, Sprite{Pos: *pos, Renderable: *r})
	}
	slices.SortStableFunc(out, func(a, b Sprite) int {
		return cmp.Compare(a.Pos.Z, b.Pos.Z)
	})
	return out
}
