package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/world"
)

// Monsters notice the player within this many tiles.
const chaseRadius = 6

// HandlePlayerInput reads the player's keys while AwaitingInput. A move,
// an attack or a wait ends the player's input; the equipment key opens
// the popup.
func (s *Sim) HandlePlayerInput(f input.Frame, ph *Phases) {
	if f.Pressed(input.KeyEquipment) {
		ph.SetTurn(InMenus)
		ph.SetPopup(EquipmentPopup)
		return
	}

	dx, dy := 0, 0
	switch {
	case f.Pressed(input.KeyUp):
		dy = 1
	case f.Pressed(input.KeyDown):
		dy = -1
	case f.Pressed(input.KeyLeft):
		dx = -1
	case f.Pressed(input.KeyRight):
		dx = 1
	case f.Pressed(input.KeyWait):
		ph.SetTurn(PlayerTurn)
		return
	default:
		return
	}
	if s.TryMovePlayer(dx, dy) {
		ph.SetTurn(PlayerTurn)
	}
}

// TryMovePlayer moves the player by (dx, dy), attacking whatever enemy
// stands there. It returns false if the move was blocked.
func (s *Sim) TryMovePlayer(dx, dy int) bool {
	pos := s.posMap.Get(s.player)
	target := Position{X: pos.X + dx, Y: pos.Y + dy}

	if enemy, ok := s.enemyAt(target); ok {
		s.attack(enemy)
		return true
	}
	if !s.Grid.IsWalkable(target.X, target.Y) {
		return false
	}
	pos.X, pos.Y = target.X, target.Y
	s.pickUpAt(*pos)
	return true
}

func (s *Sim) enemyAt(p Position) (ecs.Entity, bool) {
	query := s.enemyFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		if pos.Equal(p) {
			e := query.Entity()
			query.Close()
			return e, true
		}
	}
	return ecs.Entity{}, false
}

func (s *Sim) attack(enemy ecs.Entity) {
	name := s.nameMap.Get(enemy).Name
	hp := s.healthMap.Get(enemy)
	dmg := s.attackDamage()
	hp.Current -= dmg
	if hp.Current <= 0 {
		s.ECS.RemoveEntity(enemy)
		s.Log.Add(fmt.Sprintf("You kill the %s.", name))
		return
	}
	s.Log.Add(fmt.Sprintf("You hit the %s for %d.", name, dmg))
}

// ResolvePlayerTurn runs once the player has acted: reaching the amulet
// wins, standing on stairs completes the level, otherwise monsters move.
func (s *Sim) ResolvePlayerTurn(ph *Phases) {
	s.Turns++
	if s.hasAmulet {
		ph.SetTurn(Victory)
		return
	}
	x, y := s.PlayerPos()
	if s.Grid.Get(x, y).Kind == world.TileStairs && !s.IsLastLevel() {
		ph.SetTurn(NextLevel)
		return
	}
	ph.SetTurn(MonsterTurn)
}

// MonsterTurn lets every enemy act: adjacent ones attack, nearby ones
// step toward the player. The player dying ends the run.
func (s *Sim) MonsterTurn(ph *Phases) {
	type mover struct {
		e   ecs.Entity
		pos Position
	}
	var enemies []mover
	query := s.enemyFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		enemies = append(enemies, mover{query.Entity(), *pos})
	}

	ppos := *s.posMap.Get(s.player)
	php := s.healthMap.Get(s.player)
	occupied := make(map[[2]int]bool, len(enemies))
	for _, m := range enemies {
		occupied[m.pos.Key()] = true
	}

	for _, m := range enemies {
		dx, dy := ppos.X-m.pos.X, ppos.Y-m.pos.Y
		if abs(dx)+abs(dy) == 1 {
			dmg := s.enemyMap.Get(m.e).Damage
			php.Current -= dmg
			s.Log.Add(fmt.Sprintf("The %s hits you for %d.", s.nameMap.Get(m.e).Name, dmg))
			continue
		}
		if abs(dx) > chaseRadius || abs(dy) > chaseRadius {
			continue
		}
		step := Position{X: m.pos.X + sign(dx), Y: m.pos.Y}
		if abs(dy) > abs(dx) || (abs(dy) == abs(dx) && s.rng.IntN(2) == 0) {
			step = Position{X: m.pos.X, Y: m.pos.Y + sign(dy)}
		}
		if !s.Grid.IsWalkable(step.X, step.Y) || occupied[step.Key()] || step.Equal(ppos) {
			continue
		}
		delete(occupied, m.pos.Key())
		occupied[step.Key()] = true
		pos := s.posMap.Get(m.e)
		pos.X, pos.Y = step.X, step.Y
	}

	if php.Current <= 0 {
		php.Current = 0
		s.Log.Add("You die...")
		ph.SetTurn(GameOver)
		return
	}
	ph.SetTurn(AwaitingInput)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
