package game

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// CarriedWeapon is one line of the player's weapon list.
type CarriedWeapon struct {
	Entity      ecs.Entity
	Name        string
	Description string
	Equipped    bool
	order       int
}

// carry hands an item to the player at the end of the pickup order.
func (s *Sim) carry(item ecs.Entity) {
	s.carriedMap.Add(item, &Carried{By: s.player, Order: s.pickups})
	s.pickups++
}

// CarriedWeapons lists the weapons the player carries in pickup order.
func (s *Sim) CarriedWeapons() ([]CarriedWeapon, error) {
	player, err := s.singlePlayer()
	if err != nil {
		return nil, err
	}
	return s.weaponsOf(player), nil
}

func (s *Sim) weaponsOf(holder ecs.Entity) []CarriedWeapon {
	var out []CarriedWeapon
	query := s.carriedFilter.Query()
	for query.Next() {
		name, carried := query.Get()
		if carried.By != holder {
			continue
		}
		e := query.Entity()
		w := CarriedWeapon{
			Entity:   e,
			Name:     name.Name,
			Equipped: s.equippedMap.Has(e),
			order:    carried.Order,
		}
		if s.descMap.Has(e) {
			w.Description = s.descMap.Get(e).Text
		}
		out = append(out, w)
	}
	slices.SortStableFunc(out, func(a, b CarriedWeapon) int {
		return cmp.Compare(a.order, b.order)
	})
	return out
}

// Equip makes item the only equipped weapon among those the player carries.
func (s *Sim) Equip(item ecs.Entity) error {
	player, err := s.singlePlayer()
	if err != nil {
		return err
	}
	if !s.ECS.Alive(item) || !s.weaponMap.Has(item) || !s.carriedMap.Has(item) ||
		s.carriedMap.Get(item).By != player {
		return fmt.Errorf("entity %v is not a weapon carried by the player", item)
	}

	// Collect first: structural changes are not allowed while a query runs.
	for _, w := range s.weaponsOf(player) {
		if w.Equipped {
			s.equippedMap.Remove(w.Entity)
		}
	}
	s.equippedMap.Add(item, &Equipped{})
	return nil
}

// EquippedWeapon returns the weapon the player has equipped, if any.
func (s *Sim) EquippedWeapon() (CarriedWeapon, bool) {
	for _, w := range s.weaponsOf(s.player) {
		if w.Equipped {
			return w, true
		}
	}
	return CarriedWeapon{}, false
}

// attackDamage is the equipped weapon's damage, or 1 bare-handed.
func (s *Sim) attackDamage() int {
	if w, ok := s.EquippedWeapon(); ok {
		return s.weaponMap.Get(w.Entity).Damage
	}
	return 1
}

// pickUpAt moves every weapon and the amulet lying at pos into the
// player's hands.
func (s *Sim) pickUpAt(pos Position) {
	var found []ecs.Entity
	query := s.levelFilter.Query()
	for query.Next() {
		p := query.Get()
		e := query.Entity()
		if p.Equal(pos) && (s.weaponMap.Has(e) || s.amuletMap.Has(e)) {
			found = append(found, e)
		}
	}
	for _, e := range found {
		name := s.nameMap.Get(e).Name
		if s.amuletMap.Has(e) {
			s.hasAmulet = true
			s.ECS.RemoveEntity(e)
			s.Log.Add(fmt.Sprintf("You pick up the %s!", name))
			continue
		}
		s.posMap.Remove(e)
		s.carry(e)
		s.Log.Add(fmt.Sprintf("You pick up the %s.", name))
	}
}
