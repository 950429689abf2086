package world

// WeaponTemplate defines the base stats for a weapon placed with a layout marker.
type WeaponTemplate struct {
	Name        string
	Description string
	Damage      int
	Glyph       byte
}

// MonsterTemplate defines the base stats for a monster placed with a layout marker.
type MonsterTemplate struct {
	Name        string
	Description string
	HP          int
	Damage      int
	Glyph       byte
}

// Weapons maps layout markers to weapon templates.
var Weapons = map[rune]WeaponTemplate{
	'/': {"Short Sword", "A plain iron blade. Deals 3 damage.", 3, '/'},
	'|': {"Spear", "Long reach, sharp tip. Deals 4 damage.", 4, '|'},
	')': {"Club", "A knotted branch. Deals 2 damage.", 2, ')'},
	'(': {"Battle Axe", "Heavy and slow. Deals 5 damage.", 5, '('},
}

// Monsters maps layout markers to monster templates.
var Monsters = map[rune]MonsterTemplate{
	'g': {"Goblin", "A small, mean goblin.", 2, 1, 'g'},
	'o': {"Orc", "A brutish orc with a rusty cleaver.", 5, 2, 'o'},
	'T': {"Troll", "It regenerates. Probably.", 9, 3, 'T'},
}

// StartingKit is what the player carries at the start of a run.
// The first entry starts equipped.
var StartingKit = []WeaponTemplate{
	{"Rusty Dagger", "Better than bare hands. Deals 1 damage.", 1, '-'},
	{"Club", "A knotted branch. Deals 2 damage.", 2, ')'},
}

// Amulet is the win condition item.
var Amulet = WeaponTemplate{Name: "Amulet of Yendor", Description: "Find it to win the game.", Glyph: '"'}
