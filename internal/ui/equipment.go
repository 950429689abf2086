package ui

import (
	"fmt"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/input"
)

// MountEquipment opens the equipment popup in the middle of the window.
func MountEquipment(ctx *Context) error {
	t, m := ctx.Tree, ctx.Metrics
	root := t.Spawn(0, RolePopupRoot, Style{
		Absolute:    true,
		Left:        Percent(25),
		Bottom:      Percent(30),
		Width:       Percent(50),
		Height:      Px(float64(ctx.EquipmentSlots+7) * m.LineH),
		Border:      m.CharW,
		BorderColor: ColorGray,
		Padding:     m.CharW,
		Background:  ColorBlack,
	})
	t.Spawn(root, RoleNone, Style{}, Section{Text: "Equipment\n", Color: ColorYellow})
	slots := make([]Section, ctx.EquipmentSlots)
	for i := range slots {
		slots[i].Color = ColorWhite
	}
	t.Spawn(root, RoleEquipmentList, Style{Height: Px(float64(ctx.EquipmentSlots) * m.LineH)}, slots...)
	t.Spawn(root, RoleEquipmentDesc, Style{}, Section{Text: " ", Color: ColorCyan})
	t.Spawn(root, RoleNone, Style{},
		Section{Text: "\nUp/Down choose, Enter or 1-9 equip, Esc close", Color: ColorDarkGray})

	return nil
}

// UnmountEquipment closes the equipment popup.
func UnmountEquipment(ctx *Context) error {
	for _, id := range ctx.Tree.FindRole(RolePopupRoot) {
		ctx.Tree.DespawnRecursive(id)
	}
	return nil
}

// visibleWeapons returns the player's weapons that fit in the popup.
func visibleWeapons(ctx *Context) ([]game.CarriedWeapon, error) {
	weapons, err := ctx.World.CarriedWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) > ctx.EquipmentSlots {
		weapons = weapons[:ctx.EquipmentSlots]
	}
	return weapons, nil
}

// EquipmentInput moves the cursor, confirms a selection or closes the
// popup.
func EquipmentInput(ctx *Context) error {
	weapons, err := visibleWeapons(ctx)
	if err != nil {
		return err
	}
	n := len(weapons)
	ctx.Highlighted = clampCursor(ctx.Highlighted, n)

	f := ctx.Input
	if f.Pressed(input.KeyEscape) {
		ctx.Phases.SetTurn(game.AwaitingInput)
		ctx.Phases.SetPopup(game.PopupNone)
		return nil
	}
	if f.Pressed(input.KeyUp) {
		ctx.Highlighted = clampCursor(ctx.Highlighted-1, n)
	}
	if f.Pressed(input.KeyDown) {
		ctx.Highlighted = clampCursor(ctx.Highlighted+1, n)
	}

	if f.Pressed(input.KeyEnter) {
		return Select(ctx, ctx.Highlighted)
	}
	if slot, ok := f.FirstDigit(); ok {
		return Select(ctx, slot)
	}
	return nil
}

func clampCursor(i, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}

// Select equips the weapon at index and closes the popup, spending the
// player's turn. An index with no weapon behind it does nothing.
func Select(ctx *Context, index int) error {
	weapons, err := visibleWeapons(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(weapons) {
		return nil
	}
	if err := ctx.World.Equip(weapons[index].Entity); err != nil {
		return fmt.Errorf("equip %s: %w", weapons[index].Name, err)
	}
	ctx.Highlighted = 0
	ctx.Phases.SetTurn(game.PlayerTurn)
	ctx.Phases.SetPopup(game.PopupNone)
	return nil
}

// RenderEquipment writes the weapon list and the highlighted weapon's
// description into the popup.
func RenderEquipment(ctx *Context) error {
	list, err := ctx.Tree.SingleRole(RoleEquipmentList)
	if err != nil {
		return err
	}
	desc, err := ctx.Tree.SingleRole(RoleEquipmentDesc)
	if err != nil {
		return err
	}
	weapons, err := visibleWeapons(ctx)
	if err != nil {
		return err
	}

	desc.Sections[0].Text = " "
	if len(weapons) == 0 {
		for i := range list.Sections {
			list.Sections[i].Text = "\n "
		}
		if len(list.Sections) > 0 {
			list.Sections[0].Text = "No equipment."
		}
		return nil
	}

	for i := range list.Sections {
		if i >= len(weapons) {
			list.Sections[i].Text = "\n "
			continue
		}
		w := weapons[i]
		mark := " "
		if i == ctx.Highlighted {
			mark = "-"
			desc.Sections[0].Text = w.Description
		}
		equipped := ""
		if w.Equipped {
			equipped = "(e)"
		}
		line := fmt.Sprintf("%s %s %s %s", mark, w.Name, equipped, mark)
		if i > 0 {
			line = "\n" + line
		}
		list.Sections[i].Text = line
	}
	return nil
}
