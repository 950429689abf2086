package ui

import (
	"fmt"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/logger"
)

var logHints = []string{
	"Log...",
	"\nUse the arrow keys to move.",
	"\nBump into the enemies to attack them.",
	"\nFind the amulet to win the game.",
}

// ResetLog clears the message log for a new run.
func ResetLog(ctx *Context) error {
	ctx.Log.Reset()
	return nil
}

// MountHUD builds the bottom strip (log panel and health panel) and the
// hidden tooltip. Nothing is mounted if a HUD root already exists.
func MountHUD(ctx *Context) error {
	if len(ctx.Tree.FindRole(RoleHUDRoot)) > 0 {
		return nil
	}
	t, m := ctx.Tree, ctx.Metrics

	root := t.Spawn(0, RoleHUDRoot, Style{
		Absolute:   true,
		Width:      Percent(100),
		Height:     Px(float64(ctx.Dims.Band) * m.LineH),
		Direction:  Row,
		Justify:    AlignSpaceBetween,
		Background: ColorBlack,
	})

	panel := Style{
		Width:       Percent(50),
		Height:      Percent(100),
		Border:      m.CharW,
		BorderColor: ColorGray,
		Background:  ColorBlack,
	}
	logPanel := t.Spawn(root, RoleLogPanel, panel)
	sections := make([]Section, ctx.LogSlots)
	for i := range sections {
		sections[i] = Section{Text: "\n", Color: ColorYellow}
		if i < len(logHints) {
			sections[i].Text = logHints[i]
		}
	}
	t.Spawn(logPanel, RoleLogText, Style{}, sections...)

	healthPanel := t.Spawn(root, RoleHealthPanel, panel)
	hpRow := t.Spawn(healthPanel, RoleNone, Style{
		Width:     Percent(100),
		Height:    Px(m.LineH),
		Direction: Row,
		Justify:   AlignSpaceBetween,
	})
	t.Spawn(hpRow, RoleHPText, Style{Width: Percent(35)},
		Section{Text: "HP: 20 / 20", Color: ColorWhite})
	frame := t.Spawn(hpRow, RoleHPBarFrame, Style{
		Width:      Percent(63),
		Background: ColorDarkRed,
	})
	t.Spawn(frame, RoleHPBar, Style{
		Width:      Percent(100),
		Height:     Percent(100),
		Background: ColorRed,
	})

	box := t.Spawn(root, RoleTooltipBox, Style{
		Absolute:   true,
		Height:     Px(m.LineH),
		Background: ColorBlack,
	})
	text := t.Spawn(box, RoleTooltipText, Style{}, Section{Color: ColorWhite})
	t.SetVisible(box, false)
	t.SetVisible(text, false)

	ctx.hudMounted = true
	return nil
}

// BarFill is the health bar width in percent, clamped to [0, 100].
// A non-positive maximum gives an empty bar.
func BarFill(h game.Health) float64 {
	if h.Max <= 0 {
		return 0
	}
	fill := 100 * float64(h.Current) / float64(h.Max)
	return min(max(fill, 0), 100)
}

// UpdateHealth shows the player's hit points as text and as a bar.
func UpdateHealth(ctx *Context) error {
	hp, err := ctx.World.PlayerHealth()
	if err != nil {
		return err
	}
	text, err := ctx.Tree.SingleRole(RoleHPText)
	if err != nil {
		return err
	}
	bar, err := ctx.Tree.SingleRole(RoleHPBar)
	if err != nil {
		return err
	}
	if hp.Max <= 0 {
		logger.Log.WithField("max", hp.Max).Debug("degenerate player health")
	}
	text.Sections[0].Text = fmt.Sprintf("HP: %d / %d", hp.Current, hp.Max)
	bar.Style.Width = Percent(BarFill(hp))
	return nil
}

// UpdateLog copies log entries into the log text slots. Slots past the end
// of the log keep whatever they showed before.
func UpdateLog(ctx *Context) error {
	text, err := ctx.Tree.SingleRole(RoleLogText)
	if err != nil {
		return err
	}
	for i, entry := range ctx.Log.Entries() {
		if i >= len(text.Sections) {
			break
		}
		if i > 0 {
			entry = "\n" + entry
		}
		text.Sections[i].Text = entry
	}
	return nil
}
