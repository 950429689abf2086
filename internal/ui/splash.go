package ui

import "github.com/roguequest/roguequest/internal/game"

const splashPrompt = "\nPress any key to start game."

func splashTitle(p game.TurnPhase) (string, Color) {
	switch p {
	case game.GameOver:
		return "Game Over", ColorRed
	case game.Victory:
		return "You win!", ColorGold
	case game.NextLevel:
		return "Level Completed", ColorGold
	}
	return "Rogue Quest", ColorGold
}

// MountSplash covers the window with the title screen for the current
// phase. Outside the start screen it first removes the HUD.
func MountSplash(ctx *Context) error {
	turn := ctx.Phases.Turn()
	var err error
	if turn != game.StartScreen {
		err = removeHUD(ctx)
	}

	root := ctx.Tree.Spawn(0, RoleSplash, Style{
		Width:      Percent(100),
		Height:     Percent(100),
		Direction:  Column,
		Justify:    AlignCenter,
		AlignItems: AlignCenter,
		Background: ColorBlack,
	})
	title, color := splashTitle(turn)
	ctx.Tree.Spawn(root, RoleSplashText, Style{CenterText: true},
		Section{Text: title, Color: color},
		Section{Text: splashPrompt, Color: ColorWhite},
	)
	return err
}

// removeHUD frees every HUD root. Exactly one is expected once the HUD has
// been mounted.
func removeHUD(ctx *Context) error {
	roots := ctx.Tree.FindRole(RoleHUDRoot)
	for _, id := range roots {
		ctx.Tree.DespawnRecursive(id)
	}
	if len(roots) == 1 || (len(roots) == 0 && !ctx.hudMounted) {
		return nil
	}
	return &game.InvariantViolation{What: RoleHUDRoot.String(), Count: len(roots)}
}

// UnmountSplash frees every splash subtree.
func UnmountSplash(ctx *Context) error {
	for _, id := range ctx.Tree.FindRole(RoleSplash) {
		ctx.Tree.DespawnRecursive(id)
	}
	return nil
}

// SplashInput leaves the splash on any key: into play from the start and
// level screens, back to the start screen from the end screens.
func SplashInput(ctx *Context) error {
	if !ctx.Input.AnyKey() {
		return nil
	}
	switch ctx.Phases.Turn() {
	case game.StartScreen, game.NextLevel:
		ctx.Phases.SetTurn(game.AwaitingInput)
	case game.GameOver, game.Victory:
		ctx.Phases.SetTurn(game.StartScreen)
	}
	return nil
}
