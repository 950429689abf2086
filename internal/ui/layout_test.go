package ui

import (
	"math"
	"testing"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
)

func TestHUDLayout(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.AwaitingInput)
	MountHUD(ctx)
	l := ComputeLayout(ctx.Tree, ctx.Window, ctx.Metrics)

	root, _ := ctx.Tree.SingleRole(RoleHUDRoot)
	if want := (Rect{X: 0, Y: 42, W: 80, H: 8}); l[root.ID] != want {
		t.Errorf("Expected HUD root %+v, got %+v", want, l[root.ID])
	}
	logPanel, _ := ctx.Tree.SingleRole(RoleLogPanel)
	health, _ := ctx.Tree.SingleRole(RoleHealthPanel)
	if l[logPanel.ID].X != 0 || l[health.ID].X != 40 {
		t.Errorf("Expected panels side by side, got %+v and %+v", l[logPanel.ID], l[health.ID])
	}
	logText, _ := ctx.Tree.SingleRole(RoleLogText)
	if got := l[logText.ID]; got.X != 1 || got.Y != 43 || got.H != 4 {
		t.Errorf("Expected log text inside the border, got %+v", got)
	}

	frame, _ := ctx.Tree.SingleRole(RoleHPBarFrame)
	bar, _ := ctx.Tree.SingleRole(RoleHPBar)
	bar.Style.Width = Percent(50)
	l = ComputeLayout(ctx.Tree, ctx.Window, ctx.Metrics)
	if math.Abs(l[bar.ID].W-l[frame.ID].W/2) > 1e-9 {
		t.Errorf("Expected half-width bar, got %v of %v", l[bar.ID].W, l[frame.ID].W)
	}
}

func TestAbsoluteTooltipPosition(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.AwaitingInput)
	MountHUD(ctx)
	box, _ := ctx.Tree.SingleRole(RoleTooltipBox)
	text, _ := ctx.Tree.SingleRole(RoleTooltipText)
	text.Sections[0].Text = "Goblin"
	box.Style.Left = Px(10)
	box.Style.Bottom = Px(20)

	l := ComputeLayout(ctx.Tree, ctx.Window, ctx.Metrics)
	// Bottom 20 in a 50 high window with a 1 high box.
	if want := (Rect{X: 10, Y: 29, W: 6, H: 1}); l[box.ID] != want {
		t.Errorf("Expected %+v, got %+v", want, l[box.ID])
	}
}

func TestSplashCentered(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.StartScreen)
	MountSplash(ctx)
	l := ComputeLayout(ctx.Tree, geom.Vec2{X: 80, Y: 50}, ctx.Metrics)
	text, _ := ctx.Tree.SingleRole(RoleSplashText)
	r := l[text.ID]
	// Two lines, the prompt being the widest.
	if r.W != float64(len(splashPrompt)-1) || r.H != 2 {
		t.Errorf("Expected text sized to its content, got %+v", r)
	}
	if r.X != (80-r.W)/2 || r.Y != 24 {
		t.Errorf("Expected text centered, got %+v", r)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 2}
	if !r.Contains(1, 1) || r.Contains(3, 1) || r.Contains(0, 2) {
		t.Error("Expected half-open bounds")
	}
}
