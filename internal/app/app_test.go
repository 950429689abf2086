package app

import (
	"strings"
	"testing"

	"github.com/roguequest/roguequest/assets"
	"github.com/roguequest/roguequest/internal/config"
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/roguequest/roguequest/internal/render"
	"github.com/roguequest/roguequest/internal/ui"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	logger.Discard()
	docs, err := assets.LevelDocs()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Terminal()
	cfg.Seed = 7
	a, err := New(cfg, docs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func countMessages(hook *test.Hook, msg string) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Message == msg {
			n++
		}
	}
	return n
}

func TestStartupBuildsOneRun(t *testing.T) {
	logger.Discard()
	hook := test.NewLocal(logger.Log)
	defer hook.Reset()

	docs, err := assets.LevelDocs()
	if err != nil {
		t.Fatal(err)
	}
	a, err := New(config.Terminal(), docs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n := countMessages(hook, "level loaded"); n != 1 {
		t.Errorf("Expected one level load at startup, got %d", n)
	}

	// Leaving and re-entering the start screen still starts a fresh run.
	ph := a.Context().Phases
	mustTick(t, a, keys(input.KeyOther))
	ph.SetTurn(game.GameOver)
	mustTick(t, a, input.Frame{})
	ph.SetTurn(game.StartScreen)
	mustTick(t, a, input.Frame{})
	if ph.Turn() != game.StartScreen {
		t.Fatalf("Expected StartScreen, got %v", ph.Turn())
	}
	if n := countMessages(hook, "level loaded"); n != 2 {
		t.Errorf("Expected a second level load for the new run, got %d", n)
	}
}

func keys(k ...input.Key) input.Frame {
	return input.Frame{Keys: k}
}

func mustTick(t *testing.T, a *App, f input.Frame) {
	t.Helper()
	if err := a.Tick(f); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func TestEquipThroughPopup(t *testing.T) {
	a := newTestApp(t)
	ph := a.Context().Phases

	mustTick(t, a, keys(input.KeyOther))
	if ph.Turn() != game.AwaitingInput {
		t.Fatalf("Expected AwaitingInput, got %v", ph.Turn())
	}

	mustTick(t, a, keys(input.KeyEquipment))
	if ph.Turn() != game.InMenus || ph.Popup() != game.EquipmentPopup {
		t.Fatalf("Expected popup open, got %v/%v", ph.Turn(), ph.Popup())
	}

	mustTick(t, a, keys(input.KeyDigit2))
	if ph.Turn() != game.PlayerTurn {
		t.Fatalf("Expected PlayerTurn, got %v", ph.Turn())
	}
	mustTick(t, a, input.Frame{})
	mustTick(t, a, input.Frame{})
	if ph.Turn() != game.AwaitingInput {
		t.Errorf("Expected the turn to come back, got %v", ph.Turn())
	}

	w, ok := a.Sim.EquippedWeapon()
	if !ok || w.Name != "Club" {
		t.Errorf("Expected Club equipped, got %+v", w)
	}
	if n := len(a.Context().Tree.FindRole(ui.RolePopupRoot)); n != 0 {
		t.Errorf("Expected popup gone, got %d", n)
	}
}

func TestClickShowsPlayerTooltip(t *testing.T) {
	a := newTestApp(t)
	mustTick(t, a, keys(input.KeyOther))

	ctx := a.Context()
	camera, err := a.Sim.Camera()
	if err != nil {
		t.Fatal(err)
	}
	x, y := a.Sim.PlayerPos()
	cursor, ok := ui.GridToScreen(geom.Vec2{X: float64(x), Y: float64(y)}, ctx.Window, camera, ctx.Dims)
	if !ok {
		t.Fatal("Expected invertible camera")
	}

	mustTick(t, a, input.Frame{Click: &input.Click{X: cursor.X, Y: cursor.Y}})
	text, err := ctx.Tree.SingleRole(ui.RoleTooltipText)
	if err != nil {
		t.Fatal(err)
	}
	if !text.Visible || text.Text() != "Player HP: 20 / 20" {
		t.Errorf("Expected player tooltip, got %q (visible %v)", text.Text(), text.Visible)
	}
}

func TestNextLevelRemountsHUD(t *testing.T) {
	a := newTestApp(t)
	mustTick(t, a, keys(input.KeyOther))
	tree := a.Context().Tree

	a.Context().Phases.SetTurn(game.NextLevel)
	mustTick(t, a, input.Frame{})
	if len(tree.FindRole(ui.RoleHUDRoot)) != 0 || len(tree.FindRole(ui.RoleSplash)) != 1 {
		t.Fatal("Expected the level splash to replace the HUD")
	}
	if a.Sim.Depth != 1 {
		t.Errorf("Expected depth 1, got %d", a.Sim.Depth)
	}

	mustTick(t, a, keys(input.KeyOther))
	if len(tree.FindRole(ui.RoleHUDRoot)) != 1 || len(tree.FindRole(ui.RoleSplash)) != 0 {
		t.Error("Expected the HUD back after the splash")
	}
}

func TestFrameDrawsHUDOverLevel(t *testing.T) {
	a := newTestApp(t)
	cfg := a.Config
	buf := render.NewCellBuffer(cfg.Cols, cfg.Rows)

	if err := a.Frame(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.Row(24), "Rogue Quest") {
		t.Errorf("Expected title screen, got %q", buf.Row(24))
	}

	mustTick(t, a, keys(input.KeyOther))
	mustTick(t, a, input.Frame{})
	if err := a.Frame(buf); err != nil {
		t.Fatal(err)
	}
	hud := cfg.Rows - cfg.UIBand + 1
	if !strings.Contains(buf.Row(hud), "HP: 20 / 20") {
		t.Errorf("Expected HP text in row %d, got %q", hud, buf.Row(hud))
	}
	found := false
	for y := 0; y < cfg.Rows-cfg.UIBand; y++ {
		if strings.Contains(buf.Row(y), "@") {
			found = true
		}
	}
	if !found {
		t.Error("Expected the player drawn above the HUD")
	}
}

func TestHoverDescribesTile(t *testing.T) {
	a := newTestApp(t)
	ctx := a.Context()
	camera, _ := a.Sim.Camera()
	x, y := a.Sim.PlayerPos()
	cursor, _ := ui.GridToScreen(geom.Vec2{X: float64(x), Y: float64(y)}, ctx.Window, camera, ctx.Dims)

	if got := a.Hover(cursor); !strings.HasPrefix(got, "Floor [") {
		t.Errorf("Expected the floor under the player, got %q", got)
	}
	if got := a.Hover(geom.Vec2{X: -1000, Y: -1000}); got != "" {
		t.Errorf("Expected nothing off the map, got %q", got)
	}
}
