package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/input"
)

var anyKey = input.Frame{Keys: []input.Key{input.KeyOther}}

func tick(t *testing.T, d *Driver, f input.Frame) {
	t.Helper()
	if err := d.Tick(f); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func countRole(d *Driver, r Role) int {
	return len(d.Context().Tree.FindRole(r))
}

func TestSplashPhaseLaw(t *testing.T) {
	tests := []struct {
		from, want game.TurnPhase
	}{
		{game.StartScreen, game.AwaitingInput},
		{game.NextLevel, game.AwaitingInput},
		{game.GameOver, game.StartScreen},
		{game.Victory, game.StartScreen},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			d := newTestDriver(newFakeWorld(), tt.from)
			if err := d.Start(); err != nil {
				t.Fatalf("Start: %v", err)
			}

			tick(t, d, input.Frame{Click: &input.Click{X: 1, Y: 1}})
			if got := d.Context().Phases.Turn(); got != tt.from {
				t.Fatalf("Expected clicks to be ignored, phase is %v", got)
			}

			tick(t, d, anyKey)
			if got := d.Context().Phases.Turn(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if tt.want == game.AwaitingInput && countRole(d, RoleSplash) != 0 {
				t.Error("Expected splash unmounted")
			}
		})
	}
}

func TestSplashTitles(t *testing.T) {
	tests := []struct {
		phase game.TurnPhase
		title string
		color Color
	}{
		{game.StartScreen, "Rogue Quest", ColorGold},
		{game.GameOver, "Game Over", ColorRed},
		{game.Victory, "You win!", ColorGold},
		{game.NextLevel, "Level Completed", ColorGold},
	}
	for _, tt := range tests {
		ctx := newTestContext(newFakeWorld(), tt.phase)
		MountSplash(ctx)
		text, err := ctx.Tree.SingleRole(RoleSplashText)
		if err != nil {
			t.Fatal(err)
		}
		if text.Sections[0].Text != tt.title || text.Sections[0].Color != tt.color {
			t.Errorf("%v: expected %q in %v, got %+v", tt.phase, tt.title, tt.color, text.Sections[0])
		}
		if text.Sections[1].Text != splashPrompt {
			t.Errorf("%v: unexpected prompt %q", tt.phase, text.Sections[1].Text)
		}
	}
}

func TestOneHUDAcrossPhaseCycle(t *testing.T) {
	d := newTestDriver(newFakeWorld(), game.StartScreen)
	d.Start()
	ph := d.Context().Phases

	// Play, stairs, play, death, start screen, new run, amulet.
	steps := []struct {
		request    game.TurnPhase
		key        bool
		wantHUD    int
		wantSplash int
	}{
		{key: true, wantHUD: 1, wantSplash: 0},
		{request: game.NextLevel, wantHUD: 0, wantSplash: 1},
		{key: true, wantHUD: 1, wantSplash: 0},
		{request: game.GameOver, wantHUD: 0, wantSplash: 1},
		{key: true, wantHUD: 0, wantSplash: 1},
		{key: true, wantHUD: 1, wantSplash: 0},
		{request: game.Victory, wantHUD: 0, wantSplash: 1},
	}
	for i, s := range steps {
		f := input.Frame{}
		if s.key {
			f = anyKey
		} else {
			ph.SetTurn(s.request)
		}
		tick(t, d, f)
		if got := countRole(d, RoleHUDRoot); got != s.wantHUD {
			t.Errorf("step %d: expected %d HUD roots, got %d", i, s.wantHUD, got)
		}
		if got := countRole(d, RoleSplash); got != s.wantSplash {
			t.Errorf("step %d: expected %d splash roots, got %d", i, s.wantSplash, got)
		}
	}
}

func TestSplashReportsMissingHUD(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.GameOver)
	if err := MountSplash(ctx); err != nil {
		t.Errorf("Expected no violation before the HUD was ever mounted, got %v", err)
	}

	ctx = newTestContext(newFakeWorld(), game.GameOver)
	MountHUD(ctx)
	root, _ := ctx.Tree.SingleRole(RoleHUDRoot)
	ctx.Tree.DespawnRecursive(root.ID)
	if err := MountSplash(ctx); !game.IsInvariantViolation(err) {
		t.Errorf("Expected violation for a vanished HUD, got %v", err)
	}
	if len(ctx.Tree.FindRole(RoleSplash)) != 1 {
		t.Error("Expected splash mounted anyway")
	}

	ctx = newTestContext(newFakeWorld(), game.Victory)
	ctx.Tree.Spawn(0, RoleHUDRoot, Style{})
	ctx.Tree.Spawn(0, RoleHUDRoot, Style{})
	if err := MountSplash(ctx); !game.IsInvariantViolation(err) {
		t.Errorf("Expected violation for two HUD roots, got %v", err)
	}
	if len(ctx.Tree.FindRole(RoleHUDRoot)) != 0 {
		t.Error("Expected every HUD root removed")
	}
}

func TestStartScreenExitResetsLog(t *testing.T) {
	d := newTestDriver(newFakeWorld(), game.StartScreen)
	d.Start()
	log := d.Context().Log.(*game.GameLog)
	log.Add("stale message")

	tick(t, d, anyKey)
	if log.Len() != 0 {
		t.Errorf("Expected empty log, got %v", log.Entries())
	}
}

func TestLeavingPlayHidesTooltip(t *testing.T) {
	w := newFakeWorld()
	w.addNamed("Goblin", 5, 5, &game.Health{Current: 2, Max: 2})
	d := newTestDriver(w, game.StartScreen)
	d.Start()
	tick(t, d, anyKey)

	tick(t, d, input.Frame{Click: &input.Click{X: 5, Y: 9}})
	box, _ := d.Context().Tree.SingleRole(RoleTooltipBox)
	if !box.Visible {
		t.Fatal("Expected tooltip shown")
	}

	d.Context().Phases.SetTurn(game.PlayerTurn)
	tick(t, d, input.Frame{})
	if box.Visible {
		t.Error("Expected tooltip hidden after leaving AwaitingInput")
	}
}

func TestUpdateViolationSkipsRestOfTick(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.AwaitingInput)
	d := NewDriver(ctx)

	var ran []string
	record := func(name string, err error) Step {
		return Step{name, func(*Context) error {
			ran = append(ran, name)
			return err
		}}
	}
	d.OnUpdateTurn(game.AwaitingInput,
		record("first", nil),
		Step{"request", func(c *Context) error {
			c.Phases.SetTurn(game.PlayerTurn)
			return nil
		}},
		record("broken", &game.InvariantViolation{What: "camera", Count: 0}),
		record("skipped", nil),
	)
	d.OnEnterTurn(game.PlayerTurn, record("enter", nil))

	if err := d.Tick(input.Frame{}); err != nil {
		t.Fatalf("Expected violation to be logged, not returned: %v", err)
	}
	if want := []string{"first", "broken", "enter"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("Expected %v, got %v", want, ran)
	}
	if ctx.Phases.Turn() != game.PlayerTurn {
		t.Errorf("Expected pending transition applied, got %v", ctx.Phases.Turn())
	}
}

func TestTransitionOrder(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.AwaitingInput)
	d := NewDriver(ctx)

	var ran []string
	record := func(name string) Step {
		return Step{name, func(*Context) error {
			ran = append(ran, name)
			return nil
		}}
	}
	d.OnExitTurn(game.AwaitingInput, record("exit turn"))
	d.OnExitPopup(game.PopupNone, record("exit popup"))
	d.OnEnterTurn(game.InMenus, record("enter turn"))
	d.OnEnterPopup(game.EquipmentPopup, record("enter popup"))

	ctx.Phases.SetTurn(game.InMenus)
	ctx.Phases.SetPopup(game.EquipmentPopup)
	tick(t, d, input.Frame{})

	want := []string{"exit turn", "exit popup", "enter turn", "enter popup"}
	if !reflect.DeepEqual(ran, want) {
		t.Errorf("Expected %v, got %v", want, ran)
	}
}

func TestTickReturnsOtherErrors(t *testing.T) {
	ctx := newTestContext(newFakeWorld(), game.StartScreen)
	d := NewDriver(ctx)
	boom := errors.New("level file missing")
	d.OnEnterTurn(game.NextLevel, Step{"advance level", func(*Context) error { return boom }})

	ctx.Phases.SetTurn(game.NextLevel)
	err := d.Tick(input.Frame{})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped error, got %v", err)
	}
}
