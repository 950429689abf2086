package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/roguequest/roguequest/assets"
	"github.com/roguequest/roguequest/internal/app"
	"github.com/roguequest/roguequest/internal/config"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	logger.Discard()
	docs, err := assets.LevelDocs()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Terminal()
	a, err := app.New(cfg, docs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	g, err := newGameOn(cfg, a, screen)
	if err != nil {
		t.Fatalf("newGameOn: %v", err)
	}
	return g, screen
}

func TestClickMapsToCellCenter(t *testing.T) {
	g, screen := newTestGame(t)
	defer screen.Fini()

	g.handleInput(tcell.NewEventMouse(3, 0, tcell.Button1, tcell.ModNone))
	want := input.Click{X: 3.5, Y: float64(g.rows) - 0.5}
	if g.pending.Click == nil || *g.pending.Click != want {
		t.Fatalf("Expected click %+v, got %+v", want, g.pending.Click)
	}

	// Holding the button is one click.
	g.pending = input.Frame{}
	g.handleInput(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone))
	if g.pending.Click != nil {
		t.Errorf("Expected no click while the button is held, got %+v", g.pending.Click)
	}
}

func TestCtrlCQuits(t *testing.T) {
	g, _ := newTestGame(t)
	if g.handleInput(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

func TestRunStopsEventReader(t *testing.T) {
	g, screen := newTestGame(t)

	result := make(chan error, 1)
	go func() { result <- g.run() }()
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected run to return after Ctrl-C")
	}

	// Events arriving after run returns must not wedge the reader.
	for i := 0; i < 5; i++ {
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	finished := make(chan struct{})
	go func() {
		screen.Fini()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected screen to shut down after run returned")
	}
}
