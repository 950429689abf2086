// Package app wires the simulation, the HUD driver and the renderer
// together. Both frontends run an App.
package app

import (
	"fmt"
	"math"

	"github.com/roguequest/roguequest/internal/config"
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/roguequest/roguequest/internal/render"
	"github.com/roguequest/roguequest/internal/ui"
	"github.com/sirupsen/logrus"
)

// App is one running game.
type App struct {
	Config config.Config
	Sim    *game.Sim
	Log    *game.GameLog
	Driver *ui.Driver
}

// New builds the game from level documents and enters the start screen.
func New(cfg config.Config, levelDocs [][]byte) (*App, error) {
	levels, err := game.LoadLevels(levelDocs)
	if err != nil {
		return nil, err
	}

	tileW, tileH := cfg.TileSize()
	// Log lines wrap to the inside of the log panel.
	log := game.NewGameLog(cfg.LogSlots, cfg.Cols/2-2)
	view := game.Viewport{TileW: tileW, TileH: tileH, Cols: cfg.Cols, Rows: cfg.Rows, UIBand: cfg.UIBand}
	sim, err := game.NewSim(levels, log, view, cfg.Seed, cfg.FirstLevel)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ctx := &ui.Context{
		Settings: ui.Settings{
			Window:         geom.Vec2{X: float64(cfg.WindowWidth), Y: float64(cfg.WindowHeight)},
			Dims:           ui.Dims{Cols: cfg.Cols, Rows: cfg.Rows, Band: cfg.UIBand},
			Metrics:        ui.Metrics{CharW: tileW, LineH: tileH},
			TooltipOffset:  cfg.TooltipOffset,
			LogSlots:       cfg.LogSlots,
			EquipmentSlots: cfg.EquipmentSlots,
		},
		Tree:   ui.NewTree(),
		World:  sim,
		Log:    log,
		Phases: game.NewPhases(game.StartScreen),
	}
	a := &App{Config: cfg, Sim: sim, Log: log, Driver: ui.NewDriver(ctx)}
	ui.Install(a.Driver)
	if err := a.Driver.Start(); err != nil {
		return nil, err
	}
	// NewSim already built the first run, so the game steps join after the
	// initial StartScreen entry.
	a.installGame()

	logger.Log.WithFields(logrus.Fields{
		"levels": len(levels),
		"seed":   cfg.Seed,
	}).Info("game ready")
	return a, nil
}

// installGame registers the simulation steps. They run after the HUD steps
// of the same phase.
func (a *App) installGame() {
	d := a.Driver
	d.OnEnterTurn(game.StartScreen, ui.Step{Name: "new run", Run: func(*ui.Context) error {
		return a.Sim.NewRun()
	}})
	d.OnEnterTurn(game.NextLevel, ui.Step{Name: "advance level", Run: func(*ui.Context) error {
		_, err := a.Sim.AdvanceLevel()
		return err
	}})
	d.OnUpdateTurn(game.AwaitingInput, ui.Step{Name: "player input", Run: func(ctx *ui.Context) error {
		a.Sim.HandlePlayerInput(ctx.Input, ctx.Phases)
		return nil
	}})
	d.OnUpdateTurn(game.PlayerTurn, ui.Step{Name: "resolve player turn", Run: func(ctx *ui.Context) error {
		a.Sim.ResolvePlayerTurn(ctx.Phases)
		return nil
	}})
	d.OnUpdateTurn(game.MonsterTurn, ui.Step{Name: "monster turn", Run: func(ctx *ui.Context) error {
		a.Sim.MonsterTurn(ctx.Phases)
		return nil
	}})
}

// Tick advances the game by one frame of input.
func (a *App) Tick(f input.Frame) error {
	return a.Driver.Tick(f)
}

// Context returns the HUD state.
func (a *App) Context() *ui.Context {
	return a.Driver.Context()
}

// Scene returns the level and its sprites in window pixels.
func (a *App) Scene() ([]render.Glyph, error) {
	ctx := a.Context()
	return render.Scene(a.Sim, ctx.Window, ctx.Dims)
}

// ComposeUI lays out the HUD tree and draws it into buf.
func (a *App) ComposeUI(buf *render.CellBuffer) {
	ctx := a.Context()
	l := ui.ComputeLayout(ctx.Tree, ctx.Window, ctx.Metrics)
	render.Compose(buf, ctx.Tree, l, ctx.Metrics)
}

// Frame draws the whole screen into one cell buffer: the level snapped to
// cells, then the HUD on top.
func (a *App) Frame(buf *render.CellBuffer) error {
	buf.Clear()
	glyphs, err := a.Scene()
	if err != nil {
		return err
	}
	render.DrawScene(buf, glyphs, a.Context().Metrics)
	a.ComposeUI(buf)
	return nil
}

// Hover describes the map tile under a cursor position (bottom-left
// origin), or returns "" when the cursor is off the map.
func (a *App) Hover(cursor geom.Vec2) string {
	camera, err := a.Sim.Camera()
	if err != nil {
		return ""
	}
	ctx := a.Context()
	g := ui.ScreenToGrid(cursor, ctx.Window, camera, ctx.Dims)
	x, y := int(math.Round(g.X)), int(math.Round(g.Y))
	grid := a.Sim.Grid
	if x < 0 || y < 0 || x >= grid.Width || y >= grid.Height {
		return ""
	}
	return fmt.Sprintf("%s [%d,%d]", grid.Get(x, y).Describe(), x, y)
}
