package main

import (
	"os"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/roguequest/roguequest/assets"
	"github.com/roguequest/roguequest/internal/app"
	"github.com/roguequest/roguequest/internal/config"
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/roguequest/roguequest/internal/render"
	"github.com/roguequest/roguequest/internal/render/raster"
)

const title = "Rogue Quest"

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay and HUD state lives in app.
type Game struct {
	app      *app.App
	renderer *raster.GridRenderer
	uiBuf    *render.CellBuffer
	keys     []ebiten.Key
	hover    string

	width, height int
	sceneBroken   bool
}

func NewGame(cfg config.Config, a *app.App) *Game {
	cellW := cfg.WindowWidth / cfg.Cols
	cellH := cfg.WindowHeight / cfg.Rows
	return &Game{
		app:      a,
		renderer: raster.NewGridRenderer(raster.NewFontAtlas(), cellW, cellH),
		uiBuf:    render.NewCellBuffer(cfg.Cols, cfg.Rows),
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
	}
}

// translateKey maps an Ebitengine key to the game's key set.
func translateKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyUp
	case ebiten.KeyArrowDown:
		return input.KeyDown
	case ebiten.KeyArrowLeft:
		return input.KeyLeft
	case ebiten.KeyArrowRight:
		return input.KeyRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyEnter
	case ebiten.KeyEscape:
		return input.KeyEscape
	case ebiten.KeySpace, ebiten.KeyPeriod:
		return input.KeyWait
	}
	name := k.String()
	if len(name) == 1 {
		return input.FromRune(unicode.ToLower(rune(name[0])))
	}
	if d, ok := strings.CutPrefix(name, "Digit"); ok && len(d) == 1 {
		return input.FromRune(rune(d[0]))
	}
	return input.KeyOther
}

// cursor returns the mouse position with the origin at the bottom-left.
func (g *Game) cursor() geom.Vec2 {
	mx, my := ebiten.CursorPosition()
	return geom.Vec2{X: float64(mx), Y: float64(g.height - my)}
}

func (g *Game) Update() error {
	var f input.Frame
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		f.Keys = append(f.Keys, translateKey(k))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c := g.cursor()
		f.Click = &input.Click{X: c.X, Y: c.Y}
	}

	if err := g.app.Tick(f); err != nil {
		return err
	}

	g.hover = ""
	if g.app.Context().Phases.Turn() == game.AwaitingInput {
		g.hover = g.app.Hover(g.cursor())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	glyphs, err := g.app.Scene()
	switch {
	case err == nil:
		g.renderer.DrawScene(screen, glyphs)
		g.sceneBroken = false
	case !g.sceneBroken:
		logger.Log.WithError(err).Error("cannot draw level")
		g.sceneBroken = true
	}

	g.uiBuf.Fill(render.ColorNone)
	if g.hover != "" {
		g.uiBuf.WriteString(1, 0, g.hover, render.ColorDarkGray)
	}
	g.app.ComposeUI(g.uiBuf)
	g.renderer.Draw(screen, g.uiBuf)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	cfg, err := config.Load(config.Default(), os.Args[1:], nil)
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, nil)

	docs, err := assets.LevelDocs()
	if err != nil {
		logger.Log.WithError(err).Fatal("load levels")
	}
	a, err := app.New(cfg, docs)
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, a)); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
