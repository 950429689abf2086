// Command roguequest-term plays the game in a terminal. One cell of the
// terminal is one pixel of the game window.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/roguequest/roguequest/assets"
	"github.com/roguequest/roguequest/internal/app"
	"github.com/roguequest/roguequest/internal/config"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/roguequest/roguequest/internal/render"
)

const tickRate = 33 * time.Millisecond

// palette maps the 16 CGA colors onto tcell's named colors.
var palette = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGreen, tcell.ColorTeal,
	tcell.ColorMaroon, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorLime, tcell.ColorAqua,
	tcell.ColorRed, tcell.ColorFuchsia, tcell.ColorYellow, tcell.ColorWhite,
}

func color(c uint8) tcell.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return tcell.ColorBlack
}

type Game struct {
	app    *app.App
	screen tcell.Screen
	buf    *render.CellBuffer
	rows   int

	pending input.Frame
	held    bool // primary button was down on the last mouse event
}

func NewGame(cfg config.Config, a *app.App) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGameOn(cfg, a, screen)
}

// newGameOn takes ownership of screen and initializes it.
func newGameOn(cfg config.Config, a *app.App, screen tcell.Screen) (*Game, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &Game{
		app:    a,
		screen: screen,
		buf:    render.NewCellBuffer(cfg.Cols, cfg.Rows),
		rows:   cfg.Rows,
	}, nil
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	}
	return input.KeyOther
}

// handleInput folds one event into the pending frame. It returns false when
// the player asked to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers()&tcell.ModCtrl != 0) {
			return false
		}
		g.pending.Keys = append(g.pending.Keys, translateKey(ev))

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.held && g.pending.Click == nil {
			col, row := ev.Position()
			// Cell centers, flipped so the origin is the bottom-left.
			g.pending.Click = &input.Click{X: float64(col) + 0.5, Y: float64(g.rows-row) - 0.5}
		}
		g.held = down

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	if err := g.app.Frame(g.buf); err != nil {
		logger.Log.WithError(err).Error("cannot draw frame")
		return
	}
	g.screen.Clear()
	for y := 0; y < g.buf.Rows; y++ {
		for x := 0; x < g.buf.Cols; x++ {
			c := g.buf.Get(x, y)
			r := rune(c.Glyph)
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(color(c.FG)).Background(color(c.BG))
			g.screen.SetContent(x, y, r, nil, style)
		}
	}
	g.screen.Show()
}

func (g *Game) run() error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}

		case <-ticker.C:
			f := g.pending
			g.pending = input.Frame{}
			if err := g.app.Tick(f); err != nil {
				return err
			}
			g.draw()
		}
	}
}

// logOutput returns where logs go while the screen is owned by tcell.
func logOutput() (io.Writer, func()) {
	path, ok := os.LookupEnv("ROGUEQUEST_LOG")
	if !ok || path == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func main() {
	cfg, err := config.Load(config.Terminal(), os.Args[1:], nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	out, closeLog := logOutput()
	defer closeLog()
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)

	docs, err := assets.LevelDocs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}
	a, err := app.New(cfg, docs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(cfg, a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	err = game.run()
	game.screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}
}
