package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/roguequest/roguequest/internal/game"
	"github.com/roguequest/roguequest/internal/geom"
	"github.com/roguequest/roguequest/internal/input"
	"github.com/roguequest/roguequest/internal/logger"
	"github.com/sirupsen/logrus"
)

// World is the game state the HUD reads. Equip is the only write.
type World interface {
	PlayerHealth() (game.Health, error)
	Camera() (geom.Mat4, error)
	NamedEntities() []game.NamedEntity
	CarriedWeapons() ([]game.CarriedWeapon, error)
	Equip(item ecs.Entity) error
}

// LogSource is the message buffer shown in the log panel.
type LogSource interface {
	Entries() []string
	Reset()
}

// Settings are the fixed window and HUD dimensions.
type Settings struct {
	Window         geom.Vec2 // pixels
	Dims           Dims
	Metrics        Metrics
	TooltipOffset  float64
	LogSlots       int
	EquipmentSlots int
}

// Context is the state shared by every step.
type Context struct {
	Settings
	Tree   *Tree
	World  World
	Log    LogSource
	Phases *game.Phases
	Input  input.Frame

	// Highlighted is the equipment cursor.
	Highlighted int

	hudMounted bool
}

// StepFunc is one unit of per-phase work.
type StepFunc func(ctx *Context) error

// Step is a named StepFunc. The name shows up in logs.
type Step struct {
	Name string
	Run  StepFunc
}

type stepTable[P comparable] struct {
	enter, exit, update map[P][]Step
}

func newStepTable[P comparable]() stepTable[P] {
	return stepTable[P]{
		enter:  make(map[P][]Step),
		exit:   make(map[P][]Step),
		update: make(map[P][]Step),
	}
}

// Driver runs steps for the current phases once per tick and applies
// requested phase changes at the end of the tick.
type Driver struct {
	ctx   *Context
	turn  stepTable[game.TurnPhase]
	popup stepTable[game.PopupPhase]
	log   *logrus.Entry
}

// NewDriver creates a driver with an empty dispatch table.
func NewDriver(ctx *Context) *Driver {
	return &Driver{
		ctx:   ctx,
		turn:  newStepTable[game.TurnPhase](),
		popup: newStepTable[game.PopupPhase](),
		log:   logger.Log.WithField("component", "ui"),
	}
}

// Context returns the shared step context.
func (d *Driver) Context() *Context { return d.ctx }

// OnEnterTurn appends steps that run when the turn phase becomes p.
func (d *Driver) OnEnterTurn(p game.TurnPhase, steps ...Step) {
	d.turn.enter[p] = append(d.turn.enter[p], steps...)
}

// OnExitTurn appends steps that run when the turn phase leaves p.
func (d *Driver) OnExitTurn(p game.TurnPhase, steps ...Step) {
	d.turn.exit[p] = append(d.turn.exit[p], steps...)
}

// OnUpdateTurn appends steps that run every tick while the turn phase is p.
func (d *Driver) OnUpdateTurn(p game.TurnPhase, steps ...Step) {
	d.turn.update[p] = append(d.turn.update[p], steps...)
}

// OnEnterPopup appends steps that run when the popup phase becomes p.
func (d *Driver) OnEnterPopup(p game.PopupPhase, steps ...Step) {
	d.popup.enter[p] = append(d.popup.enter[p], steps...)
}

// OnExitPopup appends steps that run when the popup phase leaves p.
func (d *Driver) OnExitPopup(p game.PopupPhase, steps ...Step) {
	d.popup.exit[p] = append(d.popup.exit[p], steps...)
}

// OnUpdatePopup appends steps that run every tick while the popup phase is p.
func (d *Driver) OnUpdatePopup(p game.PopupPhase, steps ...Step) {
	d.popup.update[p] = append(d.popup.update[p], steps...)
}

// Start runs the enter steps of the initial phases.
func (d *Driver) Start() error {
	if err := d.runTransition(d.turn.enter[d.ctx.Phases.Turn()]); err != nil {
		return err
	}
	return d.runTransition(d.popup.enter[d.ctx.Phases.Popup()])
}

// Tick runs one frame: update steps for the current phases, then exit and
// enter steps for any phase change requested during the tick.
func (d *Driver) Tick(f input.Frame) error {
	ctx := d.ctx
	ctx.Input = f

	steps := slices.Concat(d.turn.update[ctx.Phases.Turn()], d.popup.update[ctx.Phases.Popup()])
	for _, s := range steps {
		err := s.Run(ctx)
		if err == nil {
			continue
		}
		if game.IsInvariantViolation(err) {
			// The rest of this tick's updates would read the same broken state.
			d.log.WithError(err).WithField("step", s.Name).Error("update step aborted")
			break
		}
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	ctx.Input = input.Frame{}

	tr := ctx.Phases.Advance()
	if !tr.TurnChanged && !tr.PopupChanged {
		return nil
	}
	d.log.WithFields(logrus.Fields{
		"turn":  fmt.Sprintf("%v -> %v", tr.FromTurn, tr.ToTurn),
		"popup": fmt.Sprintf("%v -> %v", tr.FromPopup, tr.ToPopup),
	}).Debug("phase transition")

	var errs []error
	if tr.TurnChanged {
		errs = append(errs, d.runTransition(d.turn.exit[tr.FromTurn]))
	}
	if tr.PopupChanged {
		errs = append(errs, d.runTransition(d.popup.exit[tr.FromPopup]))
	}
	if tr.TurnChanged {
		errs = append(errs, d.runTransition(d.turn.enter[tr.ToTurn]))
	}
	if tr.PopupChanged {
		errs = append(errs, d.runTransition(d.popup.enter[tr.ToPopup]))
	}
	return errors.Join(errs...)
}

// runTransition runs every step even when one reports a violation, so a
// phase change is never left half applied.
func (d *Driver) runTransition(steps []Step) error {
	for _, s := range steps {
		err := s.Run(d.ctx)
		if err == nil {
			continue
		}
		if game.IsInvariantViolation(err) {
			d.log.WithError(err).WithField("step", s.Name).Error("transition step reported a violation")
			continue
		}
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

// Install registers the HUD lifecycle: splash screens, the HUD and its
// presenters, the tooltip and the equipment popup.
func Install(d *Driver) {
	for _, p := range []game.TurnPhase{game.StartScreen, game.NextLevel, game.GameOver, game.Victory} {
		d.OnEnterTurn(p, Step{"mount splash", MountSplash})
		d.OnUpdateTurn(p, Step{"splash input", SplashInput})
		d.OnExitTurn(p, Step{"unmount splash", UnmountSplash})
	}
	d.OnExitTurn(game.StartScreen,
		Step{"reset log", ResetLog},
		Step{"mount HUD", MountHUD},
	)
	// The level-completed splash removed the HUD.
	d.OnExitTurn(game.NextLevel, Step{"mount HUD", MountHUD})

	d.OnUpdateTurn(game.AwaitingInput,
		Step{"health presenter", UpdateHealth},
		Step{"log presenter", UpdateLog},
		Step{"tooltip", UpdateTooltip},
	)
	d.OnExitTurn(game.AwaitingInput, Step{"hide tooltip", HideTooltip})

	d.OnEnterPopup(game.EquipmentPopup, Step{"mount equipment popup", MountEquipment})
	d.OnUpdatePopup(game.EquipmentPopup,
		Step{"equipment input", EquipmentInput},
		Step{"equipment render", RenderEquipment},
	)
	d.OnExitPopup(game.EquipmentPopup, Step{"unmount equipment popup", UnmountEquipment})
}
