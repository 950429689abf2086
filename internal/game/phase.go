package game

// TurnPhase is the coarse mode the game and its UI are in.
type TurnPhase uint8

const (
	StartScreen   TurnPhase = iota // title splash
	AwaitingInput                  // interactive: HUD, tooltip, player input
	PlayerTurn                     // resolving the player's action
	MonsterTurn                    // monsters act
	InMenus                        // a popup owns the input
	NextLevel                      // level completed splash
	GameOver                       // death splash
	Victory                        // win splash
)

var turnPhaseNames = map[TurnPhase]string{
	StartScreen:   "StartScreen",
	AwaitingInput: "AwaitingInput",
	PlayerTurn:    "PlayerTurn",
	MonsterTurn:   "MonsterTurn",
	InMenus:       "InMenus",
	NextLevel:     "NextLevel",
	GameOver:      "GameOver",
	Victory:       "Victory",
}

func (p TurnPhase) String() string {
	if s, ok := turnPhaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// IsSplash reports whether the phase shows a full-screen splash.
func (p TurnPhase) IsSplash() bool {
	switch p {
	case StartScreen, NextLevel, GameOver, Victory:
		return true
	}
	return false
}

// PopupPhase is layered on top of TurnPhase for modal screens.
type PopupPhase uint8

const (
	PopupNone PopupPhase = iota
	EquipmentPopup
)

func (p PopupPhase) String() string {
	switch p {
	case PopupNone:
		return "None"
	case EquipmentPopup:
		return "EquipmentPopup"
	}
	return "Unknown"
}

// Phases holds the current phases and the ones requested for the next tick.
// Steps read the current values and write pending ones; Advance swaps them
// at the tick boundary so every step in a tick sees the same phase.
type Phases struct {
	turn      TurnPhase
	popup     PopupPhase
	nextTurn  TurnPhase
	nextPopup PopupPhase
	turnSet   bool
	popupSet  bool
}

// NewPhases starts in the given turn phase with no popup.
func NewPhases(initial TurnPhase) *Phases {
	return &Phases{turn: initial}
}

// Turn returns the current turn phase.
func (p *Phases) Turn() TurnPhase { return p.turn }

// Popup returns the current popup phase.
func (p *Phases) Popup() PopupPhase { return p.popup }

// SetTurn requests a turn phase for the next tick. The last request wins.
func (p *Phases) SetTurn(t TurnPhase) {
	p.nextTurn = t
	p.turnSet = true
}

// SetPopup requests a popup phase for the next tick. The last request wins.
func (p *Phases) SetPopup(pp PopupPhase) {
	p.nextPopup = pp
	p.popupSet = true
}

// PendingTurn returns the requested turn phase, if any.
func (p *Phases) PendingTurn() (TurnPhase, bool) { return p.nextTurn, p.turnSet }

// PendingPopup returns the requested popup phase, if any.
func (p *Phases) PendingPopup() (PopupPhase, bool) { return p.nextPopup, p.popupSet }

// Transition describes what Advance changed.
type Transition struct {
	FromTurn, ToTurn   TurnPhase
	FromPopup, ToPopup PopupPhase
	TurnChanged        bool
	PopupChanged       bool
}

// Advance applies pending requests. Requesting the current phase is not a
// change.
func (p *Phases) Advance() Transition {
	tr := Transition{
		FromTurn: p.turn, ToTurn: p.turn,
		FromPopup: p.popup, ToPopup: p.popup,
	}
	if p.turnSet && p.nextTurn != p.turn {
		tr.ToTurn = p.nextTurn
		tr.TurnChanged = true
		p.turn = p.nextTurn
	}
	if p.popupSet && p.nextPopup != p.popup {
		tr.ToPopup = p.nextPopup
		tr.PopupChanged = true
		p.popup = p.nextPopup
	}
	p.turnSet, p.popupSet = false, false
	return tr
}
