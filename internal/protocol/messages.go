package protocol

import (
	"github.com/jwdomes/mushland-game/internal/engine"
	"github.com/jwdomes/mushland-game/internal/interaction"
)

// Message types: Server → Client
const (
	MsgGameState = "game_state"
	MsgEvent     = "event"
	MsgRejected  = "rejected"
	MsgDrag      = "drag"
	MsgError     = "error"
)

// Message types: Client → Server
const (
	// Intents use the same names as engine ActionType
	MsgDraw     = string(engine.ActionDraw)
	MsgPlay     = string(engine.ActionPlay)
	MsgActivate = string(engine.ActionActivate)

	MsgPointerDown = "pointer_down"
	MsgPointerMove = "pointer_move"
	MsgPointerUp   = "pointer_up"
	MsgLayout      = "layout"
	MsgNewGame     = "new_game"
)

// PlayMsg requests a card play.
type PlayMsg struct {
	CardID  int            `json:"card_id"`
	Habitat engine.Habitat `json:"habitat"`
}

// ActivateMsg requests a habitat harvest.
type ActivateMsg struct {
	Habitat engine.Habitat `json:"habitat"`
}

// PointerMsg carries a pointer event. CardID is only read on pointer_down.
type PointerMsg struct {
	CardID int     `json:"card_id,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (p PointerMsg) Point() interaction.Point {
	return interaction.Point{X: p.X, Y: p.Y}
}

// LayoutMsg reports the current drop zone rectangles.
type LayoutMsg struct {
	Zones []interaction.Zone `json:"zones"`
}

// NewGameMsg restarts the session. Zero seed picks a random one.
type NewGameMsg struct {
	Seed uint64 `json:"seed,omitempty"`
}

// DragMsg echoes the live drag for speculative highlighting.
type DragMsg struct {
	Dragging bool           `json:"dragging"`
	CardID   int            `json:"card_id,omitempty"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Hover    engine.Habitat `json:"hover,omitempty"`
	Legal    bool           `json:"legal"`
}

// RejectedMsg reports an intent that left the state unchanged.
type RejectedMsg struct {
	Action engine.Action `json:"action"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
