// Package interaction turns pointer drag gestures into discrete play intents.
package interaction

import "github.com/jwdomes/mushland-game/internal/engine"

// Phase is the tracker state.
type Phase int

const (
	PhaseIdle     Phase = iota // no drag in progress
	PhaseDragging              // a hand card is being dragged
)

var phaseNames = map[Phase]string{
	PhaseIdle:     "Idle",
	PhaseDragging: "Dragging",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Tracker is the drag state machine. It never touches game state; on
// release it may emit a Play action that the engine still has to accept.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	zones  map[engine.Habitat]Rect
	phase  Phase
	cardID int
	pos    Point
}

// NewTracker creates an idle tracker with the given drop zones.
func NewTracker(zones []Zone) *Tracker {
	t := &Tracker{}
	t.SetZones(zones)
	return t
}

// SetZones replaces the drop zone layout. Zones for invalid habitats are
// ignored; a later zone for the same habitat wins.
func (t *Tracker) SetZones(zones []Zone) {
	t.zones = make(map[engine.Habitat]Rect, len(zones))
	for _, z := range zones {
		if z.Habitat.Valid() {
			t.zones[z.Habitat] = z.Bounds
		}
	}
}

func (t *Tracker) Phase() Phase { return t.phase }

// Dragged returns the carried card ID and live position while dragging.
func (t *Tracker) Dragged() (cardID int, pos Point, ok bool) {
	if t.phase != PhaseDragging {
		return 0, Point{}, false
	}
	return t.cardID, t.pos, true
}

// PointerDown starts a drag of cardID. It is ignored while already
// dragging, so the carried card never changes mid-drag.
func (t *Tracker) PointerDown(cardID int, p Point) {
	if t.phase == PhaseDragging {
		return
	}
	t.phase = PhaseDragging
	t.cardID = cardID
	t.pos = p
}

// PointerMove updates the live position. No-op when idle.
func (t *Tracker) PointerMove(p Point) {
	if t.phase != PhaseDragging {
		return
	}
	t.pos = p
}

// PointerUp ends the drag at p and returns to idle. If p falls inside a
// drop zone it returns a Play action for the carried card.
func (t *Tracker) PointerUp(p Point) (engine.Action, bool) {
	if t.phase != PhaseDragging {
		return engine.Action{}, false
	}
	cardID := t.cardID
	t.Reset()

	h, ok := t.ZoneAt(p)
	if !ok {
		return engine.Action{}, false
	}
	return engine.Play(cardID, h), true
}

// Reset drops any drag in progress without emitting an action. Used when
// the game the drag belonged to is replaced.
func (t *Tracker) Reset() {
	t.phase = PhaseIdle
	t.cardID = 0
	t.pos = Point{}
}

// ZoneAt returns the first zone containing p, checked Forest, Log, Soil.
func (t *Tracker) ZoneAt(p Point) (engine.Habitat, bool) {
	for _, h := range engine.AllHabitats() {
		r, ok := t.zones[h]
		if ok && r.Contains(p) {
			return h, true
		}
	}
	return engine.HabitatNone, false
}

// Hover returns the zone under the current drag position, for highlighting.
func (t *Tracker) Hover() (engine.Habitat, bool) {
	if t.phase != PhaseDragging {
		return engine.HabitatNone, false
	}
	return t.ZoneAt(t.pos)
}
