package engine

// ActionType identifies the discrete intents accepted by Engine.Apply.
type ActionType string

const (
	ActionDraw     ActionType = "draw"
	ActionPlay     ActionType = "play"
	ActionActivate ActionType = "activate"
)

// Action is a discrete intent.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// play: CardID, Habitat
	// activate: Habitat
	CardID  int     `json:"card_id,omitempty"`
	Habitat Habitat `json:"habitat,omitempty"`
}

func Draw() Action {
	return Action{Type: ActionDraw}
}

func Play(cardID int, h Habitat) Action {
	return Action{Type: ActionPlay, CardID: cardID, Habitat: h}
}

func Activate(h Habitat) Action {
	return Action{Type: ActionActivate, Habitat: h}
}
