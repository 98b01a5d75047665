package engine

// EventType identifies an observable change between two states.
type EventType string

const (
	EventCardDrawn        EventType = "card_drawn"
	EventCardPlayed       EventType = "card_played"
	EventNutrientsChanged EventType = "nutrients_changed"
	EventSporesChanged    EventType = "spores_changed"
	EventScoreChanged     EventType = "score_changed"
)

// Event describes one change. Delta is set for counter events, Card for
// card movements.
type Event struct {
	Type    EventType `json:"type"`
	Card    *Card     `json:"card,omitempty"`
	Habitat Habitat   `json:"habitat,omitempty"`
	Delta   int       `json:"delta,omitempty"`
}

// Diff derives the events that lead from before to after. An empty result
// means the action between them was rejected or had no effect.
func Diff(before, after State) []Event {
	var events []Event

	for _, h := range AllHabitats() {
		prev := before.Habitats.Count(h)
		for _, c := range after.Habitats.In(h)[min(prev, after.Habitats.Count(h)):] {
			events = append(events, Event{Type: EventCardPlayed, Card: &c, Habitat: h})
		}
	}

	drawn := len(before.Deck) - len(after.Deck)
	for i := 0; i < drawn && i < len(before.Deck); i++ {
		c := before.Deck[i]
		events = append(events, Event{Type: EventCardDrawn, Card: &c})
	}

	if d := after.Nutrients - before.Nutrients; d != 0 {
		events = append(events, Event{Type: EventNutrientsChanged, Delta: d})
	}
	if d := after.Spores - before.Spores; d != 0 {
		events = append(events, Event{Type: EventSporesChanged, Delta: d})
	}
	if d := after.Score - before.Score; d != 0 {
		events = append(events, Event{Type: EventScoreChanged, Delta: d})
	}
	return events
}
