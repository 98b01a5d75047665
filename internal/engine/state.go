package engine

// Board holds the cards played into each habitat, indexed by Habitat-1.
type Board [HabitatCount][]Card

// In returns the cards played into h. Invalid habitats yield nil.
func (b Board) In(h Habitat) []Card {
	if !h.Valid() {
		return nil
	}
	return b[h-1]
}

// Count returns the number of cards played into h.
func (b Board) Count(h Habitat) int {
	return len(b.In(h))
}

// State is a complete game snapshot. Values are never mutated in place by
// the engine; Apply returns a new State that shares no slices with its input.
type State struct {
	Deck      []Card `json:"deck"`
	Hand      []Card `json:"hand"`
	Habitats  Board  `json:"habitats"`
	Nutrients int    `json:"nutrients"`
	Spores    int    `json:"spores"`
	Score     int    `json:"score"`
}

func (s State) clone() State {
	next := s
	next.Deck = cloneCards(s.Deck)
	next.Hand = cloneCards(s.Hand)
	for i := range s.Habitats {
		next.Habitats[i] = cloneCards(s.Habitats[i])
	}
	return next
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// HandCard returns the hand card with the given ID.
func (s State) HandCard(id int) (Card, bool) {
	for _, c := range s.Hand {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
