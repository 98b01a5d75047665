package engine

// HabitatView is one habitat as shown by the renderer.
type HabitatView struct {
	Habitat  Habitat `json:"habitat"`
	Cards    []Card  `json:"cards"`
	Capacity int     `json:"capacity"`
}

// HandCardView annotates a hand card with where it can legally be dropped.
type HandCardView struct {
	Card
	PlayableIn Habitat `json:"playable_in,omitempty"`
}

// ViewData is the read-only snapshot consumed by the renderer.
type ViewData struct {
	Hand         []HandCardView `json:"hand"`
	Habitats     []HabitatView  `json:"habitats"`
	DeckSize     int            `json:"deck_size"`
	Nutrients    int            `json:"nutrients"`
	Spores       int            `json:"spores"`
	Score        int            `json:"score"`
	DisplayScore int            `json:"display_score"`
}

// DisplayScore is the composite figure shown next to the score. It is
// derived for display only; State.Score stays canonical.
func DisplayScore(s State) int {
	return s.Score + s.Spores*2 + s.Nutrients
}

// View builds the renderer snapshot for s.
func (e *Engine) View(s State) ViewData {
	v := ViewData{
		Hand:         make([]HandCardView, 0, len(s.Hand)),
		DeckSize:     len(s.Deck),
		Nutrients:    s.Nutrients,
		Spores:       s.Spores,
		Score:        s.Score,
		DisplayScore: DisplayScore(s),
	}
	for _, c := range s.Hand {
		hc := HandCardView{Card: c}
		if e.CanPlay(s, c.ID, c.Habitat) {
			hc.PlayableIn = c.Habitat
		}
		v.Hand = append(v.Hand, hc)
	}
	for _, h := range AllHabitats() {
		cards := s.Habitats.In(h)
		if cards == nil {
			cards = []Card{}
		}
		v.Habitats = append(v.Habitats, HabitatView{
			Habitat:  h,
			Cards:    cards,
			Capacity: e.Config.HabitatCapacity,
		})
	}
	return v
}
