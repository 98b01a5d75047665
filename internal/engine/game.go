package engine

// Engine applies actions to game states under a fixed configuration.
// It holds no game state of its own.
type Engine struct {
	Config GameConfig
}

// New creates an engine for the given config.
func New(config GameConfig) *Engine {
	return &Engine{Config: config}
}

var defaultEngine = New(DefaultConfig())

// NewGame returns the initial state for seed using the default config.
func NewGame(seed uint64) State {
	return defaultEngine.NewGame(seed)
}

// Apply applies a to s using the default config.
func Apply(s State, a Action) State {
	return defaultEngine.Apply(s, a)
}

// NewGame builds a freshly shuffled deck and returns the opening state.
func (e *Engine) NewGame(seed uint64) State {
	s := State{
		Deck:      BuildDeck(e.Config.Catalog, e.Config.CopiesPerTemplate, seed),
		Hand:      []Card{},
		Nutrients: e.Config.StartNutrients,
	}
	for i := range s.Habitats {
		s.Habitats[i] = []Card{}
	}
	for i := 0; i < e.Config.OpeningHand; i++ {
		s = e.draw(s)
	}
	return s
}

// Apply is the single transition function. It is pure: the same state and
// action always yield the same result, and s is never modified. Invalid
// actions return s unchanged.
func (e *Engine) Apply(s State, a Action) State {
	switch a.Type {
	case ActionDraw:
		return e.draw(s)
	case ActionPlay:
		return e.play(s, a.CardID, a.Habitat)
	case ActionActivate:
		return e.activate(s, a.Habitat)
	default:
		return s
	}
}

// CanPlay reports whether Play(cardID, h) would be accepted in s.
func (e *Engine) CanPlay(s State, cardID int, h Habitat) bool {
	card, ok := s.HandCard(cardID)
	if !ok {
		return false
	}
	if card.Habitat != h {
		return false
	}
	if s.Nutrients < card.Cost {
		return false
	}
	return s.Habitats.Count(h) < e.Config.HabitatCapacity
}

func (e *Engine) draw(s State) State {
	if len(s.Deck) == 0 {
		return s
	}
	next := s.clone()
	card := next.Deck[0]
	next.Deck = next.Deck[1:]
	next.Hand = append(next.Hand, card)
	return next
}

func (e *Engine) play(s State, cardID int, h Habitat) State {
	if !e.CanPlay(s, cardID, h) {
		return s
	}
	next := s.clone()
	var card Card
	for i, c := range next.Hand {
		if c.ID == cardID {
			card = c
			next.Hand = append(next.Hand[:i], next.Hand[i+1:]...)
			break
		}
	}
	next.Habitats[h-1] = append(next.Habitats[h-1], card)
	next.Nutrients -= card.Cost
	next.Score += card.Points
	return e.resolvePower(next, card.Power)
}

func (e *Engine) activate(s State, h Habitat) State {
	gain := s.Habitats.Count(h)
	if gain == 0 {
		return s
	}
	next := s.clone()
	next.Nutrients += gain
	return next
}
