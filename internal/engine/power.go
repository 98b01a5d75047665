package engine

// powerEffect resolves a card power against the state produced by the play
// that triggered it. The play and its effect form one transition.
type powerEffect func(e *Engine, s State) State

var powerEffects = map[Power]powerEffect{
	PowerGainSpore: func(_ *Engine, s State) State {
		s.Spores++
		return s
	},
	PowerGainNutrient: func(_ *Engine, s State) State {
		s.Nutrients++
		return s
	},
	PowerDrawCard: (*Engine).draw,
}

func (e *Engine) resolvePower(s State, p Power) State {
	effect, ok := powerEffects[p]
	if !ok {
		return s
	}
	return effect(e, s)
}
