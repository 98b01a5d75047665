package engine

// Replay folds actions over the opening state for seed.
func (e *Engine) Replay(seed uint64, actions []Action) State {
	s := e.NewGame(seed)
	for _, a := range actions {
		s = e.Apply(s, a)
	}
	return s
}
