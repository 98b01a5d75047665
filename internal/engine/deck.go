package engine

import "math/rand/v2"

// BuildDeck replicates every template copies times, assigns IDs 1..N in
// catalog order and shuffles the result with a PCG source seeded by seed.
func BuildDeck(catalog Catalog, copies int, seed uint64) []Card {
	cards := make([]Card, 0, len(catalog)*copies)
	id := 0
	for _, t := range catalog {
		for i := 0; i < copies; i++ {
			id++
			cards = append(cards, Card{ID: id, Template: t})
		}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
