package engine

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Catalog           Catalog // card templates
	CopiesPerTemplate int     // copies of each template in the deck (default 6)
	StartNutrients    int     // nutrients at game start (default 8)
	HabitatCapacity   int     // max cards per habitat (default 5)
	OpeningHand       int     // cards drawn by NewGame (default 0)
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Catalog:           BaseCatalog(),
		CopiesPerTemplate: 6,
		StartNutrients:    8,
		HabitatCapacity:   5,
	}
}
