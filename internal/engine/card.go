package engine

import (
	"fmt"
	"strings"
)

// Power is the one-shot effect resolved when a card is played.
type Power int

const (
	PowerNone         Power = 0
	PowerGainSpore    Power = 1
	PowerGainNutrient Power = 2
	PowerDrawCard     Power = 3
)

var powerNames = map[Power]string{
	PowerNone:         "none",
	PowerGainSpore:    "gain_spore",
	PowerGainNutrient: "gain_nutrient",
	PowerDrawCard:     "draw_card",
}

func (p Power) String() string {
	if s, ok := powerNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p Power) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Power) UnmarshalText(b []byte) error {
	for v, name := range powerNames {
		if strings.EqualFold(name, string(b)) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("unknown power %q", string(b))
}

// Template is an immutable catalog entry.
type Template struct {
	Name    string  `json:"name"`
	Habitat Habitat `json:"habitat"`
	Cost    int     `json:"cost"`
	Points  int     `json:"points"`
	Power   Power   `json:"power"`
}

// Card is an instantiated template with a session-unique ID.
type Card struct {
	ID int `json:"id"`
	Template
}

// Catalog is the fixed list of templates a deck is built from.
type Catalog []Template

// BaseCatalog returns the six mushroom templates, two per habitat.
func BaseCatalog() Catalog {
	return Catalog{
		{Name: "Chanterelle", Habitat: HabitatForest, Cost: 2, Points: 2, Power: PowerGainSpore},
		{Name: "Fly Agaric", Habitat: HabitatForest, Cost: 3, Points: 3, Power: PowerDrawCard},
		{Name: "Oyster", Habitat: HabitatLog, Cost: 1, Points: 1, Power: PowerGainNutrient},
		{Name: "Turkey Tail", Habitat: HabitatLog, Cost: 2, Points: 3, Power: PowerNone},
		{Name: "Morel", Habitat: HabitatSoil, Cost: 3, Points: 4, Power: PowerGainSpore},
		{Name: "Puffball", Habitat: HabitatSoil, Cost: 1, Points: 1, Power: PowerDrawCard},
	}
}

// Validate checks templates for construction-time content errors.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	for i, t := range c {
		switch {
		case t.Name == "":
			return fmt.Errorf("template %d: missing name", i)
		case !t.Habitat.Valid():
			return fmt.Errorf("template %s: invalid habitat %d", t.Name, t.Habitat)
		case t.Cost < 0 || t.Points < 0:
			return fmt.Errorf("template %s: negative cost or points", t.Name)
		case t.Power < PowerNone || t.Power > PowerDrawCard:
			return fmt.Errorf("template %s: invalid power %d", t.Name, t.Power)
		}
	}
	return nil
}
