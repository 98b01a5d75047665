package engine

import (
	"fmt"
	"strings"
)

// Habitat is one of the three zones a card can be played into.
type Habitat int

const (
	HabitatNone   Habitat = 0
	HabitatForest Habitat = 1
	HabitatLog    Habitat = 2
	HabitatSoil   Habitat = 3
)

// HabitatCount is the number of playable habitats.
const HabitatCount = 3

var habitatNames = map[Habitat]string{
	HabitatNone:   "none",
	HabitatForest: "forest",
	HabitatLog:    "log",
	HabitatSoil:   "soil",
}

func (h Habitat) String() string {
	if s, ok := habitatNames[h]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether h names a playable habitat.
func (h Habitat) Valid() bool {
	return h >= HabitatForest && h <= HabitatSoil
}

// AllHabitats returns the playable habitats in drop-zone evaluation order.
func AllHabitats() []Habitat {
	return []Habitat{HabitatForest, HabitatLog, HabitatSoil}
}

// ParseHabitat converts a habitat name (case-insensitive) to a Habitat.
func ParseHabitat(s string) (Habitat, error) {
	for h, name := range habitatNames {
		if h.Valid() && strings.EqualFold(name, s) {
			return h, nil
		}
	}
	return HabitatNone, fmt.Errorf("unknown habitat %q", s)
}

func (h Habitat) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Habitat) UnmarshalText(b []byte) error {
	if len(b) == 0 || strings.EqualFold(string(b), "none") {
		*h = HabitatNone
		return nil
	}
	v, err := ParseHabitat(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
