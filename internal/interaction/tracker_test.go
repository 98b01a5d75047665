package interaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwdomes/mushland-game/internal/engine"
	"github.com/jwdomes/mushland-game/internal/interaction"
)

func layout() []interaction.Zone {
	return []interaction.Zone{
		{Habitat: engine.HabitatForest, Bounds: interaction.Rect{X: 0, Y: 0, W: 100, H: 100}},
		{Habitat: engine.HabitatLog, Bounds: interaction.Rect{X: 100, Y: 0, W: 100, H: 100}},
		{Habitat: engine.HabitatSoil, Bounds: interaction.Rect{X: 200, Y: 0, W: 100, H: 100}},
	}
}

func TestTrackerDropOnZone(t *testing.T) {
	tr := interaction.NewTracker(layout())
	assert.Equal(t, interaction.PhaseIdle, tr.Phase())

	tr.PointerDown(7, interaction.Point{X: 150, Y: 300})
	require.Equal(t, interaction.PhaseDragging, tr.Phase())

	tr.PointerMove(interaction.Point{X: 160, Y: 200})
	tr.PointerMove(interaction.Point{X: 250, Y: 50})
	id, pos, ok := tr.Dragged()
	require.True(t, ok)
	assert.Equal(t, 7, id)
	assert.Equal(t, interaction.Point{X: 250, Y: 50}, pos)

	h, ok := tr.Hover()
	assert.True(t, ok)
	assert.Equal(t, engine.HabitatSoil, h)

	action, ok := tr.PointerUp(interaction.Point{X: 250, Y: 50})
	require.True(t, ok)
	assert.Equal(t, engine.Play(7, engine.HabitatSoil), action)
	assert.Equal(t, interaction.PhaseIdle, tr.Phase())
	_, _, ok = tr.Dragged()
	assert.False(t, ok)
}

func TestTrackerReleaseOutsideZones(t *testing.T) {
	tr := interaction.NewTracker(layout())
	tr.PointerDown(3, interaction.Point{X: 10, Y: 400})
	tr.PointerMove(interaction.Point{X: 50, Y: 50})

	_, ok := tr.PointerUp(interaction.Point{X: 500, Y: 500})
	assert.False(t, ok)
	assert.Equal(t, interaction.PhaseIdle, tr.Phase())
}

func TestTrackerOverlapUsesFixedOrder(t *testing.T) {
	zones := []interaction.Zone{
		{Habitat: engine.HabitatSoil, Bounds: interaction.Rect{X: 0, Y: 0, W: 100, H: 100}},
		{Habitat: engine.HabitatForest, Bounds: interaction.Rect{X: 50, Y: 50, W: 100, H: 100}},
	}
	tr := interaction.NewTracker(zones)
	tr.PointerDown(1, interaction.Point{})
	action, ok := tr.PointerUp(interaction.Point{X: 75, Y: 75})
	require.True(t, ok)
	assert.Equal(t, engine.HabitatForest, action.Habitat)
}

func TestTrackerIgnoresOutOfPhaseEvents(t *testing.T) {
	tr := interaction.NewTracker(layout())

	tr.PointerMove(interaction.Point{X: 50, Y: 50})
	assert.Equal(t, interaction.PhaseIdle, tr.Phase())
	_, ok := tr.PointerUp(interaction.Point{X: 50, Y: 50})
	assert.False(t, ok)

	tr.PointerDown(1, interaction.Point{})
	tr.PointerDown(2, interaction.Point{X: 5, Y: 5})
	id, _, _ := tr.Dragged()
	assert.Equal(t, 1, id)
}

func TestTrackerEmitsWithoutLegalityCheck(t *testing.T) {
	s := engine.State{Nutrients: 0, Hand: []engine.Card{{ID: 1, Template: engine.Template{
		Name: "Morel", Habitat: engine.HabitatSoil, Cost: 3, Points: 4,
	}}}}

	tr := interaction.NewTracker(layout())
	tr.PointerDown(1, interaction.Point{})
	action, ok := tr.PointerUp(interaction.Point{X: 250, Y: 10})
	require.True(t, ok)

	assert.Equal(t, s, engine.Apply(s, action))
}

func TestRectContainsEdges(t *testing.T) {
	r := interaction.Rect{X: 10, Y: 10, W: 10, H: 10}
	assert.True(t, r.Contains(interaction.Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(interaction.Point{X: 20, Y: 20}))
	assert.False(t, r.Contains(interaction.Point{X: 20.5, Y: 15}))
}

func TestTrackerReset(t *testing.T) {
	tr := interaction.NewTracker(layout())
	tr.PointerDown(4, interaction.Point{X: 10, Y: 10})
	tr.Reset()
	assert.Equal(t, interaction.PhaseIdle, tr.Phase())

	_, ok := tr.PointerUp(interaction.Point{X: 10, Y: 10})
	assert.False(t, ok)
}
