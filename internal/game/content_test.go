package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped content file must always load and validate.
func TestLoadShippedContent(t *testing.T) {
	u, err := LoadUniverse("../../orrery.yaml")
	require.NoError(t, err)

	assert.NotEmpty(t, u.Disks)
	assert.NotEmpty(t, u.Cards)
	assert.NotEmpty(t, u.Technologies)
	assert.Equal(t, "terra", u.HomePlanet().Key)
}

func TestLoadUniverseMissingFile(t *testing.T) {
	_, err := LoadUniverse("no_such_file.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsBrokenContent(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(u *Universe)
	}{
		{"no disks", func(u *Universe) { u.Disks = nil }},
		{"no home planet", func(u *Universe) { u.Planets[0].Home = false }},
		{"two home planets", func(u *Universe) { u.Planets[1].Home = true }},
		{"planet without a cell", func(u *Universe) {
			u.Planets = append(u.Planets, PlanetDef{Key: "ghost", Name: "Ghost"})
		}},
		{"cell sector out of range", func(u *Universe) {
			u.Disks[0].Cells[0].Sector = 99
		}},
		{"cell references unknown planet", func(u *Universe) {
			u.Disks[0].Cells = append(u.Disks[0].Cells, CellDef{Sector: 2, Planet: "ghost"})
		}},
		{"unknown technology effect", func(u *Universe) {
			u.Technologies[0].Effect = "time_travel"
		}},
		{"disk on bad ring", func(u *Universe) { u.Disks[0].Ring = 7 }},
		{"missing balance caps", func(u *Universe) { u.Balance.MediaCap = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := testUniverse()
			tt.corrupt(u)
			assert.Error(t, u.Validate())
		})
	}
}

func TestNewGameSetsTheTable(t *testing.T) {
	u := testUniverse()
	u.Balance.StartingCards = 2
	s := NewGame(u, []string{"Ada", "Blaise", "Curie"}, rand.New(rand.NewSource(7)))

	require.Len(t, s.Players, 3)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 1, s.Board.NextRing)

	for i, pl := range s.Players {
		assert.Equal(t, u.Balance.StartingCredits, pl.Credits, "seat %d", i)
		assert.Equal(t, u.Balance.StartingEnergy, pl.Energy, "seat %d", i)
		assert.Len(t, pl.Hand, 2, "seat %d", i)
		assert.False(t, pl.HasPassed)
	}

	// 6 cards - 3x2 hands leaves nothing for the row in this fixture.
	assert.Len(t, s.Row, 0)
	assert.Len(t, s.Deck, 0)

	// Same seed, same table.
	again := NewGame(u, []string{"Ada", "Blaise", "Curie"}, rand.New(rand.NewSource(7)))
	assert.Equal(t, s.Players[0].Hand, again.Players[0].Hand)
}
