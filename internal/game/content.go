/*
Package game
File: content.go
Description:
    Loads the 'orrery.yaml' content file and builds the initial GameState.
    The content file is the only place balance numbers, board cells, cards
    and technologies are defined; the rules code never hardcodes them.
*/

package game

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadUniverse reads and validates a content file.
func LoadUniverse(path string) (*Universe, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var u Universe
	if err := yaml.Unmarshal(f, &u); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Validate checks the content file for internal consistency. Anything that
// would later trip a geometry panic at runtime is rejected at load time.
func (u *Universe) Validate() error {
	if len(u.Disks) == 0 {
		return fmt.Errorf("content: no disks defined")
	}
	home := 0
	for _, p := range u.Planets {
		if p.Home {
			home++
		}
		if _, ok := u.Locate(p.Key, RotationState{}); !ok {
			return fmt.Errorf("content: planet %q has no board cell", p.Key)
		}
	}
	if home != 1 {
		return fmt.Errorf("content: expected exactly 1 home planet, found %d", home)
	}
	for _, d := range u.Disks {
		if d.Ring < 0 || d.Ring > MaxRingLevel {
			return fmt.Errorf("content: disk %q on invalid ring %d", d.Key, d.Ring)
		}
		if d.Sectors < 2 {
			return fmt.Errorf("content: disk %q needs at least 2 sectors", d.Key)
		}
		// One rotation step must equal exactly one sector arc, or the
		// relabeling math in rotation.go would drift.
		if d.Ring > 0 && d.Sectors*AngleStep != 360 {
			return fmt.Errorf("content: rotating disk %q needs %d sectors to match the %d-degree step", d.Key, 360/AngleStep, AngleStep)
		}
		for _, c := range d.Cells {
			if c.Sector < 1 || c.Sector > d.Sectors {
				return fmt.Errorf("content: disk %q cell sector %d out of range 1..%d", d.Key, c.Sector, d.Sectors)
			}
			if c.Planet != "" && u.Planet(c.Planet) == nil {
				return fmt.Errorf("content: disk %q references unknown planet %q", d.Key, c.Planet)
			}
			if c.SatelliteOf != "" && u.Planet(c.SatelliteOf) == nil {
				return fmt.Errorf("content: disk %q satellite of unknown planet %q", d.Key, c.SatelliteOf)
			}
		}
	}
	for _, t := range u.Technologies {
		switch t.Effect {
		case TechExtraProbe, TechFreeLaunch, TechCheapLanding, TechBonus:
		default:
			return fmt.Errorf("content: technology %q has unknown effect %q", t.Key, t.Effect)
		}
	}
	if u.Balance.MediaCap <= 0 || u.Balance.ProbeLimit <= 0 {
		return fmt.Errorf("content: balance is missing media_cap or probe_limit")
	}
	return nil
}

// NewGame builds the initial GameState for the given seats. The deck is
// shuffled with the caller's source so games are reproducible under test;
// after setup the engine is fully deterministic.
func NewGame(u *Universe, playerNames []string, rng *rand.Rand) *GameState {
	s := &GameState{
		Universe: u,
		Round:    1,
		Phase:    PhasePlaying,
		Board: Board{
			NextRing:   1,
			Discovered: make(map[string]bool),
		},
	}

	// 1. Seat the players with starting resources and revenue.
	for i, name := range playerNames {
		s.Players = append(s.Players, Player{
			ID:             fmt.Sprintf("player-%d", i+1),
			Name:           name,
			Credits:        u.Balance.StartingCredits,
			Energy:         u.Balance.StartingEnergy,
			RevenueCredits: u.Balance.RevenueCredits,
			RevenueEnergy:  u.Balance.RevenueEnergy,
			RevenueCards:   u.Balance.RevenueCards,
		})
	}

	// 2. Shuffle the deck.
	deck := make([]string, 0, len(u.Cards))
	for _, c := range u.Cards {
		deck = append(deck, c.Key)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	s.Deck = deck

	// 3. Deal opening hands and fill the shared card row.
	for i := range s.Players {
		DrawCards(s, s.Players[i].ID, u.Balance.StartingCards, "setup")
	}
	refillRow(s)

	return s
}
