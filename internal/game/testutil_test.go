package game

import (
	"fmt"
	"math/rand"
)

// testUniverse mirrors the shipped orrery.yaml in miniature: four disks of
// eight sectors (rings 1-3 plus the fixed frame), a home planet, two
// reachable planets, asteroid fields and comets.
func testUniverse() *Universe {
	return &Universe{
		Balance: GameBalance{
			StartingCredits:    5,
			StartingEnergy:     5,
			StartingCards:      0,
			RevenueCredits:     2,
			RevenueEnergy:      2,
			RevenueCards:       1,
			LaunchCost:         2,
			ProbeLimit:         3,
			OrbitCreditCost:    1,
			OrbitEnergyCost:    1,
			LandingCost:        3,
			LandingOrbitCost:   1,
			MediaCap:           10,
			DataCap:            5,
			CometMediaGain:     2,
			DiscoveryMediaGain: 1,
			CardRowSize:        2,
			ScoreMilestones:    []int{5, 10},
		},
		Disks: []DiskDef{
			{Key: "inner_track", Name: "Inner Track", Ring: 1, Sectors: 8, Cells: []CellDef{
				{Sector: 1, Planet: "terra"},
				{Sector: 5, Comet: true},
			}},
			{Key: "mid_track", Name: "Middle Track", Ring: 2, Sectors: 8, Cells: []CellDef{
				{Sector: 2, Asteroid: true},
				{Sector: 4, Planet: "rubicon"},
				{Sector: 6, Asteroid: true},
			}},
			{Key: "outer_track", Name: "Outer Track", Ring: 3, Sectors: 8, Cells: []CellDef{
				{Sector: 3, Comet: true},
				{Sector: 6, SatelliteOf: "aurelia"},
				{Sector: 7, Planet: "aurelia"},
			}},
			{Key: "frame_track", Name: "Frame Track", Ring: 0, Sectors: 8, Cells: []CellDef{
				{Sector: 2, Planet: "halcyon"},
				{Sector: 8, Asteroid: true},
			}},
		},
		Planets: []PlanetDef{
			{Key: "terra", Name: "Terra", Home: true},
			{Key: "rubicon", Name: "Rubicon", Bonus: Gains{Credits: 2, Score: 1}},
			{Key: "aurelia", Name: "Aurelia", Bonus: Gains{Media: 2, Score: 2}},
			{Key: "halcyon", Name: "Halcyon", Bonus: Gains{Energy: 2, Data: 1, Score: 3}},
		},
		Cards: []CardDef{
			{Key: "card_solar_sail", Name: "Solar Sail", Cost: 2, FreeSteps: 2},
			{Key: "card_crowd_funding", Name: "Crowd Funding", Cost: 2, Effect: Gains{Credits: 3}},
			{Key: "card_press_release", Name: "Press Release", Cost: 3, Effect: Gains{Media: 2}},
			{Key: "card_deep_scan", Name: "Deep Scan", Cost: 2, Effect: Gains{Data: 1, Cards: 1}},
			{Key: "card_archive_data", Name: "Archive Data", Cost: 3, Effect: Gains{Score: 1}},
			{Key: "card_battery_array", Name: "Battery Array", Cost: 2, Effect: Gains{Energy: 3}},
		},
		Technologies: []TechDef{
			{Key: "tech_deep_network", Name: "Deep Space Network", MediaCost: 4, Effect: TechExtraProbe, Value: 1},
			{Key: "tech_gravity_assist", Name: "Gravity Assist", MediaCost: 5, Effect: TechFreeLaunch},
			{Key: "tech_aerobraking", Name: "Aerobraking", MediaCost: 3, Effect: TechCheapLanding, Value: 1},
			{Key: "tech_telemetry", Name: "Telemetry Uplink", MediaCost: 2, Effect: TechBonus, Bonus: Gains{Data: 2, Energy: 1}},
		},
	}
}

// newTestGame seats two players on the test universe with a fixed shuffle.
func newTestGame() *GameState {
	return NewGame(testUniverse(), []string{"Ada", "Blaise"}, rand.New(rand.NewSource(1)))
}

// addProbe injects an in-transit probe for a player at the given relative
// position, bypassing launch costs.
func addProbe(s *GameState, playerID string, rel RelativePosition) *Probe {
	s.Seq++
	p := Probe{
		ID:       fmt.Sprintf("probe-%d", s.Seq),
		Owner:    playerID,
		State:    ProbeInTransit,
		Position: &rel,
	}
	s.Board.Probes = append(s.Board.Probes, p)
	pl, _ := s.FindPlayer(playerID)
	pl.Probes = append(pl.Probes, p.ID)
	return s.FindProbe(p.ID)
}

// mustApply runs an action that the test expects to succeed and returns the
// new snapshot.
func mustApply(s *GameState, a Action) *GameState {
	res := ExecuteAction(s, a)
	if !res.OK {
		panic(fmt.Sprintf("action %s unexpectedly failed: %v", a.Type, res.Err))
	}
	return res.State
}
