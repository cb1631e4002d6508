/*
Package game
File: probe.go
Description:
    The probe lifecycle state machine: launch, step-wise movement, orbit and
    landing. Each function here validates a fully-specified command against
    an already-cloned snapshot and either applies it or returns a RuleError
    leaving the clone for the caller to discard.

    Movement is deliberately at-most-one-step atomic: a path of several
    cells is driven by the caller issuing one step per cell, and a rejected
    later step leaves earlier steps applied. See ActionMove in actions.go.
*/

package game

import "fmt"

// inSystemProbes counts a player's probes still in play on or over the
// board. Landed probes are parked on their planet and no longer count
// against the cap.
func inSystemProbes(s *GameState, playerID string) int {
	n := 0
	for _, p := range s.Board.Probes {
		if p.Owner == playerID && p.State != ProbeLanded {
			n++
		}
	}
	return n
}

// probeCap is the simultaneous probe limit, raised by extra-probe
// technologies the player owns.
func probeCap(s *GameState, pl *Player) int {
	cap := s.Universe.Balance.ProbeLimit
	for _, key := range pl.Technologies {
		if t := s.Universe.Technology(key); t != nil && t.Effect == TechExtraProbe {
			cap += t.Value
		}
	}
	return cap
}

// hasTech reports whether the player owns a technology with the given
// rule-bending effect.
func hasTech(s *GameState, pl *Player, effect string) bool {
	for _, key := range pl.Technologies {
		if t := s.Universe.Technology(key); t != nil && t.Effect == effect {
			return true
		}
	}
	return false
}

// launchProbe creates a new probe at the home planet's current absolute
// cell, expressed as a relative coordinate on whichever ring that cell
// belongs to, and debits the launch cost.
func launchProbe(s *GameState, pl *Player) ([]string, *RuleError) {
	bal := s.Universe.Balance

	// 1. Probe cap (base limit, raised by technology).
	if inSystemProbes(s, pl.ID) >= probeCap(s, pl) {
		return nil, ruleErrf(CodeProbeLimit, "player %s already fields %d probes", pl.ID, inSystemProbes(s, pl.ID))
	}

	// 2. Credits, unless a free-launch technology waives the cost entirely.
	cost := bal.LaunchCost
	if hasTech(s, pl, TechFreeLaunch) {
		cost = 0
	}
	if pl.Credits < cost {
		return nil, ruleErrf(CodeInsufficientCredits, "launch costs %d credits, player %s has %d", cost, pl.ID, pl.Credits)
	}

	// 3. Place the probe over the home planet.
	home := s.Universe.HomePlanet()
	abs, ok := s.Universe.Locate(home.Key, s.Board.Rotation)
	if !ok {
		panic(fmt.Sprintf("geometry: home planet %q has no cell", home.Key))
	}
	rel := s.Universe.ToRelative(abs, s.Board.Rotation)

	pl.Credits -= cost
	s.Seq++
	probe := Probe{
		ID:       fmt.Sprintf("probe-%d", s.Seq),
		Owner:    pl.ID,
		State:    ProbeInTransit,
		Position: &rel,
	}
	s.Board.Probes = append(s.Board.Probes, probe)
	pl.Probes = append(pl.Probes, probe.ID)

	return []string{fmt.Sprintf("%s launched from %s", probe.ID, home.Name)}, nil
}

// moveProbeOneStep advances a probe one adjacent cell. Cost is 1 energy,
// +1 when the cell being left has an asteroid field; banked free steps can
// offset up to the full cost. Entering a comet cell or an undiscovered
// planet cell grants media coverage.
func moveProbeOneStep(s *GameState, pl *Player, probeID string, target RelativePosition, useFreeStep bool) ([]string, *RuleError) {
	probe := s.FindProbe(probeID)
	if probe == nil {
		return nil, ruleErrf(CodeUnknownProbe, "no probe %q", probeID)
	}
	if probe.Owner != pl.ID {
		return nil, ruleErrf(CodeNotProbeOwner, "probe %s belongs to %s", probeID, probe.Owner)
	}
	if probe.State != ProbeInTransit {
		return nil, ruleErrf(CodeWrongProbeState, "probe %s is %s, only in-transit probes move", probeID, probe.State)
	}

	// 1. The target is player input: check it before the geometry layer,
	// which treats bad coordinates as fatal.
	d := s.Universe.Disk(target.Disk)
	if d == nil {
		return nil, ruleErrf(CodeBadTarget, "unknown disk %q", target.Disk)
	}
	if target.Ring != d.Ring || target.Sector < 1 || target.Sector > d.Sectors {
		return nil, ruleErrf(CodeBadTarget, "sector %d / ring %d invalid for disk %q", target.Sector, target.Ring, target.Disk)
	}

	from := s.ProbeAbsolute(probe)
	to := s.Universe.Absolute(target, s.Board.Rotation)
	if !s.Universe.Adjacent(from, to) {
		return nil, ruleErrf(CodeNotAdjacent, "%s/%d is not adjacent to %s/%d", to.Disk, to.Sector, from.Disk, from.Sector)
	}

	// 2. Step cost: 1 energy, +1 to climb out of an asteroid field.
	cost := 1
	if s.Universe.CellAt(from.Disk, from.Sector).HasAsteroid {
		cost++
	}
	if useFreeStep {
		free := min(cost, pl.FreeSteps)
		cost -= free
		pl.FreeSteps -= free
	}
	if pl.Energy < cost {
		return nil, ruleErrf(CodeInsufficientEnergy, "step costs %d energy, player %s has %d", cost, pl.ID, pl.Energy)
	}
	pl.Energy -= cost

	// 3. Commit the step.
	*probe.Position = target
	events := []string{fmt.Sprintf("%s moved to %s/%d", probe.ID, to.Disk, to.Sector)}

	// 4. Bonus triggers at the destination.
	cell := s.Universe.CellAt(to.Disk, to.Sector)
	if cell.HasComet {
		gainMedia(s, pl, s.Universe.Balance.CometMediaGain)
		events = append(events, fmt.Sprintf("%s swept a comet tail, media +%d", pl.ID, s.Universe.Balance.CometMediaGain))
	}
	if cell.HasPlanet() && !s.Board.Discovered[cell.PlanetKey] {
		s.Board.Discovered[cell.PlanetKey] = true
		gainMedia(s, pl, s.Universe.Balance.DiscoveryMediaGain)
		events = append(events, fmt.Sprintf("%s reached %s first, media +%d", pl.ID, cell.PlanetKey, s.Universe.Balance.DiscoveryMediaGain))
	}
	return events, nil
}

// coLocated reports whether the probe's absolute cell is the planet's cell
// or one of its satellite cells.
func coLocated(s *GameState, probe *Probe, planet *PlanetDef) bool {
	abs := s.ProbeAbsolute(probe)
	if cell, ok := s.Universe.Locate(planet.Key, s.Board.Rotation); ok && cell == abs {
		return true
	}
	for _, sat := range s.Universe.SatelliteCells(planet.Key) {
		if sat == abs {
			return true
		}
	}
	return false
}

// orbitProbe transitions a co-located in-transit probe into orbit around a
// planet. The probe gives up its ring coordinate and is indexed by the
// planet from here on.
func orbitProbe(s *GameState, pl *Player, probeID, planetKey string) ([]string, *RuleError) {
	probe := s.FindProbe(probeID)
	if probe == nil {
		return nil, ruleErrf(CodeUnknownProbe, "no probe %q", probeID)
	}
	if probe.Owner != pl.ID {
		return nil, ruleErrf(CodeNotProbeOwner, "probe %s belongs to %s", probeID, probe.Owner)
	}
	planet := s.Universe.Planet(planetKey)
	if planet == nil {
		return nil, ruleErrf(CodeUnknownPlanet, "no planet %q", planetKey)
	}
	if probe.State != ProbeInTransit {
		return nil, ruleErrf(CodeWrongProbeState, "probe %s is %s, only in-transit probes enter orbit", probeID, probe.State)
	}
	if !coLocated(s, probe, planet) {
		return nil, ruleErrf(CodeNotCoLocated, "probe %s is not at %s or its satellites", probeID, planetKey)
	}

	bal := s.Universe.Balance
	if pl.Credits < bal.OrbitCreditCost {
		return nil, ruleErrf(CodeInsufficientCredits, "orbit costs %d credits, player %s has %d", bal.OrbitCreditCost, pl.ID, pl.Credits)
	}
	if pl.Energy < bal.OrbitEnergyCost {
		return nil, ruleErrf(CodeInsufficientEnergy, "orbit costs %d energy, player %s has %d", bal.OrbitEnergyCost, pl.ID, pl.Energy)
	}

	pl.Credits -= bal.OrbitCreditCost
	pl.Energy -= bal.OrbitEnergyCost
	probe.State = ProbeOrbiting
	probe.Planet = planet.Key
	probe.Position = nil

	return []string{fmt.Sprintf("%s entered orbit around %s", probe.ID, planet.Name)}, nil
}

// landProbe puts a probe down on a planet, either straight from transit
// (co-located) or from orbit around that planet. Landing is terminal and
// pays out the planet's landing bonus.
func landProbe(s *GameState, pl *Player, probeID, planetKey string) ([]string, *RuleError) {
	probe := s.FindProbe(probeID)
	if probe == nil {
		return nil, ruleErrf(CodeUnknownProbe, "no probe %q", probeID)
	}
	if probe.Owner != pl.ID {
		return nil, ruleErrf(CodeNotProbeOwner, "probe %s belongs to %s", probeID, probe.Owner)
	}
	planet := s.Universe.Planet(planetKey)
	if planet == nil {
		return nil, ruleErrf(CodeUnknownPlanet, "no planet %q", planetKey)
	}

	bal := s.Universe.Balance
	var cost int
	switch probe.State {
	case ProbeInTransit:
		if !coLocated(s, probe, planet) {
			return nil, ruleErrf(CodeNotCoLocated, "probe %s is not at %s or its satellites", probeID, planetKey)
		}
		cost = bal.LandingCost
	case ProbeOrbiting:
		if probe.Planet != planet.Key {
			return nil, ruleErrf(CodeWrongProbeState, "probe %s orbits %s, not %s", probeID, probe.Planet, planetKey)
		}
		cost = bal.LandingOrbitCost
	default:
		return nil, ruleErrf(CodeWrongProbeState, "probe %s already landed", probeID)
	}

	// Cheaper-landing technology shaves the price, never below zero.
	for _, key := range pl.Technologies {
		if t := s.Universe.Technology(key); t != nil && t.Effect == TechCheapLanding {
			cost -= t.Value
		}
	}
	if cost < 0 {
		cost = 0
	}
	if pl.Credits < cost {
		return nil, ruleErrf(CodeInsufficientCredits, "landing costs %d credits, player %s has %d", cost, pl.ID, pl.Credits)
	}

	pl.Credits -= cost
	probe.State = ProbeLanded
	probe.Planet = planet.Key
	probe.Position = nil

	events := []string{fmt.Sprintf("%s landed on %s", probe.ID, planet.Name)}
	if !planet.Bonus.IsZero() {
		applyGains(s, pl, planet.Bonus, "landing")
		events = append(events, fmt.Sprintf("%s collected the %s landing bonus", pl.ID, planet.Name))
	}
	return events, nil
}
