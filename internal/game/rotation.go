/*
Package game
File: rotation.go
Description:
    Rotation consistency. Rotating ring N drags every ring nested inside it
    (levels < N) by the same 45-degree step, because an outer plate turning
    its mechanism also turns the plates seated inside it. Rotating an inner
    ring alone never moves an outer one.

    The load-bearing invariant of the whole board model lives here:
    rotation never moves a probe to a new physical cell; it only changes
    which ring-relative label currently points at that cell. After the
    angles advance, every probe sitting on a moved ring has its relative
    sector recomputed so its absolute cell reads exactly as before.
*/

package game

import "fmt"

// ApplyRotation advances ringLevel (and every ring nested inside it) by one
// step, rewrites affected probe coordinates, and returns a human-readable
// log of what slid under which probe. The log is narration for the
// presentation layer; callers may ignore it.
//
// ApplyRotation mutates the board it is given: callers inside the engine
// always operate on a cloned snapshot.
func (s *GameState) ApplyRotation(ringLevel int) []string {
	if ringLevel < 1 || ringLevel > MaxRingLevel {
		panic(fmt.Sprintf("rotation: ring level %d out of range 1..%d", ringLevel, MaxRingLevel))
	}

	board := &s.Board

	// 1. Advance the angles. One trigger = one 45-degree step, always the
	// same direction, wrapping mod 360.
	for level := 1; level <= ringLevel; level++ {
		board.Rotation.Angles[level] -= AngleStep
		if board.Rotation.Angles[level] <= -360 {
			board.Rotation.Angles[level] += 360
		}
	}

	// 2. Re-label every probe riding a moved ring. The angle lost one step,
	// so the relative sector gains one: the absolute cell is unchanged.
	var log []string
	for i := range board.Probes {
		p := &board.Probes[i]
		if p.Position == nil || p.Position.Ring < 1 || p.Position.Ring > ringLevel {
			continue
		}
		d := s.Universe.mustDisk(p.Position.Disk)
		p.Position.Sector = wrapSector(p.Position.Sector+1, d.Sectors)

		abs := s.ProbeAbsolute(p)
		cell := s.Universe.CellAt(abs.Disk, abs.Sector)
		switch {
		case cell.HasPlanet():
			log = append(log, fmt.Sprintf("probe %s holds station over %s as ring %d turns", p.ID, cell.PlanetKey, p.Position.Ring))
		default:
			log = append(log, fmt.Sprintf("probe %s now reads sector %d on %s", p.ID, p.Position.Sector, p.Position.Disk))
		}
	}
	return log
}

// rotateBoard is the single shared trigger path for board rotation: the
// first pass of a round and researching a technology both come through
// here, and must stay behaviorally identical. It rotates the ring scheduled
// next and advances the schedule 1 -> 2 -> 3 -> 1.
func (s *GameState) rotateBoard() []string {
	rotated := s.Board.NextRing
	log := s.ApplyRotation(rotated)
	s.Board.NextRing = s.Board.NextRing%MaxRingLevel + 1
	log = append(log, fmt.Sprintf("ring %d turned one step; ring %d is wound next", rotated, s.Board.NextRing))
	return log
}
