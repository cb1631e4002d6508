/*
Package game
File: board.go
Description:
    The position model: pure geometry over the nested rotating rings.
    Converts ring-relative coordinates plus the current rotation angles into
    absolute board coordinates, looks up static cell contents, and decides
    adjacency for movement.

    Out-of-range disks and sectors are programmer errors and panic; player
    input must be validated before it reaches these functions.
*/

package game

import "fmt"

// Disk returns the disk definition for a key, or nil if unknown.
func (u *Universe) Disk(key string) *DiskDef {
	for i := range u.Disks {
		if u.Disks[i].Key == key {
			return &u.Disks[i]
		}
	}
	return nil
}

// Planet returns the planet definition for a key, or nil if unknown.
func (u *Universe) Planet(key string) *PlanetDef {
	for i := range u.Planets {
		if u.Planets[i].Key == key {
			return &u.Planets[i]
		}
	}
	return nil
}

// Card returns the card definition for a key, or nil if unknown.
func (u *Universe) Card(key string) *CardDef {
	for i := range u.Cards {
		if u.Cards[i].Key == key {
			return &u.Cards[i]
		}
	}
	return nil
}

// Technology returns the technology definition for a key, or nil if unknown.
func (u *Universe) Technology(key string) *TechDef {
	for i := range u.Technologies {
		if u.Technologies[i].Key == key {
			return &u.Technologies[i]
		}
	}
	return nil
}

// HomePlanet returns the planet probes launch from.
func (u *Universe) HomePlanet() *PlanetDef {
	for i := range u.Planets {
		if u.Planets[i].Home {
			return &u.Planets[i]
		}
	}
	panic("universe: no home planet defined")
}

// mustDisk is the geometry-side disk lookup: unknown keys are fatal.
func (u *Universe) mustDisk(key string) *DiskDef {
	d := u.Disk(key)
	if d == nil {
		panic(fmt.Sprintf("geometry: unknown disk %q", key))
	}
	return d
}

// wrapSector normalizes a 1-based sector index onto 1..n, handling negative
// values from backward rotation steps.
func wrapSector(sector, n int) int {
	s := (sector - 1) % n
	if s < 0 {
		s += n
	}
	return s + 1
}

// Absolute converts a relative position into the fixed frame under the given
// rotation: the ring's angle divided by AngleStep is added to the sector,
// modulo the disk's sector count. Ring 0 positions pass through unchanged.
func (u *Universe) Absolute(rel RelativePosition, rot RotationState) AbsolutePosition {
	d := u.mustDisk(rel.Disk)
	if rel.Ring != d.Ring {
		panic(fmt.Sprintf("geometry: disk %q is on ring %d, position claims ring %d", rel.Disk, d.Ring, rel.Ring))
	}
	if rel.Sector < 1 || rel.Sector > d.Sectors {
		panic(fmt.Sprintf("geometry: sector %d out of range 1..%d on disk %q", rel.Sector, d.Sectors, rel.Disk))
	}
	if rel.Ring == 0 {
		return AbsolutePosition{Disk: rel.Disk, Sector: rel.Sector}
	}
	steps := rot.Angles[rel.Ring] / AngleStep
	return AbsolutePosition{
		Disk:   rel.Disk,
		Sector: wrapSector(rel.Sector+steps, d.Sectors),
	}
}

// ToRelative is the inverse of Absolute: it expresses an absolute cell in
// the current ring-local numbering of its disk.
func (u *Universe) ToRelative(abs AbsolutePosition, rot RotationState) RelativePosition {
	d := u.mustDisk(abs.Disk)
	if abs.Sector < 1 || abs.Sector > d.Sectors {
		panic(fmt.Sprintf("geometry: sector %d out of range 1..%d on disk %q", abs.Sector, d.Sectors, abs.Disk))
	}
	steps := rot.Angles[d.Ring] / AngleStep
	return RelativePosition{
		Ring:   d.Ring,
		Disk:   abs.Disk,
		Sector: wrapSector(abs.Sector-steps, d.Sectors),
	}
}

// CellAt returns the static contents of an absolute cell. Cells without
// listed contents are empty space; out-of-range input is fatal.
func (u *Universe) CellAt(disk string, absSector int) Cell {
	d := u.mustDisk(disk)
	if absSector < 1 || absSector > d.Sectors {
		panic(fmt.Sprintf("geometry: sector %d out of range 1..%d on disk %q", absSector, d.Sectors, disk))
	}
	for _, cd := range d.Cells {
		if cd.Sector == absSector {
			return Cell{
				HasAsteroid: cd.Asteroid,
				HasComet:    cd.Comet,
				PlanetKey:   cd.Planet,
				SatelliteOf: cd.SatelliteOf,
			}
		}
	}
	return Cell{}
}

// Locate finds the absolute cell of a named object: a planet key or a
// satellite's planet key prefixed lookup is not needed here, planets and
// their anchor cells are static. Returns false if the object is unknown.
// The rotation argument is part of the contract for ring-anchored objects;
// cell contents are defined in the fixed frame, so it does not affect the
// result today.
func (u *Universe) Locate(objectID string, _ RotationState) (AbsolutePosition, bool) {
	for _, d := range u.Disks {
		for _, cd := range d.Cells {
			if cd.Planet == objectID {
				return AbsolutePosition{Disk: d.Key, Sector: cd.Sector}, true
			}
		}
	}
	return AbsolutePosition{}, false
}

// SatelliteCells returns every absolute cell that is a satellite of the
// given planet.
func (u *Universe) SatelliteCells(planetKey string) []AbsolutePosition {
	var out []AbsolutePosition
	for _, d := range u.Disks {
		for _, cd := range d.Cells {
			if cd.SatelliteOf == planetKey {
				out = append(out, AbsolutePosition{Disk: d.Key, Sector: cd.Sector})
			}
		}
	}
	return out
}

// diskIndex returns a disk's position in the innermost-first disk order.
func (u *Universe) diskIndex(key string) int {
	for i := range u.Disks {
		if u.Disks[i].Key == key {
			return i
		}
	}
	panic(fmt.Sprintf("geometry: unknown disk %q", key))
}

// Adjacent reports whether two absolute cells are one movement step apart:
// either one sector along the same disk (wrapping), or one radial step
// between neighboring disks at the same sector number.
func (u *Universe) Adjacent(a, b AbsolutePosition) bool {
	if a.Disk == b.Disk {
		d := u.mustDisk(a.Disk)
		diff := a.Sector - b.Sector
		if diff < 0 {
			diff = -diff
		}
		return diff == 1 || diff == d.Sectors-1
	}
	ai, bi := u.diskIndex(a.Disk), u.diskIndex(b.Disk)
	gap := ai - bi
	if gap != 1 && gap != -1 {
		return false
	}
	// Radial steps require the sector numbering to line up; shipped content
	// uses the same sector count on every disk.
	if u.Disks[ai].Sectors != u.Disks[bi].Sectors {
		return false
	}
	return a.Sector == b.Sector
}

// ProbeAbsolute returns a probe's current absolute cell. Only valid for
// probes that still hold a ring coordinate.
func (s *GameState) ProbeAbsolute(p *Probe) AbsolutePosition {
	if p.Position == nil {
		panic(fmt.Sprintf("geometry: probe %s has no ring coordinate in state %s", p.ID, p.State))
	}
	return s.Universe.Absolute(*p.Position, s.Board.Rotation)
}

// FindProbe returns the probe with the given ID, or nil.
func (s *GameState) FindProbe(id string) *Probe {
	for i := range s.Board.Probes {
		if s.Board.Probes[i].ID == id {
			return &s.Board.Probes[i]
		}
	}
	return nil
}

// FindPlayer returns the player with the given ID and their seat index,
// or nil and -1.
func (s *GameState) FindPlayer(id string) (*Player, int) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], i
		}
	}
	return nil, -1
}
