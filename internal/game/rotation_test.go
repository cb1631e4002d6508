package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The spec'd scenario: ring 1 at 0 degrees, a probe at sector 3 of an
// eight-sector ring. One rotation leaves the angle at -45 and relabels the
// probe so its absolute cell is exactly what it was.
func TestRotationKeepsAbsoluteCellFixed(t *testing.T) {
	s := newTestGame()
	probe := addProbe(s, "player-1", RelativePosition{Ring: 1, Disk: "inner_track", Sector: 3})
	before := s.ProbeAbsolute(probe)

	s.ApplyRotation(1)

	assert.Equal(t, -45, s.Board.Rotation.Angles[1])
	probe = s.FindProbe(probe.ID)
	assert.Equal(t, 4, probe.Position.Sector, "relative label moves")
	assert.Equal(t, before, s.ProbeAbsolute(probe), "absolute cell does not")
}

func TestOuterRotationDragsNestedRings(t *testing.T) {
	s := newTestGame()
	inner := addProbe(s, "player-1", RelativePosition{Ring: 1, Disk: "inner_track", Sector: 5})
	mid := addProbe(s, "player-2", RelativePosition{Ring: 2, Disk: "mid_track", Sector: 1})
	innerBefore := s.ProbeAbsolute(inner)
	midBefore := s.ProbeAbsolute(mid)

	s.ApplyRotation(3)

	assert.Equal(t, -45, s.Board.Rotation.Angles[1])
	assert.Equal(t, -45, s.Board.Rotation.Angles[2])
	assert.Equal(t, -45, s.Board.Rotation.Angles[3])

	assert.Equal(t, innerBefore, s.ProbeAbsolute(s.FindProbe(inner.ID)))
	assert.Equal(t, midBefore, s.ProbeAbsolute(s.FindProbe(mid.ID)))
}

func TestInnerRotationLeavesOuterRingsAlone(t *testing.T) {
	s := newTestGame()
	outer := addProbe(s, "player-1", RelativePosition{Ring: 3, Disk: "outer_track", Sector: 2})

	s.ApplyRotation(1)

	assert.Equal(t, -45, s.Board.Rotation.Angles[1])
	assert.Equal(t, 0, s.Board.Rotation.Angles[2])
	assert.Equal(t, 0, s.Board.Rotation.Angles[3])
	assert.Equal(t, 2, s.FindProbe(outer.ID).Position.Sector, "untouched ring, untouched label")
}

// Fixed-point property: any sequence of rotations not touching ring L
// leaves both the relative and absolute coordinates of a ring-L probe
// unchanged; rotations touching it change the label only.
func TestRotationFixedPointProperty(t *testing.T) {
	s := newTestGame()
	probe := addProbe(s, "player-1", RelativePosition{Ring: 3, Disk: "outer_track", Sector: 6})
	abs := s.ProbeAbsolute(probe)

	for i := 0; i < 5; i++ {
		s.ApplyRotation(1)
		s.ApplyRotation(2)
	}
	probe = s.FindProbe(probe.ID)
	assert.Equal(t, 6, probe.Position.Sector)
	assert.Equal(t, abs, s.ProbeAbsolute(probe))

	s.ApplyRotation(3)
	probe = s.FindProbe(probe.ID)
	assert.NotEqual(t, 6, probe.Position.Sector)
	assert.Equal(t, abs, s.ProbeAbsolute(probe))
}

func TestAnglesWrapAfterFullTurn(t *testing.T) {
	s := newTestGame()
	for i := 0; i < 8; i++ {
		s.ApplyRotation(1)
	}
	assert.Equal(t, 0, s.Board.Rotation.Angles[1])

	s.ApplyRotation(1)
	assert.Equal(t, -45, s.Board.Rotation.Angles[1])
}

func TestRotateBoardCyclesSchedule(t *testing.T) {
	s := newTestGame()
	require.Equal(t, 1, s.Board.NextRing)

	s.rotateBoard()
	assert.Equal(t, 2, s.Board.NextRing)
	s.rotateBoard()
	assert.Equal(t, 3, s.Board.NextRing)
	s.rotateBoard()
	assert.Equal(t, 1, s.Board.NextRing, "schedule wraps 1 -> 2 -> 3 -> 1")
}

func TestRotationNarratesAffectedProbes(t *testing.T) {
	s := newTestGame()
	// Park the probe so that after one step of ring 1 its absolute cell is
	// still Terra's: launch placement, sector 1 at angle 0.
	addProbe(s, "player-1", RelativePosition{Ring: 1, Disk: "inner_track", Sector: 1})

	log := s.ApplyRotation(1)
	require.Len(t, log, 1)
	assert.Contains(t, log[0], "terra")
}

func TestApplyRotationRejectsBadRing(t *testing.T) {
	s := newTestGame()
	assert.Panics(t, func() { s.ApplyRotation(0) })
	assert.Panics(t, func() { s.ApplyRotation(4) })
}
