package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolutePassesThroughFixedFrame(t *testing.T) {
	u := testUniverse()
	rot := RotationState{}
	rot.Angles[1] = -90 // irrelevant to ring 0

	abs := u.Absolute(RelativePosition{Ring: 0, Disk: "frame_track", Sector: 2}, rot)
	assert.Equal(t, AbsolutePosition{Disk: "frame_track", Sector: 2}, abs)
}

func TestAbsoluteAppliesRotationSteps(t *testing.T) {
	u := testUniverse()

	tests := []struct {
		name   string
		angle  int
		sector int
		want   int
	}{
		{name: "no rotation", angle: 0, sector: 3, want: 3},
		{name: "one step back", angle: -45, sector: 3, want: 2},
		{name: "wraps below one", angle: -45, sector: 1, want: 8},
		{name: "three steps", angle: -135, sector: 8, want: 5},
		{name: "seven steps wraps", angle: -315, sector: 2, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := RotationState{}
			rot.Angles[1] = tt.angle
			abs := u.Absolute(RelativePosition{Ring: 1, Disk: "inner_track", Sector: tt.sector}, rot)
			assert.Equal(t, tt.want, abs.Sector)
			assert.Equal(t, "inner_track", abs.Disk)
		})
	}
}

func TestToRelativeInvertsAbsolute(t *testing.T) {
	u := testUniverse()
	for _, angle := range []int{0, -45, -135, -315} {
		rot := RotationState{}
		rot.Angles[2] = angle
		for sector := 1; sector <= 8; sector++ {
			rel := RelativePosition{Ring: 2, Disk: "mid_track", Sector: sector}
			abs := u.Absolute(rel, rot)
			assert.Equal(t, rel, u.ToRelative(abs, rot), "angle %d sector %d", angle, sector)
		}
	}
}

func TestCellAt(t *testing.T) {
	u := testUniverse()

	terra := u.CellAt("inner_track", 1)
	assert.Equal(t, "terra", terra.PlanetKey)
	assert.True(t, terra.HasPlanet())

	empty := u.CellAt("inner_track", 2)
	assert.Equal(t, Cell{}, empty)

	rock := u.CellAt("mid_track", 2)
	assert.True(t, rock.HasAsteroid)

	sat := u.CellAt("outer_track", 6)
	assert.Equal(t, "aurelia", sat.SatelliteOf)
	assert.False(t, sat.HasPlanet())
}

func TestLocate(t *testing.T) {
	u := testUniverse()

	abs, ok := u.Locate("rubicon", RotationState{})
	require.True(t, ok)
	assert.Equal(t, AbsolutePosition{Disk: "mid_track", Sector: 4}, abs)

	_, ok = u.Locate("planet_x", RotationState{})
	assert.False(t, ok)
}

func TestAdjacent(t *testing.T) {
	u := testUniverse()

	tests := []struct {
		name string
		a, b AbsolutePosition
		want bool
	}{
		{"same disk next sector", AbsolutePosition{"inner_track", 3}, AbsolutePosition{"inner_track", 4}, true},
		{"same disk wrap", AbsolutePosition{"inner_track", 8}, AbsolutePosition{"inner_track", 1}, true},
		{"same disk two apart", AbsolutePosition{"inner_track", 3}, AbsolutePosition{"inner_track", 5}, false},
		{"same cell", AbsolutePosition{"inner_track", 3}, AbsolutePosition{"inner_track", 3}, false},
		{"radial neighbour", AbsolutePosition{"inner_track", 4}, AbsolutePosition{"mid_track", 4}, true},
		{"radial skips a disk", AbsolutePosition{"inner_track", 4}, AbsolutePosition{"outer_track", 4}, false},
		{"radial misaligned", AbsolutePosition{"inner_track", 4}, AbsolutePosition{"mid_track", 5}, false},
		{"outer to frame", AbsolutePosition{"outer_track", 2}, AbsolutePosition{"frame_track", 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.Adjacent(tt.a, tt.b))
			assert.Equal(t, tt.want, u.Adjacent(tt.b, tt.a))
		})
	}
}

func TestGeometryPanicsOnProgrammerError(t *testing.T) {
	u := testUniverse()

	assert.Panics(t, func() {
		u.CellAt("no_such_disk", 1)
	})
	assert.Panics(t, func() {
		u.CellAt("inner_track", 9)
	})
	assert.Panics(t, func() {
		u.Absolute(RelativePosition{Ring: 1, Disk: "inner_track", Sector: 0}, RotationState{})
	})
	assert.Panics(t, func() {
		// Disk is on ring 2, position claims ring 1.
		u.Absolute(RelativePosition{Ring: 1, Disk: "mid_track", Sector: 3}, RotationState{})
	})
}
