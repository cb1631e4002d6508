/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used throughout the Orrery engine.
    This file serves as the "schema" for the application, mapping directly to
    the YAML content file ('orrery.yaml') and JSON API responses.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// MaxRingLevel is the outermost rotating ring. Level 0 is the fixed frame.
const MaxRingLevel = 3

// AngleStep is the rotation granularity in degrees. Every ring angle is a
// multiple of this, and one rotation trigger turns a ring by exactly one step.
const AngleStep = 45

// ProbeState is the lifecycle state of an exploration probe.
// Transitions only ever move forward: InTransit -> Orbiting -> Landed,
// or InTransit -> Landed directly when co-located with the target planet.
type ProbeState string

const (
	ProbeInTransit ProbeState = "in_transit" // has a ring coordinate, may move
	ProbeOrbiting  ProbeState = "orbiting"   // attached to a planet, no ring coordinate
	ProbeLanded    ProbeState = "landed"     // terminal
)

// RelativePosition is a coordinate expressed in a ring's own, unrotated
// sector numbering. Ring 0 positions are on the fixed frame and are never
// affected by rotation.
type RelativePosition struct {
	Ring   int    `json:"ring"`   // 0..MaxRingLevel
	Disk   string `json:"disk"`   // disk (orbit track) key
	Sector int    `json:"sector"` // 1..N for the disk's sector count, wraps
}

// AbsolutePosition is a coordinate in the fixed frame: the relative sector
// rotated by the owning ring's current angle. Two probes occupy the same
// physical cell iff their AbsolutePosition values are equal.
type AbsolutePosition struct {
	Disk   string `json:"disk"`
	Sector int    `json:"sector"`
}

// RotationState holds the current orientation of each rotating ring.
// Angles[0] is always 0 (the fixed frame). Each other entry is a multiple
// of -AngleStep: rotation only ever runs one direction, wrapping mod 360.
type RotationState struct {
	Angles [MaxRingLevel + 1]int `json:"angles"`
}

// Cell describes the static contents of one board cell. Cells never change
// at runtime; only which probes map onto them changes as rings rotate.
type Cell struct {
	HasAsteroid bool   `json:"has_asteroid"`           // leaving this cell costs +1 energy
	HasComet    bool   `json:"has_comet"`              // entering grants media coverage
	PlanetKey   string `json:"planet_key,omitempty"`   // planet occupying this cell, if any
	SatelliteOf string `json:"satellite_of,omitempty"` // planet this cell is a satellite of, if any
}

// HasPlanet reports whether the cell carries a planet.
func (c Cell) HasPlanet() bool { return c.PlanetKey != "" }

// CellDef is the sparse YAML form of a Cell: only non-empty cells are listed.
type CellDef struct {
	Sector      int    `yaml:"sector" json:"sector"`
	Asteroid    bool   `yaml:"asteroid" json:"asteroid"`
	Comet       bool   `yaml:"comet" json:"comet"`
	Planet      string `yaml:"planet" json:"planet,omitempty"`
	SatelliteOf string `yaml:"satellite_of" json:"satellite_of,omitempty"`
}

// DiskDef defines one orbit track. Disks are listed innermost-first; radial
// movement steps between disks that are adjacent in that order.
type DiskDef struct {
	Key     string    `yaml:"key" json:"key"`         // unique ID (e.g. "inner_belt")
	Name    string    `yaml:"name" json:"name"`       // display name
	Ring    int       `yaml:"ring" json:"ring"`       // ring level carrying this track (0..3)
	Sectors int       `yaml:"sectors" json:"sectors"` // sector count (360 / AngleStep in shipped content)
	Cells   []CellDef `yaml:"cells" json:"cells"`     // sparse list of non-empty cells
}

// Gains is a bundle of resource deltas granted by cards, technologies,
// landing tiles and round revenue. Cards means "draw this many".
type Gains struct {
	Credits int `yaml:"credits" json:"credits"`
	Energy  int `yaml:"energy" json:"energy"`
	Media   int `yaml:"media" json:"media"`
	Data    int `yaml:"data" json:"data"`
	Cards   int `yaml:"cards" json:"cards"`
	Score   int `yaml:"score" json:"score"`
}

// IsZero reports whether the bundle grants nothing.
func (g Gains) IsZero() bool { return g == Gains{} }

// PlanetDef defines a named planet anchored to a board cell.
type PlanetDef struct {
	Key   string `yaml:"key" json:"key"`
	Name  string `yaml:"name" json:"name"`
	Home  bool   `yaml:"home" json:"home"`   // probes launch from the home planet's cell
	Bonus Gains  `yaml:"bonus" json:"bonus"` // granted on landing
}

// CardDef defines a playable card. Playing a card applies Effect and grants
// FreeSteps; discarding it through a trade grants FreeSteps only.
type CardDef struct {
	Key       string `yaml:"key" json:"key"`
	Name      string `yaml:"name" json:"name"`
	Cost      int    `yaml:"cost" json:"cost"` // purchase price in credits
	Effect    Gains  `yaml:"effect" json:"effect"`
	FreeSteps int    `yaml:"free_steps" json:"free_steps"`
}

// Technology effect kinds. A technology either bends a rule (probe cap,
// launch cost, landing cost) or simply grants a resource bundle.
const (
	TechExtraProbe   = "extra_probe"   // raises the simultaneous probe cap by Value
	TechFreeLaunch   = "free_launch"   // waives the launch credit cost entirely
	TechCheapLanding = "cheap_landing" // reduces landing cost by Value (floor 0)
	TechBonus        = "bonus"         // grants Bonus once on research
)

// TechDef defines a researchable technology.
type TechDef struct {
	Key       string `yaml:"key" json:"key"`
	Name      string `yaml:"name" json:"name"`
	MediaCost int    `yaml:"media_cost" json:"media_cost"` // research price in media coverage
	Effect    string `yaml:"effect" json:"effect"`         // one of the Tech* kinds
	Value     int    `yaml:"value" json:"value"`           // magnitude for rule-bending effects
	Bonus     Gains  `yaml:"bonus" json:"bonus"`           // one-shot grant on research
}

// GameBalance stores global tuning variables loaded from 'orrery.yaml'.
// These values control the action economy; none of them are hardcoded in
// the rules code.
type GameBalance struct {
	StartingCredits    int   `yaml:"starting_credits" json:"starting_credits"`
	StartingEnergy     int   `yaml:"starting_energy" json:"starting_energy"`
	StartingCards      int   `yaml:"starting_cards" json:"starting_cards"`
	RevenueCredits     int   `yaml:"revenue_credits" json:"revenue_credits"`   // per-player round income
	RevenueEnergy      int   `yaml:"revenue_energy" json:"revenue_energy"`     // per-player round income
	RevenueCards       int   `yaml:"revenue_cards" json:"revenue_cards"`       // cards drawn at round end
	LaunchCost         int   `yaml:"launch_cost" json:"launch_cost"`           // credits per launch
	ProbeLimit         int   `yaml:"probe_limit" json:"probe_limit"`           // simultaneous in-system probes
	OrbitCreditCost    int   `yaml:"orbit_credit_cost" json:"orbit_credit_cost"`
	OrbitEnergyCost    int   `yaml:"orbit_energy_cost" json:"orbit_energy_cost"`
	LandingCost        int   `yaml:"landing_cost" json:"landing_cost"`                   // from transit
	LandingOrbitCost   int   `yaml:"landing_orbit_cost" json:"landing_orbit_cost"`       // already orbiting
	MediaCap           int   `yaml:"media_cap" json:"media_cap"`                         // media coverage ceiling
	DataCap            int   `yaml:"data_cap" json:"data_cap"`                           // data ceiling
	CometMediaGain     int   `yaml:"comet_media_gain" json:"comet_media_gain"`           // entering a comet cell
	DiscoveryMediaGain int   `yaml:"discovery_media_gain" json:"discovery_media_gain"`   // first visit to a planet cell
	CardRowSize        int   `yaml:"card_row_size" json:"card_row_size"`                 // shared face-up card row
	ScoreMilestones    []int `yaml:"score_milestones" json:"score_milestones,omitempty"` // crossing one draws a card
}

// Universe is the root content struct, mapping to the entire 'orrery.yaml'
// file. It is static for the lifetime of a game and shared (never copied)
// between state snapshots.
type Universe struct {
	Balance      GameBalance `yaml:"balance" json:"balance"`
	Disks        []DiskDef   `yaml:"disks" json:"disks"`
	Planets      []PlanetDef `yaml:"planets" json:"planets"`
	Cards        []CardDef   `yaml:"cards" json:"cards"`
	Technologies []TechDef   `yaml:"technologies" json:"technologies"`
}

// Probe is a single exploration unit. Created on launch, destroyed never:
// it persists landed or orbiting until game end. Position is nil once the
// probe is orbiting or landed; it is then indexed by Planet instead.
type Probe struct {
	ID       string            `json:"id"`
	Owner    string            `json:"owner"` // player ID
	State    ProbeState        `json:"state"`
	Position *RelativePosition `json:"position,omitempty"`
	Planet   string            `json:"planet,omitempty"` // target planet once orbiting/landed
}

// Board is the solar-system board: current rotation, which ring rotates on
// the next trigger, every probe in play, and the discovery record.
type Board struct {
	Rotation   RotationState   `json:"rotation"`
	NextRing   int             `json:"next_ring"` // cycles 1 -> 2 -> 3 -> 1 per trigger
	Probes     []Probe         `json:"probes"`
	Discovered map[string]bool `json:"discovered"` // planet key -> a probe has visited its cell
}

// Player holds one seat's resources, hand, technologies and per-turn flags.
type Player struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Credits        int      `json:"credits"`
	Energy         int      `json:"energy"`
	Media          int      `json:"media"` // media coverage, 0..MediaCap
	Data           int      `json:"data"`  // 0..DataCap
	Score          int      `json:"score"`
	RevenueCredits int      `json:"revenue_credits"`
	RevenueEnergy  int      `json:"revenue_energy"`
	RevenueCards   int      `json:"revenue_cards"`
	Hand           []string `json:"hand"`         // card keys
	Technologies   []string `json:"technologies"` // tech keys
	Probes         []string `json:"probes"`       // owned probe IDs
	Milestones     []int    `json:"milestones"`   // claimed score milestones
	FreeSteps      int      `json:"free_steps"`   // banked free movement steps
	HasPassed      bool     `json:"has_passed"`
	MainActionUsed bool     `json:"main_action_used"` // per-turn, cleared on turn end
	MovingProbe    string   `json:"moving_probe"`     // probe whose path continues this turn
}

// Phase is the round sub-state machine. RoundEnding is transient: revenue
// resolution always returns immediately to Playing with the new first player.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhaseRoundEnding Phase = "round_ending"
)

// GameState is the aggregate root. It is created once at game start and
// thereafter only ever replaced by a new, structurally independent value
// returned from ExecuteAction; the engine never mutates a snapshot in place.
type GameState struct {
	Universe    *Universe `json:"-"` // static content, shared between snapshots
	Board       Board     `json:"board"`
	Players     []Player  `json:"players"`
	Current     int       `json:"current"` // index into Players
	FirstPlayer int       `json:"first_player"`
	Round       int       `json:"round"`
	Phase       Phase     `json:"phase"`
	FirstPass   bool      `json:"first_pass"` // someone already passed this round (rotation spent)
	Deck        []string  `json:"deck"`       // face-down draw pile, top at index 0
	Discard     []string  `json:"discard"`
	Row         []string  `json:"row"` // shared face-up card row
	Seq         int       `json:"seq"` // probe ID counter
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() *Player {
	return &s.Players[s.Current]
}
