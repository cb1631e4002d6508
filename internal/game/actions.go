/*
Package game
File: actions.go
Description:
    The action & turn engine. An Action is a value describing an intended
    player command; ExecuteAction validates it against a snapshot, delegates
    to the board/probe/economy code, and returns a Result carrying either a
    brand-new snapshot or a RuleError with the original left untouched.

    Also owns the pass/round state machine: the first pass of a round winds
    the board one step, the last pass pays revenue, resets the flags and
    seats a new first player.
*/

package game

import "fmt"

// ActionType enumerates every player command the engine accepts.
type ActionType int

const (
	ActionLaunch ActionType = iota
	ActionMove
	ActionOrbit
	ActionLand
	ActionResearch
	ActionPlayCard
	ActionBuyCard
	ActionTrade
	ActionPass
	ActionEndTurn
)

var actionNames = map[ActionType]string{
	ActionLaunch:   "Launch",
	ActionMove:     "Move",
	ActionOrbit:    "Orbit",
	ActionLand:     "Land",
	ActionResearch: "Research",
	ActionPlayCard: "PlayCard",
	ActionBuyCard:  "BuyCard",
	ActionTrade:    "Trade",
	ActionPass:     "Pass",
	ActionEndTurn:  "EndTurn",
}

func (t ActionType) String() string {
	if s, ok := actionNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsMain reports whether the action consumes the player's single main
// action for the turn. Pass, EndTurn and Trade are free.
func (t ActionType) IsMain() bool {
	switch t {
	case ActionPass, ActionEndTurn, ActionTrade:
		return false
	}
	return true
}

// Action is a fully-specified player command. Only the fields relevant to
// the Type need to be set.
type Action struct {
	Type        ActionType        `json:"type"`
	Player      string            `json:"player"`                  // acting player ID
	Probe       string            `json:"probe,omitempty"`         // Move / Orbit / Land
	Target      *RelativePosition `json:"target,omitempty"`        // Move
	UseFreeStep bool              `json:"use_free_step,omitempty"` // Move
	Planet      string            `json:"planet,omitempty"`        // Orbit / Land
	Tech        string            `json:"tech,omitempty"`          // Research
	Card        string            `json:"card,omitempty"`          // PlayCard / BuyCard
	Cards       []string          `json:"cards,omitempty"`         // Trade discards
	Spend       Gains             `json:"spend,omitempty"`         // Trade
	Gain        Gains             `json:"gain,omitempty"`          // Trade
}

// Result is the engine's answer to a command. State is present iff the
// command succeeded; Err is present iff it failed. Events carry narration
// (movement, rotation crossings, round end) for the presentation layer.
type Result struct {
	OK     bool       `json:"ok"`
	State  *GameState `json:"-"`
	Err    *RuleError `json:"error,omitempty"`
	Events []string   `json:"events,omitempty"`
}

func fail(err *RuleError) Result { return Result{OK: false, Err: err} }

// ExecuteAction is the engine's single entry point. It never mutates the
// snapshot it is given: on success the Result carries a structurally
// independent new state, on failure the original remains authoritative.
func ExecuteAction(s *GameState, a Action) Result {
	// Pass always targets whoever's turn it is, so a seat can be passed by
	// the table runner even if the client sent a stale actor ID.
	if a.Type != ActionPass {
		_, idx := s.FindPlayer(a.Player)
		if idx == -1 {
			return fail(ruleErrf(CodeUnknownPlayer, "no player %q", a.Player))
		}
		if idx != s.Current {
			return fail(ruleErrf(CodeNotYourTurn, "it is %s's turn", s.Players[s.Current].ID))
		}
	}

	// One main action per turn. The single carve-out: continuing the same
	// probe's movement path, since each step is its own command by design.
	actor := &s.Players[s.Current]
	if a.Type.IsMain() && actor.MainActionUsed {
		if !(a.Type == ActionMove && a.Probe != "" && a.Probe == actor.MovingProbe) {
			return fail(ruleErrf(CodeMainActionUsed, "player %s already used their main action", actor.ID))
		}
	}

	// All work happens on a clone; a RuleError throws the clone away.
	next := s.Clone()
	pl := next.CurrentPlayer()

	var events []string
	var rerr *RuleError

	switch a.Type {
	case ActionLaunch:
		events, rerr = launchProbe(next, pl)
	case ActionMove:
		if a.Target == nil {
			return fail(ruleErrf(CodeBadTarget, "move needs a target coordinate"))
		}
		events, rerr = moveProbeOneStep(next, pl, a.Probe, *a.Target, a.UseFreeStep)
		if rerr == nil {
			pl.MovingProbe = a.Probe
		}
	case ActionOrbit:
		events, rerr = orbitProbe(next, pl, a.Probe, a.Planet)
	case ActionLand:
		events, rerr = landProbe(next, pl, a.Probe, a.Planet)
	case ActionResearch:
		events, rerr = researchTechnology(next, pl, a.Tech)
		if rerr == nil {
			// Research winds the board exactly like the first pass of a
			// round; both triggers share rotateBoard.
			events = append(events, next.rotateBoard()...)
		}
	case ActionPlayCard:
		events, rerr = playCard(next, pl, a.Card)
	case ActionBuyCard:
		events, rerr = BuyCard(next, pl, a.Card)
	case ActionTrade:
		events, rerr = TradeResources(next, pl, a.Spend, a.Gain, a.Cards)
	case ActionPass:
		events, rerr = next.pass()
	case ActionEndTurn:
		events = next.endTurn()
	default:
		return fail(ruleErrf(CodeBadTarget, "unknown action type %d", a.Type))
	}

	if rerr != nil {
		return fail(rerr)
	}
	if a.Type.IsMain() {
		pl.MainActionUsed = true
	}
	return Result{OK: true, State: next, Events: events}
}

// advanceTurn moves the current-player pointer to the next seat that has
// not passed, wrapping around the table. With every seat passed it leaves
// the pointer alone (the round is about to end anyway).
func (s *GameState) advanceTurn() {
	for i := 1; i <= len(s.Players); i++ {
		idx := (s.Current + i) % len(s.Players)
		if !s.Players[idx].HasPassed {
			s.Current = idx
			return
		}
	}
}

// endTurn closes the current player's turn: per-turn flags reset, play
// proceeds to the next seat still in the round.
func (s *GameState) endTurn() []string {
	pl := s.CurrentPlayer()
	pl.MainActionUsed = false
	pl.MovingProbe = ""
	s.advanceTurn()
	return []string{fmt.Sprintf("%s ended their turn, %s to play", pl.ID, s.Players[s.Current].ID)}
}

// pass runs the pass/round state machine for the current player. The first
// pass of a round is the board's rotation trigger; the last pass ends the
// round: simultaneous revenue, flags cleared, round counter up, first
// player rotated one seat.
func (s *GameState) pass() ([]string, *RuleError) {
	pl := s.CurrentPlayer()
	if pl.HasPassed {
		return nil, ruleErrf(CodeAlreadyPassed, "player %s already passed this round", pl.ID)
	}

	pl.HasPassed = true
	pl.MainActionUsed = false
	pl.MovingProbe = ""
	events := []string{fmt.Sprintf("%s passed", pl.ID)}

	// 1. First pass of the round winds the orrery.
	if !s.FirstPass {
		s.FirstPass = true
		events = append(events, s.rotateBoard()...)
	}

	// 2. If anyone is still in, play on.
	for _, p := range s.Players {
		if !p.HasPassed {
			s.advanceTurn()
			return events, nil
		}
	}

	// 3. Everyone passed: the round ends. The phase flips to RoundEnding
	// only for the duration of the resolution below, then returns to
	// Playing with the new first player up.
	s.Phase = PhaseRoundEnding
	distributeRevenue(s)
	for i := range s.Players {
		s.Players[i].HasPassed = false
		s.Players[i].MainActionUsed = false
		s.Players[i].MovingProbe = ""
	}
	s.Round++
	s.FirstPass = false
	s.FirstPlayer = (s.FirstPlayer + 1) % len(s.Players)
	s.Current = s.FirstPlayer
	s.Phase = PhasePlaying

	events = append(events, fmt.Sprintf("round %d begins, %s is first player", s.Round, s.Players[s.Current].ID))
	return events, nil
}
