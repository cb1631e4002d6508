/*
Package api
File: handlers.go
Description:
    HTTP handlers for the REST API. The engine itself is stateless — every
    call takes a snapshot and returns a new one — so this layer owns the
    single authoritative snapshot behind a RWMutex and swaps it whenever an
    action succeeds.

    Key responsibilities:
    - Input validation (is the JSON valid?)
    - Driving game.ExecuteAction and publishing the Result over the Hub
    - Thread safety (snapshot reads and swaps under s.mu)
*/

package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/everforgeworks/orrery-server/internal/game"
)

// Server holds the authoritative snapshot and the broadcast hub.
type Server struct {
	mu    sync.RWMutex
	state *game.GameState
	hub   *Hub
	log   zerolog.Logger
}

// NewServer wraps an initial snapshot.
func NewServer(state *game.GameState, hub *Hub, log zerolog.Logger) *Server {
	return &Server{
		state: state,
		hub:   hub,
		log:   log.With().Str("component", "api").Logger(),
	}
}

// Snapshot returns the current authoritative state. Callers must treat it
// as read-only; the engine never mutates a published snapshot.
func (s *Server) Snapshot() *game.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SwapUniverse replaces the content tables on the live snapshot (SIGHUP
// reload). Runtime state is untouched.
func (s *Server) SwapUniverse(u *game.Universe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.Universe = u
	s.state = next
}

// Request DTOs. These structs define exactly what the client sends us.

type LaunchRequest struct {
	Player string `json:"player"`
}

type MoveRequest struct {
	Player      string                `json:"player"`
	Probe       string                `json:"probe"`
	Target      game.RelativePosition `json:"target"`
	UseFreeStep bool                  `json:"use_free_step"`
}

type PlanetRequest struct {
	Player string `json:"player"`
	Probe  string `json:"probe"`
	Planet string `json:"planet"`
}

type ResearchRequest struct {
	Player string `json:"player"`
	Tech   string `json:"tech"`
}

type CardRequest struct {
	Player string `json:"player"`
	Card   string `json:"card"`
}

type TradeRequest struct {
	Player string     `json:"player"`
	Spend  game.Gains `json:"spend"`
	Gain   game.Gains `json:"gain"`
	Cards  []string   `json:"cards"`
}

type TurnRequest struct {
	Player string `json:"player"`
}

// ActionResponse is what every action endpoint returns: the Result envelope
// plus the new snapshot when the action succeeded.
type ActionResponse struct {
	OK     bool            `json:"ok"`
	Error  *game.RuleError `json:"error,omitempty"`
	Events []string        `json:"events,omitempty"`
	State  *game.GameState `json:"state,omitempty"`
}

// apply runs one action against the authoritative snapshot and, on success,
// makes the returned snapshot authoritative and broadcasts the events.
func (s *Server) apply(w http.ResponseWriter, action game.Action) {
	s.mu.Lock()
	result := game.ExecuteAction(s.state, action)
	if result.OK {
		s.state = result.State
	}
	s.mu.Unlock()

	if result.OK {
		s.log.Info().
			Stringer("action", action.Type).
			Str("player", action.Player).
			Msg("action applied")
		s.publish("action_applied", map[string]any{
			"action": action.Type.String(),
			"events": result.Events,
		}, action.Player)
	} else {
		s.log.Debug().
			Stringer("action", action.Type).
			Str("player", action.Player).
			Str("code", string(result.Err.Code)).
			Msg("action rejected")
	}

	resp := ActionResponse{OK: result.OK, Error: result.Err, Events: result.Events}
	if result.OK {
		resp.State = result.State
	}
	w.Header().Set("Content-Type", "application/json")
	if !result.OK {
		w.WriteHeader(http.StatusConflict)
	}
	json.NewEncoder(w).Encode(resp)
}

// publish pushes an envelope to every connected client.
func (s *Server) publish(msgType string, payload any, sender string) {
	raw, err := json.Marshal(Message{Type: msgType, Payload: payload, Sender: sender})
	if err != nil {
		s.log.Error().Err(err).Msg("marshal broadcast")
		return
	}
	select {
	case s.hub.Broadcast <- raw:
	default:
		// No hub loop running (tests); drop rather than block the table.
	}
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// HandleGetState returns the full current snapshot.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.state)
}

// HandleGetBoard returns the board: rotation, probes, discoveries.
func (s *Server) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.state.Board)
}

// HandleGetContent returns the static content tables (disks, planets,
// cards, technologies, balance) for client-side rendering.
func (s *Server) HandleGetContent(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.state.Universe)
}

// HandleLaunch creates a new probe at the home planet.
func (s *Server) HandleLaunch(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[LaunchRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionLaunch, Player: req.Player})
}

// HandleMove advances a probe one cell. Paths are driven by the client
// issuing one request per cell; each step commits independently.
func (s *Server) HandleMove(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[MoveRequest](w, r)
	if !ok {
		return
	}
	target := req.Target
	s.apply(w, game.Action{
		Type:        game.ActionMove,
		Player:      req.Player,
		Probe:       req.Probe,
		Target:      &target,
		UseFreeStep: req.UseFreeStep,
	})
}

// HandleOrbit parks a co-located probe in orbit.
func (s *Server) HandleOrbit(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[PlanetRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionOrbit, Player: req.Player, Probe: req.Probe, Planet: req.Planet})
}

// HandleLand puts a probe down on a planet.
func (s *Server) HandleLand(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[PlanetRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionLand, Player: req.Player, Probe: req.Probe, Planet: req.Planet})
}

// HandleResearch researches a technology (and winds the board).
func (s *Server) HandleResearch(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[ResearchRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionResearch, Player: req.Player, Tech: req.Tech})
}

// HandlePlayCard plays a card from hand.
func (s *Server) HandlePlayCard(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[CardRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionPlayCard, Player: req.Player, Card: req.Card})
}

// HandleBuyCard buys from the shared row, or blind from the deck when no
// card key is given.
func (s *Server) HandleBuyCard(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[CardRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionBuyCard, Player: req.Player, Card: req.Card})
}

// HandleTrade converts resources and/or discards cards for free steps.
func (s *Server) HandleTrade(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[TradeRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionTrade, Player: req.Player, Spend: req.Spend, Gain: req.Gain, Cards: req.Cards})
}

// HandlePass passes for the current player. First pass of a round rotates
// the board; the last pass ends the round.
func (s *Server) HandlePass(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[TurnRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionPass, Player: req.Player})
}

// HandleEndTurn closes the acting player's turn.
func (s *Server) HandleEndTurn(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[TurnRequest](w, r)
	if !ok {
		return
	}
	s.apply(w, game.Action{Type: game.ActionEndTurn, Player: req.Player})
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Information endpoints
	mux.HandleFunc("/api/state", s.HandleGetState)
	mux.HandleFunc("/api/board", s.HandleGetBoard)
	mux.HandleFunc("/api/content", s.HandleGetContent)

	// Action endpoints
	mux.HandleFunc("/api/actions/launch", s.HandleLaunch)
	mux.HandleFunc("/api/actions/move", s.HandleMove)
	mux.HandleFunc("/api/actions/orbit", s.HandleOrbit)
	mux.HandleFunc("/api/actions/land", s.HandleLand)
	mux.HandleFunc("/api/actions/research", s.HandleResearch)
	mux.HandleFunc("/api/actions/play-card", s.HandlePlayCard)
	mux.HandleFunc("/api/actions/buy-card", s.HandleBuyCard)
	mux.HandleFunc("/api/actions/trade", s.HandleTrade)
	mux.HandleFunc("/api/actions/pass", s.HandlePass)
	mux.HandleFunc("/api/actions/end-turn", s.HandleEndTurn)

	// Real-time endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(s.hub, w, r)
	})

	return mux
}
