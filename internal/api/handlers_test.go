package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/orrery-server/internal/game"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	u, err := game.LoadUniverse("../../orrery.yaml")
	require.NoError(t, err)
	state := game.NewGame(u, []string{"Ada", "Blaise"}, rand.New(rand.NewSource(1)))
	// The hub loop is not running in tests; publish drops instead of blocking.
	return NewServer(state, NewHub(zerolog.Nop()), zerolog.Nop())
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGetState(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var state game.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Len(t, state.Players, 2)
	assert.Equal(t, 1, state.Round)
}

func TestLaunchEndpointSwapsTheSnapshot(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()
	creditsBefore := srv.Snapshot().Players[0].Credits

	rec := postJSON(t, mux, "/api/actions/launch", LaunchRequest{Player: "player-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.Events)

	snap := srv.Snapshot()
	assert.Len(t, snap.Board.Probes, 1)
	assert.Equal(t, creditsBefore-snap.Universe.Balance.LaunchCost, snap.Players[0].Credits)
}

func TestRejectedActionKeepsTheSnapshot(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()

	rec := postJSON(t, mux, "/api/actions/launch", LaunchRequest{Player: "player-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	snapAfterFirst := srv.Snapshot()

	// Second main action this turn: rejected, snapshot untouched.
	rec = postJSON(t, mux, "/api/actions/launch", LaunchRequest{Player: "player-1"})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, game.CodeMainActionUsed, resp.Error.Code)
	assert.Same(t, snapAfterFirst, srv.Snapshot())
}

func TestPassEndpointRotatesTheBoard(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()

	rec := postJSON(t, mux, "/api/actions/pass", TurnRequest{Player: "player-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	snap := srv.Snapshot()
	assert.Equal(t, -45, snap.Board.Rotation.Angles[1])
	assert.Equal(t, 2, snap.Board.NextRing)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/actions/launch", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
