/*
Package main
File: main.go
Description: Server entry point. Loads the content file, seats the players,
starts the real-time WebSocket hub and serves the REST API. SIGHUP reloads
the content tables without restarting the game.
*/

package main

import (
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/everforgeworks/orrery-server/internal/api"
	"github.com/everforgeworks/orrery-server/internal/config"
	"github.com/everforgeworks/orrery-server/internal/game"
	"github.com/everforgeworks/orrery-server/internal/logging"
)

func main() {
	// 1. Server settings (defaults + optional orrery.cfg.json).
	if err := config.Load("."); err != nil {
		panic(err)
	}
	log := logging.New(config.LogLevel())

	// 2. Load the static content tables from YAML.
	universe, err := game.LoadUniverse(config.ContentFile())
	if err != nil {
		log.Fatal().Err(err).Str("file", config.ContentFile()).Msg("content load failed")
	}

	// 3. Seat the table. The shuffle seed is configurable so a table can be
	// replayed; 0 means take one from the clock.
	seed := config.Seed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := game.NewGame(universe, config.Players(), rand.New(rand.NewSource(seed)))
	log.Info().
		Int("players", len(state.Players)).
		Int64("seed", seed).
		Msg("table seated")

	// 4. Start the real-time hub.
	hub := api.NewHub(log)
	go hub.Run()

	server := api.NewServer(state, hub, log)

	// 5. Hot-reload: SIGHUP re-reads the content file and swaps it under
	// the running game. Runtime state is untouched.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for range sigChan {
			u, err := game.LoadUniverse(config.ContentFile())
			if err != nil {
				log.Error().Err(err).Msg("content reload failed, keeping old tables")
				continue
			}
			server.SwapUniverse(u)
			log.Info().Msg("content tables reloaded")
		}
	}()

	// 6. Serve.
	addr := config.Listen()
	log.Info().Str("addr", addr).Msg("ORRERY server live")
	if err := http.ListenAndServe(addr, corsMiddleware(server.Routes())); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// corsMiddleware lets the desktop client talk to the server across domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
