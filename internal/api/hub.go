/*
Package api
File: hub.go
Description:
    The WebSocket Hub is the real-time side of the table: every applied
    action produces an engine Result, and the Hub pushes its narration and
    the fresh snapshot summary to every connected client.

    Architecture:
    - Hub: the singleton manager owning the client registry.
    - Client: one browser connection with its own send buffer.
    - ServeWs: the HTTP handler that upgrades a GET request to a WebSocket.
*/

package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Message is the standard JSON envelope for all real-time traffic.
type Message struct {
	Type    string `json:"type"`    // event type (e.g. "action_applied", "round_ended")
	Payload any    `json:"payload"` // the actual data
	Sender  string `json:"sender"`  // origin (engine or a player ID)
}

// Client represents a single connected spectator or player tab. It sits
// between the raw websocket connection and the Hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // buffered outbound queue
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan []byte // inbound messages to fan out; the Server feeds this
	register   chan *Client
	unregister chan *Client
	log        zerolog.Logger
}

// NewHub creates a Hub. Call once and run it as a goroutine.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		Broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log.With().Str("component", "hub").Logger(),
	}
}

// Run is the Hub's event loop. It blocks; run it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info().Int("clients", len(h.clients)).Msg("client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: the client hung or went away.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// upgrader configures the WebSocket handshake. CheckOrigin stays permissive
// so the desktop client can connect cross-origin.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request to a persistent WebSocket connection and
// registers it with the Hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	// One goroutine per direction so a slow client never blocks the table.
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection. Clients are read-only spectators here;
// commands arrive over the REST surface. Anything a client does send is
// echoed to the table as chat.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn().Err(err).Msg("websocket read error")
			}
			break
		}
		c.hub.Broadcast <- message
	}
}

// writePump flushes the Hub's messages to the connection. The loop exits
// when the Hub closes the send channel.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
}
