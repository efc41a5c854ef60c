package ws

import (
	"log"
	"net/http"

	"github.com/autoreport/backend/internal/report"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled at the HTTP level
	},
}

// StreamHandler pushes report-flow snapshots over a WebSocket so the loading
// screen can animate without polling.
type StreamHandler struct {
	flows *report.Registry
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(flows *report.Registry) *StreamHandler {
	return &StreamHandler{flows: flows}
}

// Handle upgrades HTTP to WebSocket and streams snapshots until the flow
// reaches a terminal state or the client goes away.
// URL: /reports/{id}/stream
func (h *StreamHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	flow, ok := h.flows.Get(id)
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := flow.Subscribe()
	defer flow.Unsubscribe(sub)

	// Drain client frames so we notice a close.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-clientGone:
			return
		case snap, ok := <-sub:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
			if snap.State == report.StateResults || snap.State == report.StateInvalid {
				return
			}
		}
	}
}
