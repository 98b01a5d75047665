package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/jwdomes/mushland-game/internal/config"
	"github.com/jwdomes/mushland-game/internal/engine"
	"github.com/jwdomes/mushland-game/internal/qrcode"
	"github.com/jwdomes/mushland-game/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	Sessions *session.Manager
	Engine   *engine.Engine
	Config   config.Config
	hubs     map[string]*Hub
	logger   *log.Logger
}

func NewHandlers(cfg config.Config, e *engine.Engine, logger *log.Logger) *Handlers {
	return &Handlers{
		Sessions: session.NewManager(cfg.MaxSessions),
		Engine:   e,
		Config:   cfg,
		hubs:     make(map[string]*Hub),
		logger:   logger,
	}
}

func (h *Handlers) hub(id string) (*Hub, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hub, ok := h.hubs[id]
	return hub, ok
}

// HandleCreateGame creates a new session and redirects to its board.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Create(h.Config.Seed)
	if errors.Is(err, session.ErrTooManySessions) && h.evictIdle(time.Now()) > 0 {
		sess, err = h.Sessions.Create(h.Config.Seed)
	}
	if errors.Is(err, session.ErrTooManySessions) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	hub := NewHub(sess, h.Engine, h.Config.Seed)
	h.mu.Lock()
	h.hubs[sess.ID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.logger.Printf("session %s created seed=%d", sess.ID, sess.Seed)
	http.Redirect(w, r, fmt.Sprintf("/?session=%s", sess.ID), http.StatusSeeOther)
}

// HandleDeleteGame stops a session's hub and forgets it.
func (h *Handlers) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if !h.stopSession(chi.URLParam(r, "id")) {
		http.Error(w, session.ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) stopSession(id string) bool {
	h.mu.Lock()
	hub, ok := h.hubs[id]
	delete(h.hubs, id)
	h.mu.Unlock()
	if !ok {
		return false
	}
	hub.Stop()
	h.Sessions.Remove(id)
	return true
}

// evictIdle stops sessions that have had no clients for SessionIdle.
// A zero SessionIdle disables eviction.
func (h *Handlers) evictIdle(now time.Time) int {
	if h.Config.SessionIdle <= 0 {
		return 0
	}
	var idle []string
	h.mu.Lock()
	for id, hub := range h.hubs {
		if since, ok := hub.IdleSince(); ok && now.Sub(since) >= h.Config.SessionIdle {
			idle = append(idle, id)
		}
	}
	h.mu.Unlock()

	n := 0
	for _, id := range idle {
		if h.stopSession(id) {
			h.logger.Printf("session %s evicted after %s idle", id, h.Config.SessionIdle)
			n++
		}
	}
	return n
}

// HandleQR generates a QR code PNG for attaching a viewer to the session.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		http.Error(w, "missing session parameter", http.StatusBadRequest)
		return
	}
	if _, err := h.Sessions.Get(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	host := h.Config.PublicHost
	if host == "" {
		host = r.Host
	}
	png, err := qrcode.Generate(qrcode.JoinURL(host, id)+"&type=viewer", h.Config.QRSize)
	if err != nil {
		h.logger.Printf("qr: %v", err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleReplay rebuilds a session's state from its seed and action log.
func (h *Handlers) HandleReplay(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	resp := struct {
		Seed    uint64          `json:"seed"`
		Actions []engine.Action `json:"actions"`
		View    engine.ViewData `json:"view"`
	}{
		Seed:    sess.Seed,
		Actions: sess.Actions(),
		View:    h.Engine.View(sess.Replay(h.Engine)),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Printf("replay encode: %v", err)
	}
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		http.Error(w, "missing session parameter", http.StatusBadRequest)
		return
	}
	hub, ok := h.hub(id)
	if !ok {
		http.Error(w, session.ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("ws upgrade error: %v", err)
		return
	}

	ct := ClientPlayer
	if r.URL.Query().Get("type") == "viewer" {
		ct = ClientViewer
	}

	client := NewClient(hub, conn, ct)
	select {
	case hub.register <- client:
	case <-hub.quit:
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"sessions": h.Sessions.Len()})
}
