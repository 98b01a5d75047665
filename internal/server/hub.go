package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jwdomes/mushland-game/internal/engine"
	"github.com/jwdomes/mushland-game/internal/interaction"
	"github.com/jwdomes/mushland-game/internal/protocol"
	"github.com/jwdomes/mushland-game/internal/session"
)

var ErrUnknownMessage = errors.New("unknown message type")

// Hub owns the game state and drag tracker for one session. All state
// transitions happen on the Run goroutine, one message at a time.
type Hub struct {
	mu          sync.Mutex
	session     *session.Session
	engine      *engine.Engine
	state       engine.State
	tracker     *interaction.Tracker
	defaultSeed uint64
	logger      *log.Logger
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	incoming    chan IncomingMessage
	quit        chan struct{}
	stopOnce    sync.Once
	lastActive  time.Time // guarded by mu
}

func NewHub(sess *session.Session, e *engine.Engine, defaultSeed uint64) *Hub {
	return &Hub{
		session:     sess,
		engine:      e,
		state:       sess.Replay(e),
		tracker:     interaction.NewTracker(nil),
		defaultSeed: defaultSeed,
		logger:      log.New(os.Stdout, fmt.Sprintf("[hub %.8s] ", sess.ID), log.LstdFlags),
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		incoming:    make(chan IncomingMessage, 256),
		quit:        make(chan struct{}),
		lastActive:  time.Now(),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
			h.sendStateToClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case msg := <-h.incoming:
			// The sender may have been unregistered while its message was queued.
			if !h.connected(msg.Client) {
				continue
			}
			if err := h.handleMessage(msg); err != nil {
				h.sendError(msg.Client, err.Error())
			}

		case <-h.quit:
			h.closeClients()
			return
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	h.lastActive = time.Now()
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.lastActive = time.Now()
}

// closeClients closes every send channel so each WritePump sends a close
// frame and exits.
func (h *Hub) closeClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) connected(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients[client]
}

// IdleSince reports when the last client left. ok is false while any
// client is connected.
func (h *Hub) IdleSince() (since time.Time, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) > 0 {
		return time.Time{}, false
	}
	return h.lastActive, true
}

// Stop ends Run. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) handleMessage(msg IncomingMessage) error {
	env := msg.Envelope
	if msg.Client.Type == ClientViewer {
		return fmt.Errorf("viewers cannot send %s", env.Type)
	}

	switch env.Type {
	case protocol.MsgDraw:
		h.dispatch(msg.Client, engine.Draw())

	case protocol.MsgPlay:
		var play protocol.PlayMsg
		if err := env.Decode(&play); err != nil {
			return err
		}
		h.dispatch(msg.Client, engine.Play(play.CardID, play.Habitat))

	case protocol.MsgActivate:
		var act protocol.ActivateMsg
		if err := env.Decode(&act); err != nil {
			return err
		}
		h.dispatch(msg.Client, engine.Activate(act.Habitat))

	case protocol.MsgPointerDown:
		var p protocol.PointerMsg
		if err := env.Decode(&p); err != nil {
			return err
		}
		if _, ok := h.state.HandCard(p.CardID); !ok {
			return nil
		}
		h.tracker.PointerDown(p.CardID, p.Point())
		h.broadcastDrag()

	case protocol.MsgPointerMove:
		var p protocol.PointerMsg
		if err := env.Decode(&p); err != nil {
			return err
		}
		h.tracker.PointerMove(p.Point())
		if h.tracker.Phase() == interaction.PhaseDragging {
			h.broadcastDrag()
		}

	case protocol.MsgPointerUp:
		var p protocol.PointerMsg
		if err := env.Decode(&p); err != nil {
			return err
		}
		if h.tracker.Phase() != interaction.PhaseDragging {
			return nil
		}
		action, ok := h.tracker.PointerUp(p.Point())
		h.broadcastDrag()
		if ok {
			h.dispatch(msg.Client, action)
		}

	case protocol.MsgLayout:
		var layout protocol.LayoutMsg
		if err := env.Decode(&layout); err != nil {
			return err
		}
		h.tracker.SetZones(layout.Zones)

	case protocol.MsgNewGame:
		var ng protocol.NewGameMsg
		if err := env.Decode(&ng); err != nil {
			return err
		}
		seed := ng.Seed
		if seed == 0 {
			seed = h.defaultSeed
		}
		seed = session.NewSeed(seed)
		h.session.Reset(seed)
		h.state = h.engine.NewGame(seed)
		h.tracker.Reset()
		h.logger.Printf("new game seed=%d", seed)
		h.broadcastDrag()
		h.broadcastState()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
	return nil
}

// dispatch applies an intent. The engine rejects silently, so the outcome
// is read off the diff between the two states.
func (h *Hub) dispatch(client *Client, action engine.Action) {
	before := h.state
	after := h.engine.Apply(before, action)
	events := engine.Diff(before, after)
	if len(events) == 0 {
		h.sendTo(client, protocol.MustEnvelope(protocol.MsgRejected, protocol.RejectedMsg{Action: action}))
		return
	}

	h.state = after
	h.session.Record(action)
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) broadcastDrag() {
	msg := protocol.DragMsg{}
	if id, pos, ok := h.tracker.Dragged(); ok {
		msg.Dragging = true
		msg.CardID = id
		msg.X, msg.Y = pos.X, pos.Y
		if hover, ok := h.tracker.Hover(); ok {
			msg.Hover = hover
			msg.Legal = h.engine.CanPlay(h.state, id, hover)
		}
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgDrag, msg))
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
}

func (h *Hub) broadcastState() {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameState, h.engine.View(h.state)))
}

func (h *Hub) sendStateToClient(client *Client) {
	h.sendTo(client, protocol.MustEnvelope(protocol.MsgGameState, h.engine.View(h.state)))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Printf("client buffer full, dropping %s", env.Type)
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	h.sendTo(client, protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}

// sendTo delivers env to one client. Clients no longer registered are
// skipped; their send channel is already closed.
func (h *Hub) sendTo(client *Client, env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Printf("marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- data:
	default:
		h.logger.Printf("client send buffer full, dropping %s", env.Type)
	}
}
