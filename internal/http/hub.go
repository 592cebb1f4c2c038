package httpapi

import (
	"context"
	"log"
	"sync"
	"time"

	"protrain-backend-go/internal/app"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultWriteTimeout = 10 * time.Second

var (
	stateSocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "protrain_state_socket_connections",
		Help: "Number of open state websocket connections",
	})
	stateBroadcastCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protrain_state_broadcast_coalesced_total",
		Help: "Snapshots replaced by a newer one before they were pushed",
	})
	stateSocketDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protrain_state_socket_dropped_total",
		Help: "State websocket clients dropped after a failed write",
	})
)

// StateHub pushes committed snapshots to the connected presentation
// clients. Only the latest snapshot is kept: a burst of commits collapses
// into one push of the newest state. Each client remembers the version it
// was last sent and never receives an older one.
type StateHub struct {
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[*websocket.Conn]uint64

	// stateMu guards latest and version. It is taken under the App lock by
	// Broadcast, so it must never be held while calling into the App.
	stateMu sync.Mutex
	latest  StateResponse
	version uint64

	signal chan struct{}
}

func NewStateHub(writeTimeout time.Duration) *StateHub {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &StateHub{
		writeTimeout: writeTimeout,
		clients:      map[*websocket.Conn]uint64{},
		signal:       make(chan struct{}, 1),
	}
}

// Listen is an app.Listener.
func (h *StateHub) Listen(snap app.Snapshot) {
	h.Broadcast(buildState(snap))
}

// Broadcast replaces the pending snapshot with state and wakes Run. It
// never blocks.
func (h *StateHub) Broadcast(state StateResponse) {
	h.stateMu.Lock()
	h.latest = state
	h.version++
	h.stateMu.Unlock()

	select {
	case h.signal <- struct{}{}:
	default:
		stateBroadcastCoalesced.Inc()
	}
}

// Latest returns the newest broadcast snapshot and its version.
func (h *StateHub) Latest() (StateResponse, uint64) {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	return h.latest, h.version
}

func (h *StateHub) Run(ctx context.Context) {
	for {
		select {
		case <-h.signal:
			h.flush()
		case <-ctx.Done():
			return
		}
	}
}

// flush sends the latest snapshot to every client that has not seen it.
// Clients whose write fails or times out are closed and dropped.
func (h *StateHub) flush() {
	state, version := h.Latest()
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, sent := range h.clients {
		if sent >= version {
			continue
		}
		if err := h.write(conn, state); err != nil {
			log.Printf("state socket write: %v, dropping client", err)
			delete(h.clients, conn)
			stateSocketConnections.Dec()
			stateSocketDropped.Inc()
			_ = conn.Close()
			continue
		}
		h.clients[conn] = version
	}
}

func (h *StateHub) write(conn *websocket.Conn, state StateResponse) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(state)
}

// Add registers conn and sends it the state returned by current. The
// version is read before current runs: every commit it counts is already
// part of what current returns, so later pushes only move the client
// forward.
func (h *StateHub) Add(conn *websocket.Conn, current func() StateResponse) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, version := h.Latest()
	if err := h.write(conn, current()); err != nil {
		return err
	}
	h.clients[conn] = version
	stateSocketConnections.Inc()
	return nil
}

func (h *StateHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		stateSocketConnections.Dec()
	}
}

func (h *StateHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
