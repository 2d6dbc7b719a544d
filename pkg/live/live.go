package live

import (
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seidr-ui/seidr/pkg/observable"
)

const (
	writeTimeout = 10 * time.Second

	// sendBuffer bounds per-connection queued updates. A connection that
	// cannot drain its queue is dropped rather than blocking notification
	// of other subscribers.
	sendBuffer = 64
)

// Update is one value-change frame sent to clients.
type Update struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Publisher exposes observables over WebSocket. It implements http.Handler;
// mount it on the route clients connect to.
type Publisher struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	sources map[string]*observable.Observable
}

// NewPublisher creates a Publisher with no exposed observables.
func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger,
		sources: make(map[string]*observable.Observable),
	}
}

// Expose publishes the observable under the given name. Exposing a second
// observable under an existing name replaces the first for new connections;
// established connections keep their subscriptions.
func (p *Publisher) Expose(name string, obs *observable.Observable) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[name] = obs
}

// snapshot returns the exposed observables with names in sorted order, so
// the initial frames arrive deterministically.
func (p *Publisher) snapshot() ([]string, map[string]*observable.Observable) {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.sources))
	sources := make(map[string]*observable.Observable, len(p.sources))
	for name, obs := range p.sources {
		names = append(names, name)
		sources[name] = obs
	}
	sort.Strings(names)
	return names, sources
}

// ServeHTTP upgrades the request and streams updates until the client
// disconnects or falls too far behind.
func (p *Publisher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	activeConnections.Inc()
	defer activeConnections.Dec()

	names, sources := p.snapshot()

	send := make(chan Update, sendBuffer)
	done := make(chan struct{})

	var cancels []func()
	for _, name := range names {
		name := name
		cancels = append(cancels, sources[name].Observe(func(v any) {
			select {
			case send <- Update{Name: name, Value: v}:
			case <-done:
			default:
				// Queue full: dropping here keeps Set callers
				// unblocked; the connection dies on its next failed
				// write if the client never recovers.
				p.logger.Warn("live update dropped, client too slow",
					"name", name, "remote", r.RemoteAddr)
			}
		}))
	}

	// Reader goroutine: we never expect client frames, but reading is how
	// gorilla surfaces the close handshake.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Initial frames are written directly rather than queued, so the number
	// of exposed observables is not bounded by the queue size. Subscribing
	// first means a change racing the snapshot read shows up as a duplicate
	// frame, never a missed one.
	for _, name := range names {
		if err := p.writeUpdate(conn, Update{Name: name, Value: sources[name].Value()}); err != nil {
			p.logger.Debug("live write failed, closing connection",
				"error", err, "remote", r.RemoteAddr)
			p.teardown(conn, cancels)
			return
		}
	}

	for {
		select {
		case <-done:
			p.teardown(conn, cancels)
			return
		case u := <-send:
			if err := p.writeUpdate(conn, u); err != nil {
				p.logger.Debug("live write failed, closing connection",
					"error", err, "remote", r.RemoteAddr)
				p.teardown(conn, cancels)
				return
			}
		}
	}
}

func (p *Publisher) writeUpdate(conn *websocket.Conn, u Update) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(u); err != nil {
		return err
	}
	updatesSent.Inc()
	return nil
}

func (p *Publisher) teardown(conn *websocket.Conn, cancels []func()) {
	for _, cancel := range cancels {
		cancel()
	}
	conn.Close()
}
