package net

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"Drawall/internal/logx"
)

// EventsPath is the HTTP path the tap serves its websocket on.
const EventsPath = "/events"

const (
	peerBuffer   = 64
	writeTimeout = 5 * time.Second
)

// Peer is one observer connected to the tap.
type Peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Tap is a read-only websocket feed of board events. Observers cannot send
// anything back; whatever they write is discarded.
type Tap struct {
	peers    map[*Peer]struct{}
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	dropped  atomic.Uint64
}

func NewTap() *Tap {
	return &Tap{
		peers: make(map[*Peer]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler serves the tap under EventsPath.
func (t *Tap) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(EventsPath, t)
	return mux
}

func (t *Tap) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.Logger().Warn("tap: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	p := &Peer{conn: conn, send: make(chan []byte, peerBuffer)}
	t.add(p)
	go t.writeLoop(p)
	t.readLoop(p)
}

// Publish sends v as JSON to every observer. Slow observers miss messages
// rather than block the caller.
func (t *Tap) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	for p := range t.peers {
		select {
		case p.send <- data:
		default:
			t.dropped.Add(1)
		}
	}
	return nil
}

// Len returns the number of connected observers.
func (t *Tap) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

// Dropped returns how many messages were not delivered to slow observers.
func (t *Tap) Dropped() uint64 {
	return t.dropped.Load()
}

// Serve serves the tap on l until ctx is done.
func (t *Tap) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: t.Handler()}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	logx.Logger().Info("tap: serving", "addr", l.Addr().String())
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (t *Tap) add(p *Peer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.peers[p] = struct{}{}
	logx.Logger().Info("tap: observer connected", "remote", p.conn.RemoteAddr().String())
}

func (t *Tap) remove(p *Peer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.peers[p]; !ok {
		return
	}
	delete(t.peers, p)
	close(p.send)
	p.conn.Close()
	logx.Logger().Info("tap: observer left", "remote", p.conn.RemoteAddr().String())
}

func (t *Tap) readLoop(p *Peer) {
	defer t.remove(p)
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (t *Tap) writeLoop(p *Peer) {
	for msg := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logx.Logger().Debug("tap: write failed", "err", err)
			t.remove(p)
			return
		}
	}
}

// Watch connects to a tap at url and calls fn with every message until ctx
// is done or the tap goes away.
func Watch(ctx context.Context, url string, fn func([]byte)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		fn(msg)
	}
}
