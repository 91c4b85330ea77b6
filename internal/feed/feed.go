// Package feed broadcasts game snapshots to websocket spectators. Each
// frame's snapshot is msgpack-encoded once and fanned out to every connected
// viewer; slow viewers drop frames rather than stalling the game.
package feed

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tmolnar/rockfall/internal/game"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // spectator feed is read-only
	},
}

// Feed is a set of websocket viewers receiving snapshot frames.
type Feed struct {
	mu      sync.Mutex
	viewers map[*viewer]struct{}
}

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{viewers: make(map[*viewer]struct{})}
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed: upgrade error: %v", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}
	f.mu.Lock()
	f.viewers[v] = struct{}{}
	f.mu.Unlock()

	go f.writePump(v)
	go f.readPump(v)
}

// Broadcast encodes one snapshot and queues it to every viewer. Viewers with
// a full queue skip the frame.
func (f *Feed) Broadcast(snap game.Snapshot) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		log.Printf("feed: encode error: %v", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for v := range f.viewers {
		select {
		case v.send <- data:
		default:
		}
	}
}

// ViewerCount returns the number of connected spectators.
func (f *Feed) ViewerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.viewers)
}

func (f *Feed) remove(v *viewer) {
	f.mu.Lock()
	if _, ok := f.viewers[v]; ok {
		delete(f.viewers, v)
		close(v.send)
	}
	f.mu.Unlock()
}

// readPump discards inbound messages and enforces the pong keepalive.
func (f *Feed) readPump(v *viewer) {
	defer func() {
		f.remove(v)
		v.conn.Close()
	}()

	v.conn.SetReadLimit(512)
	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed: read error: %v", err)
			}
			return
		}
	}
}

// writePump sends queued frames and periodic pings.
func (f *Feed) writePump(v *viewer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case data, ok := <-v.send:
			if !ok {
				v.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
