package feed

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tmolnar/rockfall/internal/audio"
	"github.com/tmolnar/rockfall/internal/game"
)

func testSnapshot() game.Snapshot {
	cfg := game.DefaultConfig()
	s := game.NewSession(cfg, game.DefaultVariants(), audio.NopBank(), rand.New(rand.NewSource(1)))
	s.Start()
	return s.Snapshot()
}

func TestBroadcastWithoutViewers(t *testing.T) {
	f := New()
	f.Broadcast(testSnapshot()) // must not panic or block
	if f.ViewerCount() != 0 {
		t.Errorf("viewer count = %d, want 0", f.ViewerCount())
	}
}

func TestViewerReceivesFrames(t *testing.T) {
	f := New()
	srv := httptest.NewServer(f)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Registration happens in the handler before ServeHTTP returns, but the
	// dial only guarantees the handshake; poll briefly.
	deadline := time.Now().Add(time.Second)
	for f.ViewerCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(time.Millisecond)
	}

	want := testSnapshot()
	f.Broadcast(want)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if kind != websocket.BinaryMessage {
		t.Errorf("message type = %d, want binary", kind)
	}

	var got game.Snapshot
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Phase != game.PhasePlaying {
		t.Errorf("phase = %v, want playing", got.Phase)
	}
	if got.Wave != want.Wave || got.Lives != want.Lives {
		t.Errorf("frame counters = wave %d lives %d, want wave %d lives %d",
			got.Wave, got.Lives, want.Wave, want.Lives)
	}
	if len(got.Rocks) != len(want.Rocks) {
		t.Errorf("frame carries %d rocks, want %d", len(got.Rocks), len(want.Rocks))
	}
	if got.Craft.X != want.Craft.X || got.Craft.Y != want.Craft.Y {
		t.Errorf("craft at (%v,%v), want (%v,%v)", got.Craft.X, got.Craft.Y, want.Craft.X, want.Craft.Y)
	}
}

func TestViewerRemovedOnClose(t *testing.T) {
	f := New()
	srv := httptest.NewServer(f)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(time.Second)
	for f.ViewerCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(time.Millisecond)
	}

	conn.Close()

	deadline = time.Now().Add(time.Second)
	for f.ViewerCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never removed after disconnect")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSlowViewerSkipsFrames(t *testing.T) {
	f := New()
	v := &viewer{send: make(chan []byte, sendBuffer)}
	f.viewers[v] = struct{}{}

	// Nothing drains the queue; broadcasts past the buffer must not block.
	snap := testSnapshot()
	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*3; i++ {
			f.Broadcast(snap)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a full viewer queue")
	}
	if len(v.send) != sendBuffer {
		t.Errorf("queue holds %d frames, want the %d it has room for", len(v.send), sendBuffer)
	}
}
