package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", hub.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) core.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", msgType)
	}
	var snap core.Snapshot
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("msgpack unmarshal: %v", err)
	}
	return snap
}

func TestHubBroadcastsSnapshots(t *testing.T) {
	hub, url := startHub(t)
	a := dial(t, url)
	b := dial(t, url)
	waitClients(t, hub, 2)

	hub.Publish(core.Snapshot{
		Game:     "tunnel",
		Frame:    42,
		Phase:    core.PhasePlaying,
		Score:    7,
		Player:   core.PlayerPose{Lateral: 1.5},
		Entities: []core.EntityPose{{ID: 3, Depth: -20, Kind: core.KindCollectible, Visible: true}},
	})

	for _, conn := range []*websocket.Conn{a, b} {
		snap := readSnapshot(t, conn)
		if snap.Game != "tunnel" || snap.Frame != 42 || snap.Score != 7 {
			t.Errorf("snapshot = %+v", snap)
		}
		if snap.Phase != core.PhasePlaying || snap.Player.Lateral != 1.5 {
			t.Errorf("phase/player = %v/%+v", snap.Phase, snap.Player)
		}
		if len(snap.Entities) != 1 || snap.Entities[0].Kind != core.KindCollectible {
			t.Errorf("entities = %+v", snap.Entities)
		}
	}
}

func TestHubSendsLatestFrameOnConnect(t *testing.T) {
	hub, url := startHub(t)
	first := dial(t, url)
	waitClients(t, hub, 1)

	hub.Publish(core.Snapshot{Game: "stack", Frame: 1})
	readSnapshot(t, first)

	late := dial(t, url)
	if snap := readSnapshot(t, late); snap.Frame != 1 {
		t.Errorf("late joiner got frame %d, want 1", snap.Frame)
	}
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub, url := startHub(t)
	dial(t, url) // never reads
	waitClients(t, hub, 1)

	done := make(chan struct{})
	go func() {
		for i := range 10 * sendBufSize {
			hub.Publish(core.Snapshot{Game: "racer", Frame: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow client")
	}

	frames, _ := hub.Stats()
	if frames != uint64(10*sendBufSize) {
		t.Errorf("frames = %d, want %d", frames, 10*sendBufSize)
	}
}

func TestHubSkipsEncodingWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	hub.Publish(core.Snapshot{Game: "runner"})
	if frames, _ := hub.Stats(); frames != 0 {
		t.Errorf("frames = %d, want 0", frames)
	}
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitClients(t, hub, 1)

	hub.Close()
	if hub.Clients() != 0 {
		t.Errorf("clients after Close = %d", hub.Clients())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("read after Close: %v, want normal closure", err)
	}
}

func TestServerListenAndShutdown(t *testing.T) {
	hub := NewHub(nil)
	srv, err := Listen("127.0.0.1:0", hub)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve() }()

	conn := dial(t, "ws://"+srv.Addr()+"/ws")
	waitClients(t, hub, 1)
	_ = conn

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-errc; err != nil {
		t.Errorf("Serve returned %v", err)
	}
}
