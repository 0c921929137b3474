package viz

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lixenwraith/dippid-pong/status"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func waitWatchers(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Watchers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d watchers, got %d", n, h.Watchers())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebsocketTextFrames(t *testing.T) {
	hub := NewHub(1, 4)
	srv := httptest.NewServer(NewServer(hub, nil).Handler())
	defer srv.Close()

	conn := dial(t, srv, "")
	defer conn.Close()
	waitWatchers(t, hub, 1)

	hub.Offer(testSnapshot(7))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if kind != websocket.TextMessage {
		t.Errorf("Expected text frame, got %d", kind)
	}

	var got structpb.Struct
	if err := protojson.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if state := got.Fields["state"].GetStringValue(); state != "PLAYING" {
		t.Errorf("Expected state PLAYING, got %q", state)
	}
	if tick := got.Fields["tick"].GetNumberValue(); tick != 7 {
		t.Errorf("Expected tick 7, got %v", tick)
	}
	if n := len(got.Fields["entities"].GetListValue().GetValues()); n != 1 {
		t.Errorf("Expected 1 entity, got %d", n)
	}
}

func TestWebsocketBinaryFrames(t *testing.T) {
	hub := NewHub(1, 4)
	srv := httptest.NewServer(NewServer(hub, nil).Handler())
	defer srv.Close()

	conn := dial(t, srv, "?encoding=binary")
	defer conn.Close()
	waitWatchers(t, hub, 1)

	hub.Offer(testSnapshot(1))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Errorf("Expected binary frame, got %d", kind)
	}

	var got structpb.Struct
	if err := proto.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	right := got.Fields["right"].GetStructValue()
	if right.GetFields()["score"].GetNumberValue() != 3 {
		t.Errorf("Expected right score 3, got %v", right.GetFields()["score"])
	}
}

func TestWatcherLeavesOnClose(t *testing.T) {
	hub := NewHub(1, 4)
	srv := httptest.NewServer(NewServer(hub, nil).Handler())
	defer srv.Close()

	conn := dial(t, srv, "")
	waitWatchers(t, hub, 1)
	conn.Close()
	waitWatchers(t, hub, 0)
}

func TestStatusEndpoint(t *testing.T) {
	reg := status.NewRegistry()
	reg.Strings.Get(status.KeyState).Store("WAITING")
	reg.Ints.Get(status.KeyScoreLeft).Store(4)

	srv := httptest.NewServer(NewServer(NewHub(1, 1), reg).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)

	var got structpb.Struct
	if err := protojson.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Fields[status.KeyState].GetStringValue() != "WAITING" {
		t.Errorf("Expected WAITING, got %v", got.Fields[status.KeyState])
	}
	if got.Fields[status.KeyScoreLeft].GetNumberValue() != 4 {
		t.Errorf("Expected score 4, got %v", got.Fields[status.KeyScoreLeft])
	}
	if got.Fields[status.KeyWatchers].GetNumberValue() != 0 {
		t.Errorf("Expected 0 watchers, got %v", got.Fields[status.KeyWatchers])
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := httptest.NewServer(NewServer(NewHub(1, 1), nil).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/status", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestServerStartAndClose(t *testing.T) {
	s := NewServer(NewHub(1, 1), nil)
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Addr() == nil {
		t.Fatal("Expected bound address")
	}
	resp, err := http.Get("http://" + s.Addr().String() + "/status")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
