package viz

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/status"
)

const (
	writeWait       = 2 * time.Second
	shutdownTimeout = 2 * time.Second
)

// Server exposes the hub over HTTP
// GET /ws upgrades to a websocket, ?encoding=binary selects protobuf frames
// GET /status returns the metric registry as JSON
type Server struct {
	hub      *Hub
	status   *status.Registry
	router   *mux.Router
	upgrader websocket.Upgrader

	httpSrv  *http.Server
	listener net.Listener
	logger   *slog.Logger
}

// NewServer wires routes, reg may be nil
func NewServer(hub *Hub, reg *status.Registry) *Server {
	s := &Server{
		hub:    hub,
		status: reg,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			// Spectating is read-only, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: slog.Default().With("component", "viz"),
	}
	s.router.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)
	s.router.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	return s
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on addr and serves in the background
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "viz listen %s", addr)
	}
	s.listener = ln
	s.httpSrv = &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	engine.Go(func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("viz server stopped", "error", err)
		}
	})
	s.logger.Info("viz listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting and disconnects watchers
func (s *Server) Close() error {
	s.hub.Close()
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	binary := r.URL.Query().Get("encoding") == "binary"
	msgType := websocket.TextMessage
	if binary {
		msgType = websocket.BinaryMessage
	}

	watcher := s.hub.register(binary)
	defer s.hub.unregister(watcher)

	// Reading is required to observe client close; inbound messages are discarded
	closed := make(chan struct{})
	engine.Go(func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	for {
		select {
		case <-closed:
			return
		case payload, ok := <-watcher.send:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(msgType, payload); err != nil {
				s.logger.Debug("watcher write failed", "error", err)
				return
			}
		}
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	values := map[string]any{}
	if s.status != nil {
		values = s.status.Snapshot()
	}
	values[status.KeyWatchers] = int64(s.hub.Watchers())

	body, err := structpb.NewStruct(values)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := protojson.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
