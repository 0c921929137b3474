package sensor

import (
	"log/slog"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/parameter"
)

// UDPSource listens for DIPPID JSON datagrams on one port
type UDPSource struct {
	capabilityCache

	host string
	port int

	conn    *net.UDPConn
	wg      sync.WaitGroup
	closed  atomic.Bool
	dropped atomic.Uint64
	logger  *slog.Logger
}

// NewUDPSource creates an unstarted source bound to host:port, empty host listens on all interfaces
func NewUDPSource(host string, port int) *UDPSource {
	return &UDPSource{
		capabilityCache: newCapabilityCache(),
		host:            host,
		port:            port,
		logger:          slog.Default().With("component", "sensor", "port", port),
	}
}

// Start opens the socket and begins delivery on its own goroutine
func (s *UDPSource) Start() error {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return errors.Wrapf(err, "resolve sensor address for port %d", s.port)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on sensor port %d", s.port)
	}
	s.conn = conn
	s.logger.Info("sensor listening", "addr", conn.LocalAddr().String())

	s.wg.Add(1)
	engine.Go(s.readLoop)
	return nil
}

// Port returns the configured port
func (s *UDPSource) Port() int { return s.port }

// Addr returns the bound address, nil before Start
func (s *UDPSource) Addr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Dropped returns the count of malformed datagrams
func (s *UDPSource) Dropped() uint64 { return s.dropped.Load() }

// Ingest decodes one datagram and publishes its readings
// Malformed input is counted and logged, never surfaced to subscribers
func (s *UDPSource) Ingest(data []byte) {
	if s.closed.Load() {
		return
	}
	readings, err := Decode(data)
	if err != nil {
		s.dropped.Add(1)
		s.logger.Debug("dropping sensor datagram", "error", err, "size", len(data))
		return
	}
	s.publish(readings)
}

// Close stops delivery and releases the socket
func (s *UDPSource) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.wg.Wait()
	s.logger.Info("sensor closed")
	return err
}

func (s *UDPSource) readLoop() {
	defer s.wg.Done()
	buf := make([]byte, parameter.SensorReadBuffer)
	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("sensor read failed", "error", err)
			continue
		}
		s.Ingest(buf[:n])
	}
}
