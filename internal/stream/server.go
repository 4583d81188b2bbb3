// Package stream serves the raycaster over websockets: clients send
// movement intents and receive the projected wall columns after every tick.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/simulation"
)

// Options tunes the server loop.
type Options struct {
	TPS        int // ticks per second for Run
	MaxColumns int // columns per frame; 0 sends every strip
	InputQueue int // pending intents kept between ticks
}

// DefaultOptions returns 20 TPS frames of 160 columns.
func DefaultOptions() Options {
	return Options{TPS: 20, MaxColumns: 160, InputQueue: 256}
}

// Server owns one simulation and the clients watching it. Only the tick
// goroutine touches the state.
type Server struct {
	cfg     *simulation.Config
	state   *game.State
	log     *zap.SugaredLogger
	metrics *Metrics
	opts    Options

	inputs chan InputMessage

	mu      sync.Mutex
	clients map[*ClientConn]struct{}

	upgrader websocket.Upgrader
}

// NewServer creates a server for an already built state.
func NewServer(cfg *simulation.Config, state *game.State, opts Options, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.InputQueue <= 0 {
		opts.InputQueue = DefaultOptions().InputQueue
	}
	return &Server{
		cfg:     cfg,
		state:   state,
		log:     log,
		metrics: &Metrics{},
		opts:    opts,
		inputs:  make(chan InputMessage, opts.InputQueue),
		clients: make(map[*ClientConn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// spectator clients may be served from anywhere
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Metrics returns the server counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// OnInput queues an intent for the next tick. Intents arriving while the
// queue is full are dropped.
func (s *Server) OnInput(im InputMessage) {
	if math.IsNaN(im.Turn) || math.IsInf(im.Turn, 0) {
		s.metrics.IncBadMessage()
		return
	}
	select {
	case s.inputs <- im:
		s.metrics.IncAccepted()
	default:
		s.metrics.IncInputDropped()
	}
}

// Step runs one tick: drain intents, advance the state, broadcast the frame.
func (s *Server) Step() FrameMessage {
	start := time.Now()

	var pending []InputMessage
drain:
	for {
		select {
		case im := <-s.inputs:
			pending = append(pending, im)
		default:
			break drain
		}
	}

	in, seq := mergeInputs(pending)
	res := s.state.Tick(in)
	frame := buildFrame(s.state, res, seq, s.opts.MaxColumns)
	s.broadcast(frame)

	s.metrics.AddTick(time.Since(start).Nanoseconds())
	return frame
}

func (s *Server) broadcast(frame FrameMessage) {
	b, err := json.Marshal(frame)
	if err != nil {
		s.log.Errorw("failed to encode frame", "tick", frame.Tick, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		if c.enqueue(b) {
			s.metrics.IncFrameSent()
		} else {
			s.metrics.IncFrameDropped()
		}
	}
}

// Run ticks at the configured rate until ctx is done, then disconnects
// every client.
func (s *Server) Run(ctx context.Context) error {
	if s.opts.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", s.opts.TPS)
	}
	defer s.Close()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.TPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}

// Close disconnects every client.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
		s.metrics.AddClients(-1)
	}
}

func (s *Server) add(c *ClientConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
	s.metrics.AddClients(1)
}

func (s *Server) remove(c *ClientConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
	s.metrics.AddClients(-1)
}

// Handler returns the HTTP routes: /ws, /metrics, /admin/config, /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/admin/config", s.handleAdminConfig)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// HandleWS upgrades the request and attaches the client to the stream.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClientConn(ws)
	s.add(c)
	s.log.Infow("client connected", "remote", r.RemoteAddr, "clients", s.ClientCount())

	go c.writePump()
	go c.readPump(s)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snap := s.metrics.Snapshot()
	payload := map[string]any{
		"tick":    snap["tick_count"],
		"clients": snap["clients"],
		"metrics": snap,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// handleAdminConfig reports the load-time config. It is read-only: the
// config shapes the projector and caster, which are built once.
func (s *Server) handleAdminConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.cfg)
}
