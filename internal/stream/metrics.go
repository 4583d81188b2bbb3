package stream

import "sync/atomic"

// Metrics records server counters for /metrics.
type Metrics struct {
	TickCount      int64
	TotalTickNs    int64
	InputsAccepted int64
	InputsDropped  int64 // input queue full
	BadMessages    int64
	FramesSent     int64
	FramesDropped  int64 // client send queue full
	Clients        int64
}

func (m *Metrics) IncAccepted()       { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *Metrics) IncInputDropped()   { atomic.AddInt64(&m.InputsDropped, 1) }
func (m *Metrics) IncBadMessage()     { atomic.AddInt64(&m.BadMessages, 1) }
func (m *Metrics) IncFrameSent()      { atomic.AddInt64(&m.FramesSent, 1) }
func (m *Metrics) IncFrameDropped()   { atomic.AddInt64(&m.FramesDropped, 1) }
func (m *Metrics) AddClients(n int64) { atomic.AddInt64(&m.Clients, n) }
func (m *Metrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot returns a copy for HTTP output.
func (m *Metrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":      tick,
		"inputs_accepted": atomic.LoadInt64(&m.InputsAccepted),
		"inputs_dropped":  atomic.LoadInt64(&m.InputsDropped),
		"bad_messages":    atomic.LoadInt64(&m.BadMessages),
		"frames_sent":     atomic.LoadInt64(&m.FramesSent),
		"frames_dropped":  atomic.LoadInt64(&m.FramesDropped),
		"clients":         atomic.LoadInt64(&m.Clients),
		"avg_tick_ms":     avgMs,
	}
}
