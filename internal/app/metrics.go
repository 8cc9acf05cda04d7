package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame loop timing.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64
	slowFrames   atomic.Uint64
	transitions  atomic.Uint64
	renderErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records one frame's drain+render time and the number of
// transitions it handled.
func (m *Metrics) RecordFrame(duration time.Duration, transitions int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.transitions.Add(uint64(transitions))

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordSlowFrame records a frame that took longer than the frame interval.
func (m *Metrics) RecordSlowFrame() {
	m.slowFrames.Add(1)
}

// RecordRenderError records a failed render.
func (m *Metrics) RecordRenderError() {
	m.renderErrors.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		SlowFrames:     m.slowFrames.Load(),
		Transitions:    m.transitions.Load(),
		RenderErrors:   m.renderErrors.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	SlowFrames     uint64
	Transitions    uint64
	RenderErrors   uint64
}

// FramesPerSecond returns frames over uptime.
func (s MetricsSnapshot) FramesPerSecond() float64 {
	if s.Uptime <= 0 {
		return 0
	}
	return float64(s.FrameCount) / s.Uptime.Seconds()
}

// SlowRate returns the percentage of slow frames.
func (s MetricsSnapshot) SlowRate() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.SlowFrames) / float64(s.FrameCount) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
