package telemetry

import (
	"sync"
	"sync/atomic"
	"time"
)

type Counter struct {
	val atomic.Int64
}

func (c *Counter) Inc()         { c.val.Add(1) }
func (c *Counter) Value() int64 { return c.val.Load() }

type LatencyTracker struct {
	mu      sync.Mutex
	samples []time.Duration
	maxKeep int
}

func NewLatencyTracker(maxKeep int) *LatencyTracker {
	return &LatencyTracker{maxKeep: maxKeep}
}

func (lt *LatencyTracker) Record(d time.Duration) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.samples = append(lt.samples, d)
	if len(lt.samples) > lt.maxKeep {
		lt.samples = lt.samples[len(lt.samples)-lt.maxKeep:]
	}
}

func (lt *LatencyTracker) Count() int {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	return len(lt.samples)
}

// Max returns the slowest retained sample, or zero when none were recorded.
func (lt *LatencyTracker) Max() time.Duration {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	var longest time.Duration
	for _, d := range lt.samples {
		if d > longest {
			longest = d
		}
	}
	return longest
}

// Metrics is the global metrics registry. A run issues at most two requests,
// so these exist for the exit summary rather than for scraping.
var Metrics = struct {
	RequestsSent   Counter
	RequestErrors  Counter
	OrdersSent     Counter
	OrderErrors    Counter
	RequestLatency *LatencyTracker
}{
	RequestLatency: NewLatencyTracker(16),
}

// LogSummary reports the run's request counters at debug level.
func LogSummary() {
	Debugf("requests=%d request_errors=%d orders=%d order_errors=%d slowest=%s",
		Metrics.RequestsSent.Value(), Metrics.RequestErrors.Value(),
		Metrics.OrdersSent.Value(), Metrics.OrderErrors.Value(),
		Metrics.RequestLatency.Max())
}
