// FILE: msglog/src/internal/ratelimit/limiter.go
package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per client key
type Limiter struct {
	clients         sync.Map // map[string]*clientLimiter
	requestsPerSec  float64
	burstSize       int
	cleanupInterval time.Duration
	done            chan struct{}
	stopOnce        sync.Once

	// Statistics
	allowedCount  atomic.Uint64
	rejectedCount atomic.Uint64
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// New creates a per-client limiter. A non-positive rate returns nil, and a
// nil *Limiter allows everything.
func New(requestsPerSec float64, burstSize int, cleanupInterval time.Duration) *Limiter {
	if requestsPerSec <= 0 {
		return nil
	}
	if burstSize < 1 {
		burstSize = 1
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	l := &Limiter{
		requestsPerSec:  requestsPerSec,
		burstSize:       burstSize,
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go l.cleanup()

	return l
}

// Allow reports whether a request from client may proceed now
func (l *Limiter) Allow(client string) bool {
	if l == nil {
		return true
	}

	if l.getLimiter(client).Allow() {
		l.allowedCount.Add(1)
		return true
	}
	l.rejectedCount.Add(1)
	return false
}

func (l *Limiter) getLimiter(client string) *rate.Limiter {
	now := time.Now().UnixNano()

	if val, ok := l.clients.Load(client); ok {
		c := val.(*clientLimiter)
		c.lastSeen.Store(now)
		return c.limiter
	}

	c := &clientLimiter{
		limiter: rate.NewLimiter(rate.Limit(l.requestsPerSec), l.burstSize),
	}
	c.lastSeen.Store(now)

	actual, _ := l.clients.LoadOrStore(client, c)
	return actual.(*clientLimiter).limiter
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.removeOldClients(time.Now())
		}
	}
}

// removeOldClients drops limiters idle for more than two cleanup intervals
func (l *Limiter) removeOldClients(now time.Time) int {
	threshold := now.Add(-l.cleanupInterval * 2).UnixNano()

	removed := 0
	l.clients.Range(func(key, value any) bool {
		c := value.(*clientLimiter)
		if c.lastSeen.Load() < threshold {
			l.clients.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Stop ends the cleanup goroutine
func (l *Limiter) Stop() {
	if l == nil {
		return
	}
	l.stopOnce.Do(func() { close(l.done) })
}

// GetStats returns limiter statistics
func (l *Limiter) GetStats() map[string]any {
	if l == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	clients := 0
	l.clients.Range(func(_, _ any) bool {
		clients++
		return true
	})

	return map[string]any{
		"enabled":             true,
		"requests_per_second": l.requestsPerSec,
		"burst_size":          l.burstSize,
		"active_clients":      clients,
		"allowed_total":       l.allowedCount.Load(),
		"rejected_total":      l.rejectedCount.Load(),
	}
}
