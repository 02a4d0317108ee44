package kraken_auth

import (
	"strconv"
	"sync"
	"time"
)

// NonceSource hands out millisecond nonces that never repeat or go backwards,
// even if the wall clock stalls or is stepped back between calls.
type NonceSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewNonceSource() *NonceSource {
	return &NonceSource{now: time.Now}
}

// NewNonceSourceWithClock is NewNonceSource with an injected clock.
func NewNonceSourceWithClock(now func() time.Time) *NonceSource {
	return &NonceSource{now: now}
}

// Next returns the next nonce as a decimal string.
func (n *NonceSource) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	ms := n.now().UnixMilli()
	if ms <= n.last {
		ms = n.last + 1
	}
	n.last = ms
	return strconv.FormatInt(ms, 10)
}
