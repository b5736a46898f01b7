package clock

import (
	"sync"
	"time"

	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

// System reads wall-clock time in nanoseconds. A reading that would go
// backwards (NTP step, VM migration) is clamped to the previous value.
type System struct {
	mu   sync.Mutex
	last uint64
	now  func() time.Time
}

func NewSystem() ports.Clock {
	return &System{now: time.Now}
}

func (c *System) Now() (uint64, error) {
	ns := c.now().UnixNano()

	c.mu.Lock()
	defer c.mu.Unlock()

	if ns > 0 && uint64(ns) > c.last {
		c.last = uint64(ns)
	}
	return c.last, nil
}
