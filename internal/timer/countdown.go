package timer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrBadSeed is returned when the display text does not start with an integer.
var ErrBadSeed = errors.New("countdown seed is not a number")

// Interval is the countdown period.
const Interval = time.Second

// ParseSeed reads the leading integer of a countdown display, ignoring
// surrounding whitespace and any trailing text ("90s" is 90).
func ParseSeed(text string) (int, error) {
	s := strings.TrimSpace(text)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrBadSeed, text)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadSeed, text, err)
	}
	return n, nil
}

// Countdown decrements once per tick and stops for good when it reaches zero.
type Countdown struct {
	remaining int
	expired   bool
	mu        sync.Mutex

	// OnTick receives the new remaining value after each decrement.
	OnTick func(remaining int)
	// OnExpire is called exactly once, on the tick that reaches zero.
	OnExpire func()
}

// New returns a countdown starting at seed. Negative seeds count as zero.
func New(seed int) *Countdown {
	if seed < 0 {
		seed = 0
	}
	return &Countdown{remaining: seed}
}

// Remaining returns the current value.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Expired reports whether the countdown has finished.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Tick advances the countdown by one step and reports whether it should keep
// ticking. Ticks after expiry are no-ops.
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	if c.expired {
		c.mu.Unlock()
		return false
	}
	ticked := false
	if c.remaining > 0 {
		c.remaining--
		ticked = true
	}
	remaining := c.remaining
	c.expired = remaining == 0
	expired := c.expired
	onTick, onExpire := c.OnTick, c.OnExpire
	c.mu.Unlock()

	if ticked && onTick != nil {
		onTick(remaining)
	}
	if expired {
		log.Printf("[TIMER] Round over")
		if onExpire != nil {
			onExpire()
		}
	}
	return !expired
}

// Run ticks on every value from ticks until the countdown expires or ctx is
// done. It returns nil on expiry.
func (c *Countdown) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if !c.Tick() {
				return nil
			}
		}
	}
}

// Start runs the countdown on a one-second ticker in its own goroutine. The
// ticker is stopped when the countdown expires or ctx is cancelled.
func (c *Countdown) Start(ctx context.Context) {
	ticker := time.NewTicker(Interval)
	log.Printf("[TIMER] Started at %d", c.Remaining())
	go func() {
		defer ticker.Stop()
		if err := c.Run(ctx, ticker.C); err != nil {
			log.Printf("[TIMER] Stopped: %v", err)
		}
	}()
}
