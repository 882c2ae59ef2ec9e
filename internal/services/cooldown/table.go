// Package cooldown tracks per-court cooldowns after a completed game.
// It is a side table of court number to expiry, evaluated lazily against
// the injected clock; there are no background timers to leak or cancel.
package cooldown

import (
	"time"

	"github.com/openplay/courtqueue/internal/dependencies/clock"
)

// DefaultDuration is how long a court stays in cooldown after a game
const DefaultDuration = 10 * time.Second

// Table tracks cooldown expiries per court number
type Table struct {
	clock    clock.Clock
	duration time.Duration
	expiries map[int]time.Time
}

// New creates a cooldown table with the given duration. A non-positive
// duration falls back to the default.
func New(clk clock.Clock, duration time.Duration) *Table {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Table{
		clock:    clk,
		duration: duration,
		expiries: make(map[int]time.Time),
	}
}

// Start puts the given court into cooldown
func (t *Table) Start(courtNumber int) {
	t.expiries[courtNumber] = t.clock.Now().Add(t.duration)
}

// Active reports whether the court is currently cooling down. Expired
// entries are pruned as a side effect.
func (t *Table) Active(courtNumber int) bool {
	expiry, ok := t.expiries[courtNumber]
	if !ok {
		return false
	}
	if !t.clock.Now().Before(expiry) {
		delete(t.expiries, courtNumber)
		return false
	}
	return true
}

// Cancel clears the cooldown for a court that no longer exists or whose
// pending cooldown a mutation has invalidated.
func (t *Table) Cancel(courtNumber int) {
	delete(t.expiries, courtNumber)
}

// Reset drops all cooldowns (session terminated or reloaded)
func (t *Table) Reset() {
	t.expiries = make(map[int]time.Time)
}

// Remap rewrites court numbers after courts are renumbered. The mapping
// is old number to new number; unmapped entries are dropped.
func (t *Table) Remap(mapping map[int]int) {
	next := make(map[int]time.Time, len(t.expiries))
	for old, expiry := range t.expiries {
		if renumbered, ok := mapping[old]; ok {
			next[renumbered] = expiry
		}
	}
	t.expiries = next
}
