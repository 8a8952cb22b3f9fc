package puzzle

import (
	"time"

	"github.com/jdeal-mediamath/clockwork"
)

// Debouncer reports ready once delay has passed since the last Trigger.
type Debouncer struct {
	clock       clockwork.Clock
	delay       time.Duration
	pending     bool
	lastTrigger time.Time
}

func NewDebouncer(clock clockwork.Clock, delay time.Duration) *Debouncer {
	return &Debouncer{
		clock: clock,
		delay: delay,
	}
}

func (d *Debouncer) Trigger() {
	d.pending = true
	d.lastTrigger = d.clock.Now()
}

// Ready reports whether a trigger has settled, and consumes it if so.
func (d *Debouncer) Ready() bool {
	if !d.pending || d.clock.Now().Sub(d.lastTrigger) < d.delay {
		return false
	}

	d.pending = false
	return true
}

func (d *Debouncer) Pending() bool {
	return d.pending
}

func (d *Debouncer) Reset() {
	d.pending = false
}
