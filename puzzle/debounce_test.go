package puzzle

import (
	"testing"
	"time"

	"github.com/jdeal-mediamath/clockwork"
)

func TestDebouncerWaitsForQuietPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewDebouncer(clock, 100*time.Millisecond)

	if d.Ready() {
		t.Fatal("ready without a trigger")
	}

	d.Trigger()
	clock.Advance(60 * time.Millisecond)
	if d.Ready() {
		t.Fatal("ready before the delay passed")
	}

	// A new trigger restarts the quiet period.
	d.Trigger()
	clock.Advance(60 * time.Millisecond)
	if d.Ready() {
		t.Fatal("ready before the delay passed since the last trigger")
	}

	clock.Advance(40 * time.Millisecond)
	if !d.Ready() {
		t.Fatal("not ready after the delay")
	}
	if d.Ready() || d.Pending() {
		t.Fatal("trigger was not consumed")
	}
}

func TestDebouncerReset(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewDebouncer(clock, time.Millisecond)

	d.Trigger()
	d.Reset()
	clock.Advance(time.Second)
	if d.Ready() {
		t.Fatal("ready after reset")
	}
}
