package game

import (
	"testing"

	"github.com/meghashyamc/assassin/geometry"
	"github.com/meghashyamc/assassin/puzzle"
)

func TestViewRoundTrip(t *testing.T) {
	view := NewView(800, 600)

	x, y := view.ToScreen(geometry.Vector{X: -200, Y: 200})
	if x != 200 || y != 100 {
		t.Errorf("ToScreen(-200, 200) = (%v, %v), want (200, 100)", x, y)
	}

	if got := view.ToCartesian(400, 300); got != (geometry.Vector{}) {
		t.Errorf("screen center maps to %v", got)
	}
	if got := view.ToCartesian(600, 100); got != (geometry.Vector{X: 200, Y: 200}) {
		t.Errorf("ToCartesian(600, 100) = %v", got)
	}
}

func TestIsGrabbed(t *testing.T) {
	target := geometry.Vector{X: 10, Y: 10}
	if !isGrabbed(target, geometry.Vector{X: 15, Y: 12}) {
		t.Error("cursor on the marker should grab it")
	}
	if isGrabbed(target, geometry.Vector{X: 40, Y: 10}) {
		t.Error("cursor far from the marker should not grab it")
	}
}

func TestShotOutcome(t *testing.T) {
	if got := shotOutcome(puzzle.Shot{}); got != "nothing" {
		t.Errorf("shotOutcome(empty) = %q", got)
	}
	if got := shotOutcome(puzzle.Shot{AbsorbedBy: geometry.LabelTarget}); got != "target" {
		t.Errorf("shotOutcome(target) = %q", got)
	}
}
