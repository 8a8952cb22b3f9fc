// Package guard places the guards that block every shot from an assassin to a
// target inside a rectangular arena with reflecting walls.
//
// A shot bouncing off the walls is a straight line in the plane tiled with
// mirrored copies of the arena. The tiling repeats every 2*width by 2*height,
// and inside one such period the target has four images: itself, mirrored
// across the top wall, across the right wall, and across both. Every shot that
// reaches the target ends at one of those images shifted by a lattice vector,
// and the midpoint of the straight shot folds back to one of 16 points of the
// arena. A guard on each of them blocks every shot.
package guard

import (
	"errors"
	"fmt"

	"github.com/meghashyamc/assassin/geometry"
)

// Count is the number of guards ComputeOptimalGuards returns.
const Count = 16

var ErrPointOutsideArena = errors.New("point is not strictly inside the arena")

// ComputeOptimalGuards returns the 16 guard positions for assassin and target,
// both of which must lie strictly inside square.
func ComputeOptimalGuards(square geometry.Rectangle, assassin, target geometry.Vector) ([]geometry.Vector, error) {
	if !square.ContainsStrictly(assassin) {
		return nil, fmt.Errorf("assassin %v: %w", assassin, ErrPointOutsideArena)
	}
	if !square.ContainsStrictly(target) {
		return nil, fmt.Errorf("target %v: %w", target, ErrPointOutsideArena)
	}

	guards := make([]geometry.Vector, 0, Count)
	for _, mirrored := range mirrors(square, target) {
		for _, image := range translations(square, mirrored) {
			midpoint := geometry.Midpoint(assassin, image)
			guard := unmirror(square, untranslate(square, midpoint))
			guards = append(guards, guard.WithLabel(geometry.LabelGuard))
		}
	}

	return guards, nil
}

// mirrors reflects point across the top wall, the right wall, and both.
func mirrors(square geometry.Rectangle, point geometry.Vector) [4]geometry.Vector {
	right := 2*square.TopRight.X - point.X
	top := 2*square.TopRight.Y - point.Y

	return [4]geometry.Vector{
		{X: point.X, Y: point.Y},
		{X: point.X, Y: top},
		{X: right, Y: point.Y},
		{X: right, Y: top},
	}
}

// translations shifts point by none, one period left, one period down, and both.
func translations(square geometry.Rectangle, point geometry.Vector) [4]geometry.Vector {
	dx := 2 * square.Width()
	dy := 2 * square.Height()

	return [4]geometry.Vector{
		{X: point.X, Y: point.Y},
		{X: point.X - dx, Y: point.Y},
		{X: point.X, Y: point.Y - dy},
		{X: point.X - dx, Y: point.Y - dy},
	}
}

// untranslate moves point from the quadrant it falls in back into the period
// starting at square.BottomLeft, which holds the arena and its three mirrors.
func untranslate(square geometry.Rectangle, point geometry.Vector) geometry.Vector {
	if point.X < square.BottomLeft.X {
		point.X += 2 * square.Width()
	}
	if point.Y < square.BottomLeft.Y {
		point.Y += 2 * square.Height()
	}
	return point
}

// unmirror folds a point of the mirrored copies back into square.
func unmirror(square geometry.Rectangle, point geometry.Vector) geometry.Vector {
	if point.X > square.TopRight.X {
		point.X = 2*square.TopRight.X - point.X
	}
	if point.Y > square.TopRight.Y {
		point.Y = 2*square.TopRight.Y - point.Y
	}
	return point
}
