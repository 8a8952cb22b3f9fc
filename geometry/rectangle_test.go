package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func testSquare(t *testing.T) Rectangle {
	t.Helper()
	square, err := NewRectangle(Vector{X: -200, Y: -200}, Vector{X: 200, Y: 200})
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	return square
}

func mustRay(t *testing.T, center, direction Vector, length float64) Ray {
	t.Helper()
	ray, err := NewRay(center, direction, length)
	if err != nil {
		t.Fatalf("NewRay: %v", err)
	}
	return ray
}

func TestNewRectangleRejectsDegenerate(t *testing.T) {
	for _, corners := range [][2]Vector{
		{{X: 0, Y: 0}, {X: 0, Y: 10}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 5, Y: 5}, {X: -5, Y: 10}},
	} {
		if _, err := NewRectangle(corners[0], corners[1]); !errors.Is(err, ErrDegenerateRectangle) {
			t.Errorf("NewRectangle(%v, %v) err = %v", corners[0], corners[1], err)
		}
	}
}

func TestRectangleDerived(t *testing.T) {
	r, err := NewRectangle(Vector{X: -10, Y: 0}, Vector{X: 30, Y: 20})
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	if r.Width() != 40 || r.Height() != 20 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}
	if r.Center() != (Vector{X: 10, Y: 10}) {
		t.Errorf("Center = %v", r.Center())
	}
	if r.TopLeft() != (Vector{X: -10, Y: 20}) {
		t.Errorf("TopLeft = %v", r.TopLeft())
	}

	centered, err := NewCenteredRectangle(400, 300)
	if err != nil {
		t.Fatalf("NewCenteredRectangle: %v", err)
	}
	if centered.BottomLeft != (Vector{X: -200, Y: -150}) || centered.TopRight != (Vector{X: 200, Y: 150}) {
		t.Errorf("centered = %+v", centered)
	}
}

func TestContains(t *testing.T) {
	square := testSquare(t)

	tests := []struct {
		point Vector
		want  bool
	}{
		{Vector{X: 0, Y: 0}, true},
		{Vector{X: 200, Y: 200}, true},
		{Vector{X: 200 + Epsilon/2, Y: -200 - Epsilon/2}, true},
		{Vector{X: 200.001, Y: 0}, false},
		{Vector{X: 0, Y: -201}, false},
	}
	for _, tt := range tests {
		if got := square.Contains(tt.point); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}

	if square.ContainsStrictly(Vector{X: 200, Y: 0}) {
		t.Errorf("boundary point must not be strictly inside")
	}
}

func TestRayIntersectionAxisAligned(t *testing.T) {
	square := testSquare(t)

	tests := []struct {
		center    Vector
		direction Vector
		want      Vector
	}{
		{Vector{X: 0, Y: 0}, Vector{X: 1, Y: 0}, Vector{X: 200, Y: 0}},
		{Vector{X: 10, Y: 20}, Vector{X: -1, Y: 0}, Vector{X: -200, Y: 20}},
		{Vector{X: 10, Y: 20}, Vector{X: 0, Y: 1}, Vector{X: 10, Y: 200}},
		{Vector{X: 10, Y: 20}, Vector{X: 0, Y: -1}, Vector{X: 10, Y: -200}},
	}
	for _, tt := range tests {
		got, err := square.RayIntersection(mustRay(t, tt.center, tt.direction, 1000))
		if err != nil {
			t.Fatalf("RayIntersection: %v", err)
		}
		if !got.ApproxEqual(tt.want, 1e-9) {
			t.Errorf("RayIntersection(%v, %v) = %v, want %v", tt.center, tt.direction, got, tt.want)
		}
	}
}

func TestRayIntersectionDiagonal(t *testing.T) {
	square := testSquare(t)

	got, err := square.RayIntersection(mustRay(t, Vector{X: 0, Y: 100}, Vector{X: 1, Y: 1}, 1000))
	if err != nil {
		t.Fatalf("RayIntersection: %v", err)
	}
	if !got.ApproxEqual(Vector{X: 100, Y: 200}, 1e-9) {
		t.Errorf("got %v, want (100, 200)", got)
	}

	got, err = square.RayIntersection(mustRay(t, Vector{X: 0, Y: 0}, Vector{X: 1, Y: 1}, 1000))
	if err != nil {
		t.Fatalf("RayIntersection: %v", err)
	}
	if !got.ApproxEqual(Vector{X: 200, Y: 200}, 1e-9) {
		t.Errorf("got %v, want corner (200, 200)", got)
	}
}

func TestRayIntersectionFromWall(t *testing.T) {
	square := testSquare(t)

	// A ray leaving the right wall must not report its own origin.
	got, err := square.RayIntersection(mustRay(t, Vector{X: 200, Y: 0}, Vector{X: -1, Y: 1}, 1000))
	if err != nil {
		t.Fatalf("RayIntersection: %v", err)
	}
	if !got.ApproxEqual(Vector{X: 0, Y: 200}, 1e-9) {
		t.Errorf("got %v, want (0, 200)", got)
	}
}

func TestRayIntersectionOutsideRectangle(t *testing.T) {
	square := testSquare(t)

	_, err := square.RayIntersection(mustRay(t, Vector{X: 500, Y: 500}, Vector{X: 1, Y: 1}, 1000))
	if !errors.Is(err, ErrGeometryInvariantViolation) {
		t.Errorf("err = %v, want ErrGeometryInvariantViolation", err)
	}
}

func TestRayIntersectionIsContained(t *testing.T) {
	square := testSquare(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		center := Vector{X: rng.Float64()*398 - 199, Y: rng.Float64()*398 - 199}
		angle := rng.Float64() * 2 * math.Pi
		ray := mustRay(t, center, Vector{X: math.Cos(angle), Y: math.Sin(angle)}, 1000)

		got, err := square.RayIntersection(ray)
		if err != nil {
			t.Fatalf("RayIntersection(%v, %v): %v", center, ray.Direction(), err)
		}
		if !square.Contains(got) {
			t.Fatalf("intersection %v outside square", got)
		}
		if _, err := square.WallAt(got); err != nil {
			t.Fatalf("intersection %v not on boundary: %v", got, err)
		}
	}
}

func TestWallAt(t *testing.T) {
	square := testSquare(t)

	tests := []struct {
		point Vector
		want  Wall
	}{
		{Vector{X: 200, Y: 0}, WallVertical},
		{Vector{X: -200, Y: 37}, WallVertical},
		{Vector{X: 12, Y: -200}, WallHorizontal},
		{Vector{X: 12, Y: 200 + Epsilon/2}, WallHorizontal},
		{Vector{X: 200, Y: 200}, WallCorner},
	}
	for _, tt := range tests {
		got, err := square.WallAt(tt.point)
		if err != nil {
			t.Fatalf("WallAt(%v): %v", tt.point, err)
		}
		if got != tt.want {
			t.Errorf("WallAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}

	for _, point := range []Vector{{X: 0, Y: 0}, {X: 300, Y: 0}} {
		if _, err := square.IsOnVerticalWall(point); !errors.Is(err, ErrInvalidBoundaryPoint) {
			t.Errorf("IsOnVerticalWall(%v) err = %v", point, err)
		}
	}

	vertical, err := square.IsOnVerticalWall(Vector{X: 5, Y: -200})
	if err != nil || vertical {
		t.Errorf("IsOnVerticalWall(bottom) = %v, %v", vertical, err)
	}
}

func TestFold(t *testing.T) {
	square := testSquare(t)

	tests := []struct {
		point Vector
		want  Vector
	}{
		{Vector{X: 10, Y: -20}, Vector{X: 10, Y: -20}},
		{Vector{X: 250, Y: 0}, Vector{X: 150, Y: 0}},
		{Vector{X: 0, Y: -250}, Vector{X: 0, Y: -150}},
		{Vector{X: -650, Y: 0}, Vector{X: 150, Y: 0}},
		{Vector{X: 610, Y: 990}, Vector{X: -190, Y: 190}},
	}
	for _, tt := range tests {
		if got := square.Fold(tt.point); !got.ApproxEqual(tt.want, 1e-9) {
			t.Errorf("Fold(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
