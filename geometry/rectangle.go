package geometry

import (
	"fmt"
	"math"
)

// AxisEpsilon decides when a unit direction component counts as zero, making the ray axis-aligned.
const AxisEpsilon = 1e-9

// Wall classifies where a point sits on a Rectangle's boundary.
type Wall int

const (
	// WallNone is a point off the boundary.
	WallNone Wall = iota
	// WallVertical is the left or right wall.
	WallVertical
	// WallHorizontal is the top or bottom wall.
	WallHorizontal
	// WallCorner is a point on a vertical and a horizontal wall at once.
	WallCorner
)

func (w Wall) String() string {
	switch w {
	case WallVertical:
		return "vertical"
	case WallHorizontal:
		return "horizontal"
	case WallCorner:
		return "corner"
	}
	return "none"
}

// Rectangle is an axis-aligned box with BottomLeft strictly below and left of TopRight.
type Rectangle struct {
	BottomLeft Vector
	TopRight   Vector
}

func NewRectangle(bottomLeft, topRight Vector) (Rectangle, error) {
	if !(bottomLeft.X < topRight.X) || !(bottomLeft.Y < topRight.Y) {
		return Rectangle{}, fmt.Errorf("rectangle %v-%v: %w", bottomLeft, topRight, ErrDegenerateRectangle)
	}
	return Rectangle{BottomLeft: bottomLeft, TopRight: topRight}, nil
}

// NewCenteredRectangle builds a width x height rectangle centered on the origin.
func NewCenteredRectangle(width, height float64) (Rectangle, error) {
	return NewRectangle(Vector{X: -width / 2, Y: -height / 2}, Vector{X: width / 2, Y: height / 2})
}

func (r Rectangle) Width() float64 {
	return r.TopRight.X - r.BottomLeft.X
}

func (r Rectangle) Height() float64 {
	return r.TopRight.Y - r.BottomLeft.Y
}

func (r Rectangle) Center() Vector {
	return Midpoint(r.BottomLeft, r.TopRight)
}

func (r Rectangle) TopLeft() Vector {
	return Vector{X: r.BottomLeft.X, Y: r.TopRight.Y}
}

// Contains reports whether point lies in the rectangle with every bound relaxed
// outward by Epsilon, so that computed wall points are not rejected by rounding.
func (r Rectangle) Contains(point Vector) bool {
	return r.BottomLeft.X-Epsilon <= point.X && point.X <= r.TopRight.X+Epsilon &&
		r.BottomLeft.Y-Epsilon <= point.Y && point.Y <= r.TopRight.Y+Epsilon
}

// ContainsStrictly reports whether point is inside and farther than Epsilon from every wall.
func (r Rectangle) ContainsStrictly(point Vector) bool {
	return r.BottomLeft.X+Epsilon < point.X && point.X < r.TopRight.X-Epsilon &&
		r.BottomLeft.Y+Epsilon < point.Y && point.Y < r.TopRight.Y-Epsilon
}

// RayIntersection computes the first point where a ray emanating from inside the
// rectangle crosses its boundary.
//
// With bottomLeft = (x1, y1), topRight = (x2, y2) and the ray c + t*v, the
// candidates are the solutions of c2 + t*v2 = y2, c2 + t*v2 = y1,
// c1 + t*v1 = x1 and c1 + t*v1 = x2. The intersection is the smallest t > 0
// whose point lies within the rectangle.
func (r Rectangle) RayIntersection(ray Ray) (Vector, error) {
	c := ray.Center()
	v := ray.Direction()
	x1, y1 := r.BottomLeft.X, r.BottomLeft.Y
	x2, y2 := r.TopRight.X, r.TopRight.Y

	// vertically up or down
	if math.Abs(v.X) < AxisEpsilon {
		if v.Y > 0 {
			return Vector{X: c.X, Y: y2}, nil
		}
		return Vector{X: c.X, Y: y1}, nil
	}

	// horizontally left or right
	if math.Abs(v.Y) < AxisEpsilon {
		if v.X > 0 {
			return Vector{X: x2, Y: c.Y}, nil
		}
		return Vector{X: x1, Y: c.Y}, nil
	}

	tValues := [4]float64{
		(y2 - c.Y) / v.Y, // top
		(y1 - c.Y) / v.Y, // bottom
		(x1 - c.X) / v.X, // left
		(x2 - c.X) / v.X, // right
	}

	found := false
	var best Vector
	bestT := math.Inf(1)
	for _, t := range tValues {
		if t <= Epsilon || t >= bestT {
			continue
		}
		intersection := c.Add(v.Scale(t))
		if r.Contains(intersection) {
			best, bestT, found = intersection, t, true
		}
	}

	if !found {
		return Vector{}, fmt.Errorf("ray from %v towards %v never leaves %v-%v: %w",
			c, v, r.BottomLeft, r.TopRight, ErrGeometryInvariantViolation)
	}
	return best, nil
}

// WallAt classifies a boundary point. A point on both a vertical and a
// horizontal wall is a corner.
func (r Rectangle) WallAt(point Vector) (Wall, error) {
	if !r.Contains(point) {
		return WallNone, fmt.Errorf("wall at %v: %w", point, ErrInvalidBoundaryPoint)
	}

	vertical := math.Abs(point.X-r.BottomLeft.X) < Epsilon || math.Abs(point.X-r.TopRight.X) < Epsilon
	horizontal := math.Abs(point.Y-r.BottomLeft.Y) < Epsilon || math.Abs(point.Y-r.TopRight.Y) < Epsilon

	switch {
	case vertical && horizontal:
		return WallCorner, nil
	case vertical:
		return WallVertical, nil
	case horizontal:
		return WallHorizontal, nil
	}
	return WallNone, fmt.Errorf("wall at %v: %w", point, ErrInvalidBoundaryPoint)
}

// IsOnVerticalWall reports whether a boundary point is on the left or right
// wall; corners count as vertical.
func (r Rectangle) IsOnVerticalWall(point Vector) (bool, error) {
	wall, err := r.WallAt(point)
	if err != nil {
		return false, err
	}
	return wall != WallHorizontal, nil
}

// Fold maps any point of the plane into the rectangle by undoing the mirrored
// tiling used by the method of images: the plane is tiled by copies of the
// rectangle, each adjacent copy mirrored across the shared wall.
func (r Rectangle) Fold(point Vector) Vector {
	return Vector{
		X:     foldCoordinate(point.X, r.BottomLeft.X, r.Width()),
		Y:     foldCoordinate(point.Y, r.BottomLeft.Y, r.Height()),
		Label: point.Label,
	}
}

func foldCoordinate(value, low, size float64) float64 {
	period := 2 * size
	offset := math.Mod(value-low, period)
	if offset < 0 {
		offset += period
	}
	if offset > size {
		offset = period - offset
	}
	return low + offset
}
