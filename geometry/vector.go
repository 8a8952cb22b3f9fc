package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for degenerate vectors, containment and wall classification.
const Epsilon = 1e-4

// Label tags a Vector with the puzzle role it plays.
type Label string

const (
	// LabelNone marks an untagged point.
	LabelNone Label = ""
	// LabelAssassin marks the shooter.
	LabelAssassin Label = "assassin"
	// LabelTarget marks the point the guards protect.
	LabelTarget Label = "target"
	// LabelGuard marks one of the points that intercept shots.
	LabelGuard Label = "guard"
)

type Vector struct {
	X     float64
	Y     float64
	Label Label
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// WithLabel returns a copy of v tagged with label.
func (v Vector) WithLabel(label Label) Vector {
	v.Label = label
	return v
}

func (v Vector) Copy() Vector {
	return v
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector) Reflect(normal Vector) Vector {
	dotProduct := v.DotProduct(normal)

	return Vector{
		X: v.X - 2*dotProduct*normal.X,
		Y: v.Y - 2*dotProduct*normal.Y,
	}
}

// Norm calculates the euclidean length of a vector
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector pointing the same way as v.
func (v Vector) Normalized() (Vector, error) {
	norm := v.Norm()
	if norm < Epsilon {
		return Vector{}, fmt.Errorf("cannot normalize (%g, %g): %w", v.X, v.Y, ErrDegenerateVector)
	}
	return Vector{X: v.X / norm, Y: v.Y / norm}, nil
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector) Distance(other Vector) float64 {
	return v.Subtract(other).Norm()
}

// ApproxEqual reports whether both coordinates differ by at most tolerance.
func (v Vector) ApproxEqual(other Vector, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance && math.Abs(v.Y-other.Y) <= tolerance
}

func (v Vector) String() string {
	if v.Label == LabelNone {
		return fmt.Sprintf("(%g, %g)", v.X, v.Y)
	}
	return fmt.Sprintf("%s(%g, %g)", v.Label, v.X, v.Y)
}

func Midpoint(a, b Vector) Vector {
	return Vector{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
