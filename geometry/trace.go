package geometry

import "fmt"

const (
	// MinReflectionLength suppresses reflections too short to be meaningful.
	MinReflectionLength = 10.0

	// DefaultStopRadius is how close a ray has to pass to a stopping point to be absorbed by it.
	DefaultStopRadius = 6.0
)

var (
	verticalWallNormal   = Vector{X: 1}
	horizontalWallNormal = Vector{Y: 1}
)

// Split is one straight piece of a traced ray. Ray is the reflected
// continuation, or nil when the length budget is exhausted.
type Split struct {
	Segment [2]Vector
	Ray     *Ray
}

// SplitRay cuts ray at its first wall intersection and reflects the rest of it.
// When less than MinReflectionLength would remain after the wall, the segment
// instead runs to the unreflected end of the ray and no continuation is returned.
func (r Rectangle) SplitRay(ray Ray) (Split, error) {
	center := ray.Center()
	intersection, err := r.RayIntersection(ray)
	if err != nil {
		return Split{}, fmt.Errorf("split ray: %w", err)
	}

	remaining := ray.Length() - center.Distance(intersection)
	if remaining < MinReflectionLength {
		return Split{Segment: [2]Vector{center, ray.End()}}, nil
	}

	wall, err := r.WallAt(intersection)
	if err != nil {
		return Split{}, fmt.Errorf("split ray: %w", err)
	}

	direction := ray.Direction()
	switch wall {
	case WallVertical:
		direction = direction.Reflect(verticalWallNormal)
	case WallHorizontal:
		direction = direction.Reflect(horizontalWallNormal)
	case WallCorner:
		direction = direction.Reflect(verticalWallNormal).Reflect(horizontalWallNormal)
	}

	reflected, err := NewRay(intersection, direction, remaining)
	if err != nil {
		return Split{}, fmt.Errorf("split ray: %w", err)
	}

	return Split{Segment: [2]Vector{center, intersection}, Ray: &reflected}, nil
}

// RayToPoints traces ray through its bounces using DefaultStopRadius.
func (r Rectangle) RayToPoints(ray Ray, stoppingPoints []Vector) ([]Vector, error) {
	return r.RayToPointsWithin(ray, stoppingPoints, DefaultStopRadius)
}

// RayToPointsWithin returns the vertices of the bounce path of ray: its center
// followed by the end of every segment. A segment passing within stopRadius of
// a stopping point is cut at the foot of the perpendicular from the stopping
// point nearest to the segment start, and the trace ends there.
func (r Rectangle) RayToPointsWithin(ray Ray, stoppingPoints []Vector, stopRadius float64) ([]Vector, error) {
	trace, err := r.TraceWithin(ray, stoppingPoints, stopRadius)
	if err != nil {
		return nil, err
	}
	return trace.Points, nil
}

// Trace is a traced bounce path. Stop is the index into the stopping points of
// the one that cut the path, or -1 if the ray ran its full length.
type Trace struct {
	Points []Vector
	Stop   int
}

// TraceWithin traces ray like RayToPointsWithin and also reports which
// stopping point ended the path.
func (r Rectangle) TraceWithin(ray Ray, stoppingPoints []Vector, stopRadius float64) (Trace, error) {
	points := []Vector{ray.Center()}

	current := ray
	for {
		split, err := r.SplitRay(current)
		if err != nil {
			return Trace{}, err
		}

		start, end := split.Segment[0], split.Segment[1]
		if foot, index := firstStop(start, end, stoppingPoints, stopRadius); index >= 0 {
			return Trace{Points: append(points, foot), Stop: index}, nil
		}

		points = append(points, end)
		if split.Ray == nil {
			return Trace{Points: points, Stop: -1}, nil
		}
		current = *split.Ray
	}
}

// firstStop returns the foot on the segment of the stopping point met first
// along it, and that point's index, or -1 if none is within stopRadius.
func firstStop(start, end Vector, stoppingPoints []Vector, stopRadius float64) (Vector, int) {
	var (
		best  Vector
		bestT float64
	)
	index := -1

	for i, stoppingPoint := range stoppingPoints {
		foot, t := ProjectOntoSegment(stoppingPoint, start, end)
		if stoppingPoint.Distance(foot) > stopRadius {
			continue
		}
		if index < 0 || t < bestT {
			best, bestT, index = foot, t, i
		}
	}

	return best, index
}

// PathLength sums the lengths of the segments of a polyline.
func PathLength(points []Vector) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
