package geometry

// ProjectOntoSegment returns the point of the segment closest to point and its
// parameter along the segment, 0 at lineStart and 1 at lineEnd.
func ProjectOntoSegment(point, lineStart, lineEnd Vector) (Vector, float64) {
	// Vector from line start to end
	lineVec := lineEnd.Subtract(lineStart)
	// Vector from line start to point
	pointVec := point.Subtract(lineStart)

	lengthSquared := lineVec.DotProduct(lineVec)
	if lengthSquared == 0 {
		return lineStart, 0
	}

	t := pointVec.DotProduct(lineVec) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return lineStart.Add(lineVec.Scale(t)), t
}

// DistanceFromPointToLine calculates the shortest distance from a point to a line segment
func DistanceFromPointToLine(point, lineStart, lineEnd Vector) float64 {
	closest, _ := ProjectOntoSegment(point, lineStart, lineEnd)
	return point.Distance(closest)
}
