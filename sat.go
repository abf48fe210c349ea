package occluder

// triangleIntersectsBox is the 13-axis separating-axis test (Akenine-Möller)
// between a triangle and an axis-aligned box. It never reports a false
// negative: a triangle that truly intersects the box always tests true,
// so shell voxelization stays conservative.
//
// center is the box center, halfExtent its half-size on each axis.
func triangleIntersectsBox(tri Triangle, center, halfExtent Vec3) bool {
	v0 := tri.V0.Sub(center)
	v1 := tri.V1.Sub(center)
	v2 := tri.V2.Sub(center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	if !axisTestEdge(e0, v0, v1, v2, halfExtent) {
		return false
	}
	if !axisTestEdge(e1, v0, v1, v2, halfExtent) {
		return false
	}
	if !axisTestEdge(e2, v0, v1, v2, halfExtent) {
		return false
	}

	if lo, hi := findMinMax3(v0.X, v1.X, v2.X); lo > halfExtent.X || hi < -halfExtent.X {
		return false
	}
	if lo, hi := findMinMax3(v0.Y, v1.Y, v2.Y); lo > halfExtent.Y || hi < -halfExtent.Y {
		return false
	}
	if lo, hi := findMinMax3(v0.Z, v1.Z, v2.Z); lo > halfExtent.Z || hi < -halfExtent.Z {
		return false
	}

	normal := e0.Cross(e1)
	distance := -normal.Dot(v0)
	return aabbIntersectsPlane(normal, distance, halfExtent)
}

func findMinMax3(a, b, c float32) (min, max float32) {
	min, max = a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	return min, max
}

// axisTestEdge runs the three edge-cross-axis projections for a single
// triangle edge against the box half-extent, one per coordinate axis crossed
// with that edge; its three calls in triangleIntersectsBox make up the nine.
func axisTestEdge(edge, v0, v1, v2, halfExtent Vec3) bool {
	abs := edge.Abs()

	if !axisTestX(edge.Z, edge.Y, abs.Z, abs.Y, v0, v1, v2, halfExtent) {
		return false
	}
	if !axisTestY(edge.Z, edge.X, abs.Z, abs.X, v0, v1, v2, halfExtent) {
		return false
	}
	if !axisTestZ(edge.Y, edge.X, abs.Y, abs.X, v0, v1, v2, halfExtent) {
		return false
	}
	return true
}

func axisTestX(a, b, fa, fb float32, v0, v1, v2, halfExtent Vec3) bool {
	p0 := a*v0.Y - b*v0.Z
	p1 := a*v1.Y - b*v1.Z
	p2 := a*v2.Y - b*v2.Z
	lo, hi := findMinMax3(p0, p1, p2)
	rad := fa*halfExtent.Y + fb*halfExtent.Z
	return !(lo > rad || hi < -rad)
}

func axisTestY(a, b, fa, fb float32, v0, v1, v2, halfExtent Vec3) bool {
	p0 := -a*v0.X + b*v0.Z
	p1 := -a*v1.X + b*v1.Z
	p2 := -a*v2.X + b*v2.Z
	lo, hi := findMinMax3(p0, p1, p2)
	rad := fa*halfExtent.X + fb*halfExtent.Z
	return !(lo > rad || hi < -rad)
}

func axisTestZ(a, b, fa, fb float32, v0, v1, v2, halfExtent Vec3) bool {
	p0 := a*v0.X - b*v0.Y
	p1 := a*v1.X - b*v1.Y
	p2 := a*v2.X - b*v2.Y
	lo, hi := findMinMax3(p0, p1, p2)
	rad := fa*halfExtent.X + fb*halfExtent.Y
	return !(lo > rad || hi < -rad)
}

// aabbIntersectsPlane tests the triangle's supporting plane against a box
// centered at the origin with the given half-extent.
func aabbIntersectsPlane(normal Vec3, distance float32, halfExtent Vec3) bool {
	var vmin, vmax Vec3

	if normal.X > 0 {
		vmin.X, vmax.X = -halfExtent.X, halfExtent.X
	} else {
		vmin.X, vmax.X = halfExtent.X, -halfExtent.X
	}
	if normal.Y > 0 {
		vmin.Y, vmax.Y = -halfExtent.Y, halfExtent.Y
	} else {
		vmin.Y, vmax.Y = halfExtent.Y, -halfExtent.Y
	}
	if normal.Z > 0 {
		vmin.Z, vmax.Z = -halfExtent.Z, halfExtent.Z
	} else {
		vmin.Z, vmax.Z = halfExtent.Z, -halfExtent.Z
	}

	if normal.Dot(vmin)+distance > 0 {
		return false
	}
	if normal.Dot(vmax)+distance >= 0 {
		return true
	}
	return false
}
