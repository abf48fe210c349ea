package occluder

// planeBuckets holds, for every grid line parallel to an axis, the sorted
// coordinates of the shell voxels that line contains. x is indexed by
// (y,z), y by (x,z), z by (x,y); each bucket only needs to store the
// coordinate along its own axis since the other two are fixed by the
// bucket's position.
type planeBuckets struct {
	x [][]uint32 // len Dy*Dz, each entry sorted ascending by x
	y [][]uint32 // len Dx*Dz, each entry sorted ascending by y
	z [][]uint32 // len Dx*Dy, each entry sorted ascending by z
}

func buildPlaneBuckets(shell *ShellSet, dim UVec3) *planeBuckets {
	p := &planeBuckets{
		x: make([][]uint32, dim.Y*dim.Z),
		y: make([][]uint32, dim.X*dim.Z),
		z: make([][]uint32, dim.X*dim.Y),
	}
	for i := range p.x {
		p.x[i] = make([]uint32, 0, dim.X)
	}
	for i := range p.y {
		p.y[i] = make([]uint32, 0, dim.Y)
	}
	for i := range p.z {
		p.z[i] = make([]uint32, 0, dim.Z)
	}

	// Walking Voxels in the order they were discovered during shell
	// voxelization does not guarantee ascending coordinate order along a
	// line, so each append must land in sorted position. In practice shell
	// voxels are discovered close to lexicographic cell order already;
	// insertion keeps the invariant exact regardless.
	for _, v := range shell.Voxels {
		xi := Flatten2D(v.Y, v.Z, dim.Y)
		p.x[xi] = insertSorted(p.x[xi], v.X)

		yi := Flatten2D(v.X, v.Z, dim.X)
		p.y[yi] = insertSorted(p.y[yi], v.Y)

		zi := Flatten2D(v.X, v.Y, dim.X)
		p.z[zi] = insertSorted(p.z[zi], v.Z)
	}

	return p
}

// Flatten2D linearizes a 2-D index (a,b) where a varies fastest, against a
// row width of dimA.
func Flatten2D(a, b, dimA uint32) uint32 {
	return a + dimA*b
}

func insertSorted(xs []uint32, v uint32) []uint32 {
	i := len(xs)
	for i > 0 && xs[i-1] > v {
		i--
	}
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = v
	return xs
}
