package occluder

// BoxTypeFlags selects which faces of an extracted box get tessellated.
type BoxTypeFlags uint8

const (
	BoxTypeNone      BoxTypeFlags = 0
	BoxTypeDiagonals BoxTypeFlags = 1 << 0
	BoxTypeTop       BoxTypeFlags = 1 << 1
	BoxTypeBottom    BoxTypeFlags = 1 << 2
	BoxTypeSides     BoxTypeFlags = 1 << 3

	// BoxTypeRegular is all six faces: Sides, Top and Bottom together.
	BoxTypeRegular = BoxTypeSides | BoxTypeTop | BoxTypeBottom
)

// cubeVertices are the 8 corners of a unit cube in local (-1..1) space, in
// the fixed order every index template below assumes.
var cubeVertices = [8]Vec3{
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, -1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
}

var cubeIndicesRegular = [36]uint16{
	0, 1, 2, 0, 2, 3,
	3, 2, 6, 3, 6, 7,
	0, 7, 4, 0, 3, 7,
	4, 7, 5, 7, 6, 5,
	0, 4, 5, 0, 5, 1,
	1, 5, 6, 1, 6, 2,
}

var cubeIndicesSides = [24]uint16{
	0, 1, 2, 0, 2, 3,
	3, 2, 6, 3, 6, 7,
	4, 7, 5, 7, 6, 5,
	0, 4, 5, 0, 5, 1,
}

var cubeIndicesDiagonals = [12]uint16{
	0, 1, 6, 0, 6, 7,
	4, 5, 2, 4, 2, 3,
}

var cubeIndicesBottom = [6]uint16{
	1, 5, 6, 1, 6, 2,
}

var cubeIndicesTop = [6]uint16{
	0, 7, 4, 0, 3, 7,
}

// selectIndices returns the index template for one flag out of flags (the
// first match in REGULAR, SIDES, BOTTOM, TOP, DIAGONALS priority order,
// matching the original face-selection precedence) and which flag bits it
// consumed.
func selectIndices(flags BoxTypeFlags) ([]uint16, BoxTypeFlags) {
	switch {
	case flags&BoxTypeRegular == BoxTypeRegular:
		return cubeIndicesRegular[:], BoxTypeRegular
	case flags&BoxTypeSides == BoxTypeSides:
		return cubeIndicesSides[:], BoxTypeSides
	case flags&BoxTypeBottom == BoxTypeBottom:
		return cubeIndicesBottom[:], BoxTypeBottom
	case flags&BoxTypeTop == BoxTypeTop:
		return cubeIndicesTop[:], BoxTypeTop
	case flags&BoxTypeDiagonals == BoxTypeDiagonals:
		return cubeIndicesDiagonals[:], BoxTypeDiagonals
	default:
		return nil, BoxTypeNone
	}
}

func indexCountFor(flags BoxTypeFlags) int {
	count := 0
	for flags != BoxTypeNone {
		indices, consumed := selectIndices(flags)
		if consumed == BoxTypeNone {
			break
		}
		count += len(indices)
		flags &^= consumed
	}
	return count
}

// appendBox appends one box's 8 vertices and the indices selected by
// boxType to mesh, translating and scaling the unit cube by center and
// halfExtent (component I).
func appendBox(mesh *Mesh, center, halfExtent Vec3, boxType BoxTypeFlags) {
	base := uint16(len(mesh.Vertices) / 3)

	for _, v := range cubeVertices {
		world := v.Mul(halfExtent).Add(center)
		mesh.Vertices = append(mesh.Vertices, world.X, world.Y, world.Z)
	}

	remaining := boxType
	for remaining != BoxTypeNone {
		indices, consumed := selectIndices(remaining)
		if consumed == BoxTypeNone {
			break
		}
		for _, idx := range indices {
			mesh.Indices = append(mesh.Indices, idx+base)
		}
		remaining &^= consumed
	}
}
