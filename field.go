package occluder

// Distance is a per-axis positive-direction run length to the next shell
// voxel. It replaces the source's -1/INT_MAX sentinels (spec design note:
// "do not leak raw sentinels past module boundaries") with an explicit
// tag: Infinite means no shell voxel exists along the ray at all.
type Distance struct {
	Value    uint32
	Infinite bool
}

func infiniteDistance() Distance { return Distance{Infinite: true} }

// Visibility is a bitmask of "some shell voxel exists along this ray from
// this cell", one bit per axial direction.
type Visibility uint8

const (
	VisibilityPlusX Visibility = 1 << iota
	VisibilityMinusX
	VisibilityPlusY
	VisibilityMinusY
	VisibilityPlusZ
	VisibilityMinusZ

	VisibilityAll = VisibilityPlusX | VisibilityMinusX | VisibilityPlusY | VisibilityMinusY | VisibilityPlusZ | VisibilityMinusZ
)

// FieldCell is the per-cell status and min-distance record (spec §3,
// "Voxel status" and "Min-distance field").
type FieldCell struct {
	Dist       [3]Distance // dx, dy, dz
	Visibility Visibility
	Inner      bool
	Clipped    bool
}

// active reports whether a cell currently participates in extraction:
// inner and not yet consumed by a prior extent (spec §3, "a cell is
// active iff inner ∧ ¬clipped").
func (c FieldCell) active() bool {
	return c.Inner && !c.Clipped
}

// Field is the dense, cell-indexed array of FieldCell plus the grid and
// shell set it was built from.
type Field struct {
	Grid   Grid
	Shell  *ShellSet
	Planes *planeBuckets
	Cells  []FieldCell
}

// buildField computes visibility, inner flag and (dx,dy,dz) distances for
// every cell (component E).
func buildField(grid Grid, shell *ShellSet, planes *planeBuckets) *Field {
	f := &Field{
		Grid:   grid,
		Shell:  shell,
		Planes: planes,
		Cells:  make([]FieldCell, grid.cellCount()),
	}

	for i := range f.Cells {
		pos := Unflatten(uint32(i), grid.Dim)
		f.Cells[i] = computeFieldCell(grid, planes, pos)
	}

	return f
}

func computeFieldCell(grid Grid, planes *planeBuckets, pos UVec3) FieldCell {
	cell := FieldCell{
		Dist: [3]Distance{infiniteDistance(), infiniteDistance(), infiniteDistance()},
	}

	xi := Flatten2D(pos.Y, pos.Z, grid.Dim.Y)
	for _, vx := range planes.x[xi] {
		delta := int64(vx) - int64(pos.X)
		switch {
		case delta > 0:
			cell.Visibility |= VisibilityPlusX
			if d := uint32(delta); cell.Dist[0].Infinite || d < cell.Dist[0].Value {
				cell.Dist[0] = Distance{Value: d}
			}
		case delta < 0:
			cell.Visibility |= VisibilityMinusX
		default:
			cell.Dist[0] = Distance{Value: 0}
		}
	}

	yi := Flatten2D(pos.X, pos.Z, grid.Dim.X)
	for _, vy := range planes.y[yi] {
		delta := int64(vy) - int64(pos.Y)
		switch {
		case delta > 0:
			cell.Visibility |= VisibilityPlusY
			if d := uint32(delta); cell.Dist[1].Infinite || d < cell.Dist[1].Value {
				cell.Dist[1] = Distance{Value: d}
			}
		case delta < 0:
			cell.Visibility |= VisibilityMinusY
		default:
			cell.Dist[1] = Distance{Value: 0}
		}
	}

	zi := Flatten2D(pos.X, pos.Y, grid.Dim.X)
	for _, vz := range planes.z[zi] {
		delta := int64(vz) - int64(pos.Z)
		switch {
		case delta > 0:
			cell.Visibility |= VisibilityPlusZ
			if d := uint32(delta); cell.Dist[2].Infinite || d < cell.Dist[2].Value {
				cell.Dist[2] = Distance{Value: d}
			}
		case delta < 0:
			cell.Visibility |= VisibilityMinusZ
		default:
			cell.Dist[2] = Distance{Value: 0}
		}
	}

	if cell.Visibility == VisibilityAll {
		meaningful := func(d Distance) bool { return !d.Infinite && d.Value != 0 }
		if meaningful(cell.Dist[0]) && meaningful(cell.Dist[1]) && meaningful(cell.Dist[2]) {
			cell.Inner = true
		}
	}

	return cell
}

func (f *Field) at(p UVec3) *FieldCell {
	return &f.Cells[Flatten(p, f.Grid.Dim)]
}
