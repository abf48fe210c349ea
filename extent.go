package occluder

import "math"

// Extent is a candidate axis-aligned box of cells: Position is its min
// corner in cell coordinates, Extent its size in cells along each axis.
type Extent struct {
	Position UVec3
	Extent   UVec3
	Volume   uint64
}

// findExtent grows the largest axis-aligned box of active cells anchored at
// anchor's min corner, walking diagonally outward one z-slice at a time and
// shrinking the available (x,y) extent as shallower slices are found
// (component G). anchor must be an active cell.
func findExtent(field *Field, anchor UVec3) Extent {
	root := field.at(anchor)

	type slice struct{ x, y uint32 }
	slices := make([]slice, 0, root.Dist[2].Value)

	for z := anchor.Z; z < anchor.Z+root.Dist[2].Value; z++ {
		slicePos := UVec3{anchor.X, anchor.Y, z}
		sliceCell := field.at(slicePos)
		if sliceCell.Clipped {
			continue
		}

		maxX, maxY := sliceCell.Dist[0].Value, sliceCell.Dist[1].Value

		// Walk the diagonal starting one cell past the slice's own corner,
		// shrinking maxX/maxY to whatever the diagonal neighbor can support.
		px, py := anchor.X+1, anchor.Y+1
		i := uint32(1)
		for px < anchor.X+sliceCell.Dist[0].Value && py < anchor.Y+sliceCell.Dist[1].Value {
			diag := field.at(UVec3{px, py, z})
			if diag.active() {
				maxX = minu32(diag.Dist[0].Value+i, maxX)
				maxY = minu32(diag.Dist[1].Value+i, maxY)
			} else {
				maxX, maxY = i, i
				break
			}
			px++
			py++
			i++
		}

		slices = append(slices, slice{maxX, maxY})
	}

	best := Extent{Position: anchor}
	minX, minY := uint32(math.MaxUint32), uint32(math.MaxUint32)

	// Every depth of the run is a candidate; a deeper one wins only with a
	// strictly larger volume, so ties go to the smaller depth.
	for k, s := range slices {
		minX = minu32(s.x, minX)
		minY = minu32(s.y, minY)
		depth := uint32(k + 1)
		if volume := uint64(minX) * uint64(minY) * uint64(depth); volume > best.Volume {
			best.Extent = UVec3{minX, minY, depth}
			best.Volume = volume
		}
	}

	return best
}

// bestExtent scans every active cell as a candidate anchor and returns the
// one producing the largest-volume box (component G's outer search, driving
// the greedy extraction loop in Build).
func bestExtent(field *Field) (Extent, bool) {
	var best Extent
	found := false

	for i, cell := range field.Cells {
		if !cell.active() {
			continue
		}
		pos := Unflatten(uint32(i), field.Grid.Dim)
		candidate := findExtent(field, pos)
		if !found || candidate.Volume > best.Volume {
			best = candidate
			found = true
		}
	}

	return best, found
}

func minu32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
