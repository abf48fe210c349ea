package occluder

import "fmt"

// Build rasterizes mesh into a conservative occluder: a union of
// axis-aligned boxes that never extends outside the input surface.
//
// Build panics if cfg is invalid (VoxelSize <= 0, FillPercent outside
// (0, 1], or a BoxType with conflicting face flags) or if mesh is
// malformed (no triangles, index count not a multiple of 3, or an index
// past the vertex array). Its only returned error is ErrNotWatertight,
// raised when the shell has a gap the min-distance field cannot classify
// as fully enclosed at the given voxel size, or when the shell encloses no
// interior voxel at all.
func Build(mesh Mesh, cfg Config) (*Result, error) {
	cfg.validate()
	if mesh.triangleCount() == 0 {
		panic("occluder: Build requires a mesh with at least one triangle")
	}
	if len(mesh.Indices)%3 != 0 {
		panic("occluder: Mesh.Indices length must be a multiple of 3")
	}
	vertexCount := len(mesh.Vertices) / 3
	for _, idx := range mesh.Indices {
		if int(idx) >= vertexCount {
			panic(fmt.Sprintf("occluder: Mesh index %d out of range of %d vertices", idx, vertexCount))
		}
	}

	grid := newGrid(meshAABB(mesh), cfg.VoxelSize)
	shell := buildShell(mesh, grid)
	planes := buildPlaneBuckets(shell, grid.Dim)
	field := buildField(grid, shell, planes)

	if !checkWatertight(field) {
		return nil, wrapNotWatertight()
	}

	// Approximate the interior volume of the mesh by the number of voxels
	// that fit within. A shell that encloses no voxel at all is equivalent to
	// a hole at this resolution: there is no interior to extract from, so the
	// caller needs a smaller voxel size either way.
	totalVolume := uint64(0)
	for _, cell := range field.Cells {
		if cell.Inner {
			totalVolume++
		}
	}
	if totalVolume == 0 {
		return nil, wrapNotWatertight()
	}

	extents := extractExtents(field, totalVolume, cfg.FillPercent)

	out := Mesh{
		Vertices: make([]float32, 0, len(extents)*8*3),
		Indices:  make([]uint16, 0, len(extents)*indexCountFor(cfg.BoxType)),
	}

	halfVoxel := grid.VoxelSize / 2
	for _, ext := range extents {
		halfExtent := Vec3{
			float32(ext.Extent.X) * halfVoxel,
			float32(ext.Extent.Y) * halfVoxel,
			float32(ext.Extent.Z) * halfVoxel,
		}
		minCorner := grid.worldMinCorner(ext.Position)
		center := minCorner.Add(halfExtent)
		appendBox(&out, center, halfExtent, cfg.BoxType)
	}

	result := &Result{Mesh: out}
	if cfg.Debug {
		result.Debug = buildDebugMesh(grid, shell, field, extents)
	}

	return result, nil
}

// extractExtents runs the greedy global search: repeatedly take the
// largest-volume box of still-active cells, clip it out of the field, and
// refresh the min-distance field for every cell that could see into the
// clipped region, until fillPercent of the mesh's approximate interior
// volume is covered or no active cell remains (component H).
func extractExtents(field *Field, totalVolume uint64, fillPercent float32) []Extent {
	var extents []Extent
	var coveredVolume uint64
	var fillRatio float32

	for fillRatio < fillPercent && coveredVolume != totalVolume {
		best, ok := bestExtent(field)
		if !ok {
			break
		}

		clipExtent(field, best)
		updateMinDistanceField(field, best)

		extents = append(extents, best)
		coveredVolume += best.Volume
		fillRatio += float32(best.Volume) / float32(totalVolume)
	}

	return extents
}

func clipExtent(field *Field, ext Extent) {
	for x := ext.Position.X; x < ext.Position.X+ext.Extent.X; x++ {
		for y := ext.Position.Y; y < ext.Position.Y+ext.Extent.Y; y++ {
			for z := ext.Position.Z; z < ext.Position.Z+ext.Extent.Z; z++ {
				cell := field.at(UVec3{x, y, z})
				if cell.Clipped {
					panic("occluder: clipping an already clipped cell")
				}
				cell.Clipped = true
			}
		}
	}
}

// updateMinDistanceField extends the box's footprint to infinity along -x,
// -y and -z and tightens the distance every active cell it crosses records
// toward the box, since that cell can no longer see past the now-clipped
// region in the +x/+y/+z direction it used to measure through.
func updateMinDistanceField(field *Field, ext Extent) {
	pos := ext.Position

	for x := int64(pos.X) - 1; x >= 0; x-- {
		for y := pos.Y; y < pos.Y+ext.Extent.Y; y++ {
			for z := pos.Z; z < pos.Z+ext.Extent.Z; z++ {
				cell := field.at(UVec3{uint32(x), y, z})
				if !cell.active() {
					continue
				}
				updated := uint32(int64(pos.X) - x)
				if cell.Dist[0].Infinite || updated < cell.Dist[0].Value {
					cell.Dist[0] = Distance{Value: updated}
				}
			}
		}
	}

	for x := pos.X; x < pos.X+ext.Extent.X; x++ {
		for y := int64(pos.Y) - 1; y >= 0; y-- {
			for z := pos.Z; z < pos.Z+ext.Extent.Z; z++ {
				cell := field.at(UVec3{x, uint32(y), z})
				if !cell.active() {
					continue
				}
				updated := uint32(int64(pos.Y) - y)
				if cell.Dist[1].Infinite || updated < cell.Dist[1].Value {
					cell.Dist[1] = Distance{Value: updated}
				}
			}
		}
	}

	for x := pos.X; x < pos.X+ext.Extent.X; x++ {
		for y := pos.Y; y < pos.Y+ext.Extent.Y; y++ {
			for z := int64(pos.Z) - 1; z >= 0; z-- {
				cell := field.at(UVec3{x, y, uint32(z)})
				if !cell.active() {
					continue
				}
				updated := uint32(int64(pos.Z) - z)
				if cell.Dist[2].Infinite || updated < cell.Dist[2].Value {
					cell.Dist[2] = Distance{Value: updated}
				}
			}
		}
	}
}
