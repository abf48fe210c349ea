package occluder

// ShellSet is the set of grid cells intersected by at least one input
// triangle — the "shell voxels". Voxels is the list in discovery order;
// indexOf maps a flattened cell index to its position in Voxels, with
// notFound marking cells that are not shell voxels. The sentinel never
// escapes this package: callers use ShellIndex, which returns (index, ok).
type ShellSet struct {
	Voxels  []UVec3
	indexOf []int32
}

const notFound int32 = -1

// ShellIndex reports whether cell is a shell voxel and, if so, its position
// in Voxels.
func (s *ShellSet) ShellIndex(cell uint32) (int, bool) {
	idx := s.indexOf[cell]
	if idx == notFound {
		return 0, false
	}
	return int(idx), true
}

func (s *ShellSet) isShell(cell uint32) bool {
	return s.indexOf[cell] != notFound
}

// buildShell rasterizes every triangle of mesh into grid, recording every
// cell whose box intersects that triangle (component C). Cells already
// marked as shell voxels are skipped on later triangles — the set is a set,
// not a multiset.
func buildShell(mesh Mesh, grid Grid) *ShellSet {
	shell := &ShellSet{
		Voxels:  make([]UVec3, 0, grid.cellCount()/8+16),
		indexOf: make([]int32, grid.cellCount()),
	}
	for i := range shell.indexOf {
		shell.indexOf[i] = notFound
	}

	halfExtent := Vec3{grid.VoxelSize / 2, grid.VoxelSize / 2, grid.VoxelSize / 2}
	voxelExtent := Vec3{grid.VoxelSize, grid.VoxelSize, grid.VoxelSize}

	for t := 0; t < mesh.triangleCount(); t++ {
		tri := mesh.triangleAt(t)
		triBounds := triangleAABB(tri)
		triBounds.Min = snapMinBound(triBounds.Min, grid.VoxelSize).Sub(voxelExtent)
		triBounds.Max = snapMaxBound(triBounds.Max, grid.VoxelSize).Add(voxelExtent)

		for x := triBounds.Min.X; x <= triBounds.Max.X; x += grid.VoxelSize {
			for y := triBounds.Min.Y; y <= triBounds.Max.Y; y += grid.VoxelSize {
				for z := triBounds.Min.Z; z <= triBounds.Max.Z; z += grid.VoxelSize {
					center := Vec3{x, y, z}
					relative := center.Sub(grid.Origin).Sub(halfExtent)
					cell := UVec3{
						X: uint32(relative.X / grid.VoxelSize),
						Y: uint32(relative.Y / grid.VoxelSize),
						Z: uint32(relative.Z / grid.VoxelSize),
					}
					if !grid.inBounds(cell) {
						continue
					}

					index := Flatten(cell, grid.Dim)
					if shell.indexOf[index] != notFound {
						continue
					}

					if !triangleIntersectsBox(tri, center, halfExtent) {
						continue
					}

					shell.indexOf[index] = int32(len(shell.Voxels))
					shell.Voxels = append(shell.Voxels, cell)
				}
			}
		}
	}

	return shell
}
