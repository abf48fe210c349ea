package occluder

// checkWatertight verifies that every active cell's three positive-axis
// runs remain active all the way to (but not including) the next shell
// voxel (component F). This is the soundness gate for extent search: if it
// fails, a later +X/+Y/+Z distance could overshoot a genuine hole in the
// shell and produce an occluder that pokes outside the mesh.
func checkWatertight(f *Field) bool {
	dim := f.Grid.Dim
	for i, cell := range f.Cells {
		if !cell.active() {
			continue
		}
		pos := Unflatten(uint32(i), dim)

		if !cell.Dist[0].Infinite {
			for k := uint32(1); k < cell.Dist[0].Value; k++ {
				if !f.at(UVec3{pos.X + k, pos.Y, pos.Z}).active() {
					return false
				}
			}
		}
		if !cell.Dist[1].Infinite {
			for k := uint32(1); k < cell.Dist[1].Value; k++ {
				if !f.at(UVec3{pos.X, pos.Y + k, pos.Z}).active() {
					return false
				}
			}
		}
		if !cell.Dist[2].Infinite {
			for k := uint32(1); k < cell.Dist[2].Value; k++ {
				if !f.at(UVec3{pos.X, pos.Y, pos.Z + k}).active() {
					return false
				}
			}
		}
	}
	return true
}
