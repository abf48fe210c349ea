package occluder

// boxMesh builds a closed triangle mesh for the axis-aligned box [min, max],
// used throughout the test suite as a watertight input with a known,
// hand-computable interior.
func boxMesh(min, max Vec3) Mesh {
	corners := [8]Vec3{
		{min.X, min.Y, min.Z},
		{max.X, min.Y, min.Z},
		{max.X, max.Y, min.Z},
		{min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z},
		{max.X, min.Y, max.Z},
		{max.X, max.Y, max.Z},
		{min.X, max.Y, max.Z},
	}

	vertices := make([]float32, 0, 24)
	for _, c := range corners {
		vertices = append(vertices, c.X, c.Y, c.Z)
	}

	// 6 faces, 2 triangles each, outward winding.
	indices := []uint16{
		0, 2, 1, 0, 3, 2, // -z
		4, 5, 6, 4, 6, 7, // +z
		0, 1, 5, 0, 5, 4, // -y
		3, 7, 6, 3, 6, 2, // +y
		0, 4, 7, 0, 7, 3, // -x
		1, 2, 6, 1, 6, 5, // +x
	}

	return Mesh{Vertices: vertices, Indices: indices}
}

// unitCubeMesh is a closed cube of edge length size centered at the origin.
func unitCubeMesh(size float32) Mesh {
	half := size / 2
	return boxMesh(Vec3{-half, -half, -half}, Vec3{half, half, half})
}

// openBoxMesh is boxMesh with the +z face removed: a box with a hole in
// its top, the canonical non-watertight input.
func openBoxMesh(min, max Vec3) Mesh {
	m := boxMesh(min, max)
	m.Indices = append(m.Indices[:6:6], m.Indices[12:]...)
	return m
}

// combineMeshes concatenates two meshes into one, offsetting the second
// mesh's indices past the first mesh's vertices.
func combineMeshes(a, b Mesh) Mesh {
	base := uint16(len(a.Vertices) / 3)
	out := Mesh{
		Vertices: append(append([]float32{}, a.Vertices...), b.Vertices...),
		Indices:  append([]uint16{}, a.Indices...),
	}
	for _, idx := range b.Indices {
		out.Indices = append(out.Indices, idx+base)
	}
	return out
}

// tetrahedronMesh is the tetrahedron with corners at the origin and at
// side on each positive axis.
func tetrahedronMesh(side float32) Mesh {
	vertices := []float32{
		0, 0, 0,
		side, 0, 0,
		0, side, 0,
		0, 0, side,
	}
	indices := []uint16{
		0, 2, 1,
		0, 1, 3,
		0, 3, 2,
		1, 2, 3,
	}
	return Mesh{Vertices: vertices, Indices: indices}
}

// pipelineField runs the mesh through grid construction, shell
// voxelization, plane bucketing and field generation, stopping short of
// extraction.
func pipelineField(mesh Mesh, voxelSize float32) *Field {
	grid := newGrid(meshAABB(mesh), voxelSize)
	shell := buildShell(mesh, grid)
	planes := buildPlaneBuckets(shell, grid.Dim)
	return buildField(grid, shell, planes)
}
