package occluder

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// debugMeshCells controls the marching-cubes resolution used to render the
// debug solid. It trades fidelity for speed since this mesh exists purely
// for visualization, never for occlusion testing. The resolution also
// bounds the triangle count: Mesh indices are uint16, so the tessellation
// must stay under 21845 triangles.
const debugMeshCells = 32

// DebugMesh is an optional visualization of the pipeline's intermediate
// state, populated when Config.Debug is set.
type DebugMesh struct {
	// Mesh is a marching-cubes tessellation of the union of every extracted
	// box, built independently of the occluder mesh itself as a visual
	// cross-check.
	Mesh Mesh

	// ShellPoints are the world-space centers of every shell voxel.
	ShellPoints []Vec3

	// InnerPoints are the world-space centers of every cell classified as
	// interior, whether or not it ended up covered by an extracted box.
	InnerPoints []Vec3

	// RayLines are segment pairs (origin, endpoint) visualizing the
	// positive-direction min-distance rays recorded for each active cell at
	// the time extraction finished.
	RayLines [][2]Vec3
}

func buildDebugMesh(grid Grid, shell *ShellSet, field *Field, extents []Extent) *DebugMesh {
	dbg := &DebugMesh{
		ShellPoints: make([]Vec3, 0, len(shell.Voxels)),
		InnerPoints: make([]Vec3, 0, len(extents)),
	}

	for _, v := range shell.Voxels {
		dbg.ShellPoints = append(dbg.ShellPoints, grid.cellCenter(v))
	}

	for i, cell := range field.Cells {
		if !cell.Inner {
			continue
		}
		pos := Unflatten(uint32(i), field.Grid.Dim)
		center := grid.cellCenter(pos)
		dbg.InnerPoints = append(dbg.InnerPoints, center)

		if cell.active() {
			for axis, d := range cell.Dist {
				if d.Infinite {
					continue
				}
				end := center
				switch axis {
				case 0:
					end.X += float32(d.Value) * grid.VoxelSize
				case 1:
					end.Y += float32(d.Value) * grid.VoxelSize
				case 2:
					end.Z += float32(d.Value) * grid.VoxelSize
				}
				dbg.RayLines = append(dbg.RayLines, [2]Vec3{center, end})
			}
		}
	}

	if len(extents) == 0 {
		return dbg
	}

	var solid sdf.SDF3
	for _, ext := range extents {
		dims := v3.Vec{
			X: float64(ext.Extent.X) * float64(grid.VoxelSize),
			Y: float64(ext.Extent.Y) * float64(grid.VoxelSize),
			Z: float64(ext.Extent.Z) * float64(grid.VoxelSize),
		}
		box, err := sdf.Box3D(dims, 0)
		if err != nil {
			panic(err)
		}

		minCorner := grid.worldMinCorner(ext.Position)
		center := v3.Vec{X: float64(minCorner.X) + dims.X/2, Y: float64(minCorner.Y) + dims.Y/2, Z: float64(minCorner.Z) + dims.Z/2}
		placed := sdf.Transform3D(box, sdf.Translate3d(center))

		if solid == nil {
			solid = placed
		} else {
			solid = sdf.Union3D(solid, placed)
		}
	}

	renderer := render.NewMarchingCubesUniform(debugMeshCells)
	triangles := render.ToTriangles(solid, renderer)

	dbg.Mesh.Vertices = make([]float32, 0, len(triangles)*9)
	dbg.Mesh.Indices = make([]uint16, 0, len(triangles)*3)
	for _, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			dbg.Mesh.Indices = append(dbg.Mesh.Indices, uint16(len(dbg.Mesh.Vertices)/3))
			dbg.Mesh.Vertices = append(dbg.Mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		}
	}

	return dbg
}
