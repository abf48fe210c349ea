package occluder

import "math"

// Grid is the uniform cubic lattice covering the mesh AABB, padded outward
// by one voxel on each face. The cell at integer coords (x,y,z) is the voxel
// centered at Origin + VoxelSize*(x+1,y+1,z+1), spanning
// [Origin + VoxelSize*(x+0.5,y+0.5,z+0.5), Origin + VoxelSize*(x+1.5,y+1.5,z+1.5)]:
// cells sit half a voxel past Origin + VoxelSize*(x,y,z), so the highest
// cells reach half a voxel beyond Origin + VoxelSize*Dim.
type Grid struct {
	Origin    Vec3
	VoxelSize float32
	Dim       UVec3
}

// snapMinFunc adds a half-voxel bias away from zero (in the sign of value),
// then rounds down to a multiple of voxelSize. A non-negative value already
// on a grid line stays on it; a negative one drops to the line below.
func snapMinFunc(value, voxelSize float32) float32 {
	sign := float32(1.0)
	if value < 0 {
		sign = -1.0
	}
	result := value + sign*voxelSize*0.5
	return float32(math.Floor(float64(result/voxelSize))) * voxelSize
}

// snapMaxFunc rounds value up to a multiple of voxelSize, with the same
// half-voxel bias as snapMinFunc.
func snapMaxFunc(value, voxelSize float32) float32 {
	sign := float32(1.0)
	if value < 0 {
		sign = -1.0
	}
	result := value + sign*voxelSize*0.5
	return float32(math.Ceil(float64(result/voxelSize))) * voxelSize
}

func snapMinBound(p Vec3, voxelSize float32) Vec3 {
	return Vec3{snapMinFunc(p.X, voxelSize), snapMinFunc(p.Y, voxelSize), snapMinFunc(p.Z, voxelSize)}
}

func snapMaxBound(p Vec3, voxelSize float32) Vec3 {
	return Vec3{snapMaxFunc(p.X, voxelSize), snapMaxFunc(p.Y, voxelSize), snapMaxFunc(p.Z, voxelSize)}
}

// newGrid computes the grid origin and dimensions from a mesh AABB and a
// voxel size. Min is snapped down and Max snapped up to half-voxel-biased
// multiples of voxelSize, then both are padded outward by one voxel so
// every triangle that touches the mesh's true extent has at least one full
// voxel of shell clearance on every side.
func newGrid(bounds AABB, voxelSize float32) Grid {
	extent := Vec3{voxelSize, voxelSize, voxelSize}

	padded := AABB{
		Min: snapMinBound(bounds.Min, voxelSize).Sub(extent),
		Max: snapMaxBound(bounds.Max, voxelSize).Add(extent),
	}

	size := padded.Max.Sub(padded.Min)
	dim := UVec3{
		X: uint32(size.X / voxelSize),
		Y: uint32(size.Y / voxelSize),
		Z: uint32(size.Z / voxelSize),
	}

	return Grid{Origin: padded.Min, VoxelSize: voxelSize, Dim: dim}
}

// cellCount is the total number of cells in the grid.
func (g Grid) cellCount() uint32 {
	return g.Dim.X * g.Dim.Y * g.Dim.Z
}

// cellCenter returns the world-space center of cell p. Note the extra
// half-voxel offset beyond the naive Origin+(p+0.5)*VoxelSize: a cell's world
// placement is anchored to where the shell-voxelization probe for that
// index actually sampled space, one half-voxel further out than its index
// alone would suggest.
func (g Grid) cellCenter(p UVec3) Vec3 {
	return Vec3{
		g.Origin.X + (float32(p.X)+1)*g.VoxelSize,
		g.Origin.Y + (float32(p.Y)+1)*g.VoxelSize,
		g.Origin.Z + (float32(p.Z)+1)*g.VoxelSize,
	}
}

// worldMinCorner returns the world-space min corner of cell p.
func (g Grid) worldMinCorner(p UVec3) Vec3 {
	return Vec3{
		g.Origin.X + (float32(p.X)+0.5)*g.VoxelSize,
		g.Origin.Y + (float32(p.Y)+0.5)*g.VoxelSize,
		g.Origin.Z + (float32(p.Z)+0.5)*g.VoxelSize,
	}
}

func (g Grid) inBounds(p UVec3) bool {
	return p.X < g.Dim.X && p.Y < g.Dim.Y && p.Z < g.Dim.Z
}
