package occluder

import "fmt"

// Config controls occluder generation. The zero value is invalid: VoxelSize
// and FillPercent must be set explicitly.
//
// Unlike the C params struct this is ported from, there is no canary field
// to catch an un-zeroed stack allocation — a Go struct literal is always
// zero-initialized for any field the caller omits, so that failure mode
// does not exist here. validate instead rejects the zero value itself.
type Config struct {
	// VoxelSize is the edge length of one voxel in world units. Must be > 0.
	VoxelSize float32

	// FillPercent is the fraction of the mesh's approximate interior volume
	// (in voxels) that extraction stops after reaching. Must be in (0, 1].
	// 1.0 keeps extracting until every interior voxel lies inside some box,
	// since any active cell left over can be taken as at least a 1x1x1 box;
	// the loop also ends as soon as the float32 running fill ratio reaches
	// FillPercent.
	FillPercent float32

	// BoxType selects which faces of each extracted box are tessellated.
	BoxType BoxTypeFlags

	// Debug requests a populated Result.Debug visualization mesh.
	Debug bool
}

func (c Config) validate() {
	if c.VoxelSize <= 0 {
		panic(fmt.Sprintf("occluder: Config.VoxelSize must be > 0, got %v", c.VoxelSize))
	}
	if c.FillPercent <= 0 || c.FillPercent > 1 {
		panic(fmt.Sprintf("occluder: Config.FillPercent must be in (0, 1], got %v", c.FillPercent))
	}
	if c.BoxType == BoxTypeNone {
		panic("occluder: Config.BoxType must select at least one face set")
	}
	if c.BoxType&BoxTypeDiagonals != 0 && c.BoxType&(BoxTypeSides|BoxTypeTop|BoxTypeBottom) != 0 {
		panic("occluder: Config.BoxType: Diagonals cannot be combined with Sides, Top or Bottom")
	}
}
