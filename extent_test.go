package occluder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindExtentFullCubeInterior(t *testing.T) {
	field := pipelineField(unitCubeMesh(2), 0.5)

	ext := findExtent(field, UVec3{2, 2, 2})
	require.Equal(t, UVec3{2, 2, 2}, ext.Position)
	require.Equal(t, UVec3{3, 3, 3}, ext.Extent)
	require.Equal(t, uint64(27), ext.Volume)
}

// An anchor away from the interior's min corner can only grow to what its
// own distances allow.
func TestFindExtentOffCornerAnchor(t *testing.T) {
	field := pipelineField(unitCubeMesh(2), 0.5)

	ext := findExtent(field, UVec3{4, 4, 4})
	require.Equal(t, UVec3{1, 1, 1}, ext.Extent)
	require.Equal(t, uint64(1), ext.Volume)

	ext = findExtent(field, UVec3{3, 2, 2})
	require.Equal(t, UVec3{2, 3, 3}, ext.Extent)
	require.Equal(t, uint64(18), ext.Volume)
}

func TestBestExtentPicksGlobalMaximum(t *testing.T) {
	field := pipelineField(unitCubeMesh(2), 0.5)

	best, ok := bestExtent(field)
	require.True(t, ok)
	require.Equal(t, UVec3{2, 2, 2}, best.Position)
	require.Equal(t, uint64(27), best.Volume)
}

func TestBestExtentNoActiveCells(t *testing.T) {
	field := pipelineField(unitCubeMesh(2), 0.5)
	for i := range field.Cells {
		field.Cells[i].Clipped = true
	}

	_, ok := bestExtent(field)
	require.False(t, ok)
}

// A rod much longer than it is wide must grow its box along the dominant
// axis rather than stopping at the first square the diagonal walk covers.
func TestFindExtentElongatedRod(t *testing.T) {
	rod := boxMesh(Vec3{-4, -1, -1}, Vec3{4, 1, 1})
	field := pipelineField(rod, 1)

	best, ok := bestExtent(field)
	require.True(t, ok)
	require.Equal(t, UVec3{7, 1, 1}, best.Extent)
	require.Greater(t, best.Extent.X, best.Extent.Y)
	require.Greater(t, best.Extent.X, best.Extent.Z)
}
