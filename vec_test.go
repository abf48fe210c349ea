package occluder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	dim := UVec3{5, 7, 3}

	for z := uint32(0); z < dim.Z; z++ {
		for y := uint32(0); y < dim.Y; y++ {
			for x := uint32(0); x < dim.X; x++ {
				p := UVec3{x, y, z}
				index := Flatten(p, dim)
				require.Equal(t, p, Unflatten(index, dim))
			}
		}
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	require.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	require.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	require.Equal(t, Vec3{4, -10, 18}, a.Mul(b))
	require.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	require.Equal(t, Vec3{4, 5, 6}, b.Abs())
}

func TestVec3CrossDot(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	require.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	require.Equal(t, float32(0), x.Dot(y))
}
