package occluder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriangleIntersectsBoxThroughCenter(t *testing.T) {
	tri := Triangle{
		V0: Vec3{-2, 0, 0},
		V1: Vec3{2, -2, 0},
		V2: Vec3{2, 2, 0},
	}
	require.True(t, triangleIntersectsBox(tri, Vec3{0, 0, 0}, Vec3{0.5, 0.5, 0.5}))
}

func TestTriangleIntersectsBoxFarAway(t *testing.T) {
	tri := Triangle{
		V0: Vec3{100, 0, 0},
		V1: Vec3{101, 0, 0},
		V2: Vec3{100, 1, 0},
	}
	require.False(t, triangleIntersectsBox(tri, Vec3{0, 0, 0}, Vec3{0.5, 0.5, 0.5}))
}

func TestTriangleIntersectsBoxEdgeCase(t *testing.T) {
	// Triangle's plane passes near the box but its own bounds miss it: the
	// plane test alone would be a false positive if the axis tests weren't
	// applied first.
	tri := Triangle{
		V0: Vec3{10, 10, 0},
		V1: Vec3{11, 10, 0},
		V2: Vec3{10, 11, 0},
	}
	require.False(t, triangleIntersectsBox(tri, Vec3{0, 0, 0}, Vec3{0.5, 0.5, 0.5}))
}

// TestTriangleIntersectsBoxPermutationInvariant checks that relabeling a
// triangle's three vertices never changes the intersection verdict
// (spec invariant: SAT result is invariant under vertex permutation).
func TestTriangleIntersectsBoxPermutationInvariant(t *testing.T) {
	v := [3]Vec3{{-2, 0, 0.2}, {2, -2, -0.3}, {2, 2, 0.1}}
	center := Vec3{0, 0, 0}
	half := Vec3{0.5, 0.5, 0.5}

	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	var want *bool
	for _, p := range perms {
		tri := Triangle{V0: v[p[0]], V1: v[p[1]], V2: v[p[2]]}
		got := triangleIntersectsBox(tri, center, half)
		if want == nil {
			want = &got
		}
		require.Equal(t, *want, got, "permutation %v disagreed", p)
	}
}

func TestFindMinMax3(t *testing.T) {
	lo, hi := findMinMax3(3, -1, 2)
	require.Equal(t, float32(-1), lo)
	require.Equal(t, float32(3), hi)
}
