package occluder

import "math"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

func emptyAABB() AABB {
	max := float32(math.MaxFloat32)
	return AABB{
		Min: Vec3{max, max, max},
		Max: Vec3{-max, -max, -max},
	}
}

func (b AABB) extend(p Vec3) AABB {
	return AABB{Min: vec3Min(b.Min, p), Max: vec3Max(b.Max, p)}
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// triangleAABB is the bounding box of the triangle's three vertices.
func triangleAABB(t Triangle) AABB {
	b := emptyAABB()
	b = b.extend(t.V0)
	b = b.extend(t.V1)
	b = b.extend(t.V2)
	return b
}

// meshAABB is the bounding box of every referenced vertex of the mesh.
func meshAABB(m Mesh) AABB {
	b := emptyAABB()
	for _, idx := range m.Indices {
		b = b.extend(m.vertexAt(int(idx)))
	}
	return b
}
