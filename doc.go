// Package occluder builds a conservative occluder mesh from an arbitrary
// closed triangle mesh.
//
// The occluder is a union of axis-aligned boxes that lies strictly inside
// the input surface: rasterize the surface into a shell of voxels, classify
// every enclosed voxel as interior or not, then greedily extract the
// largest axis-aligned box of interior voxels until a target fill fraction
// is reached. The result is cheap to rasterize and never over-occludes.
//
// The pipeline is sequential and call-scoped: Build owns every buffer it
// allocates and releases them on return, success or failure. It never
// retains state between calls.
package occluder
