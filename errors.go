package occluder

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotWatertight is returned by Build when the input mesh has gaps in its
// shell large enough for the min-distance field to find no interior voxel
// that closes cleanly (component F). It is the only error Build can return;
// every other failure mode (bad Config, malformed Mesh) is a programmer
// error and panics instead.
var ErrNotWatertight = errors.New("occluder: mesh is not watertight at the given voxel size")

// wrapNotWatertight tags ErrNotWatertight with a fresh call ID so that two
// failing Build calls in the same log stream can be told apart, without
// giving the error a second distinct identity: errors.Is(err,
// ErrNotWatertight) still succeeds on the wrapped value.
func wrapNotWatertight() error {
	return errors.Wrapf(ErrNotWatertight, "build %s", uuid.NewString())
}
