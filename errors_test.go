package occluder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapNotWatertightIdentity(t *testing.T) {
	err := wrapNotWatertight()
	require.ErrorIs(t, err, ErrNotWatertight)
	require.Contains(t, err.Error(), "build ")
}

func TestWrapNotWatertightDistinctCallIDs(t *testing.T) {
	require.NotEqual(t, wrapNotWatertight().Error(), wrapNotWatertight().Error())
}
