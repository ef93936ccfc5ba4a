//go:build unit

package surface_test

import (
	"testing"

	"scan-bridge/internal/infra/surface"
	"scan-bridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSurface(t *testing.T) {
	t.Run("mount and unmount", func(t *testing.T) {
		s := surface.NewHostSurface(true, nil)
		require.NoError(t, s.Mount())
		assert.True(t, s.Mounted())

		s.SetTorch(true)
		assert.True(t, s.TorchOn())

		s.Unmount()
		assert.False(t, s.Mounted())
		assert.False(t, s.TorchOn())
	})

	t.Run("torch ignored while unmounted", func(t *testing.T) {
		s := surface.NewHostSurface(true, nil)
		s.SetTorch(true)
		assert.False(t, s.TorchOn())
	})

	t.Run("no camera cannot mount", func(t *testing.T) {
		s := surface.NewHostSurface(false, nil)
		err := s.Mount()
		assert.True(t, errs.Is(err, errs.ErrSurfaceUnavailable))
		assert.False(t, s.Mounted())
	})
}
