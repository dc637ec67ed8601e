package raster

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsLayout(t *testing.T) {
	s := NewStorage("/var/data/rasters", "rasters")
	day := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)

	dir, png, tiff := s.Paths("land-1", "NDVI", day)
	assert.Equal(t, filepath.Join("/var/data/rasters", "land-1", "NDVI", "2024-03-07"), dir)
	assert.Equal(t, filepath.Join(dir, "image.png"), png)
	assert.Equal(t, filepath.Join(dir, "image.tif"), tiff)
}

func TestPublicPathsIndependentOfBase(t *testing.T) {
	s := NewStorage("/somewhere/else", "rasters")
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	png, tiff := s.PublicPaths("land-1", "NDWI", day)
	assert.Equal(t, "rasters/land-1/NDWI/2024-03-07/image.png", png)
	assert.Equal(t, "rasters/land-1/NDWI/2024-03-07/image.tif", tiff)
}

func TestExists(t *testing.T) {
	s := NewStorage(t.TempDir(), "rasters")
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	dir, png, tiff := s.Paths("land-1", "EVI", day)
	assert.False(t, s.Exists(png, tiff))

	require.NoError(t, s.EnsureDir(dir))
	require.NoError(t, os.WriteFile(png, []byte("png"), 0o644))
	assert.False(t, s.Exists(png, tiff), "png alone is not a hit")

	require.NoError(t, os.WriteFile(tiff, []byte("tif"), 0o644))
	assert.True(t, s.Exists(png, tiff))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(make([]byte, EmptyThreshold-1)))
	assert.False(t, IsEmpty(make([]byte, EmptyThreshold)))
}
