package raster

import (
	"os"
	"path/filepath"
	"time"
)

// EmptyThreshold classifies a provider response as "no usable scene".
// Empty renders come back as tiny images (well under 1200 bytes).
const EmptyThreshold = 1200

const dayLayout = "2006-01-02"

// Storage resolves the on-disk and public locations of stored rasters.
// Physical layout: <base>/<landID>/<indexType>/<YYYY-MM-DD>/image.png|image.tif.
// Public paths share the layout under a separate prefix and are what gets
// recorded in raster rows, so the physical base can move without touching
// the database.
type Storage struct {
	baseDir    string
	publicBase string
}

func NewStorage(baseDir, publicBase string) *Storage {
	return &Storage{baseDir: baseDir, publicBase: publicBase}
}

func (s *Storage) BaseDir() string { return s.baseDir }

// Paths returns the physical directory and file paths for one day.
func (s *Storage) Paths(landID, indexType string, day time.Time) (dir, pngPath, tiffPath string) {
	dir = filepath.Join(s.baseDir, landID, indexType, day.UTC().Format(dayLayout))
	return dir, filepath.Join(dir, "image.png"), filepath.Join(dir, "image.tif")
}

// PublicPaths returns the paths recorded in raster rows and served to clients.
func (s *Storage) PublicPaths(landID, indexType string, day time.Time) (png, tiff string) {
	d := day.UTC().Format(dayLayout)
	return s.publicBase + "/" + landID + "/" + indexType + "/" + d + "/image.png",
		s.publicBase + "/" + landID + "/" + indexType + "/" + d + "/image.tif"
}

func (s *Storage) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Exists reports whether both files for a day are already on disk. Used as a
// crash-recovery signal: files present without a row mean a prior run died
// between the writes.
func (s *Storage) Exists(pngPath, tiffPath string) bool {
	if _, err := os.Stat(pngPath); err != nil {
		return false
	}
	_, err := os.Stat(tiffPath)
	return err == nil
}

// IsEmpty reports whether image bytes indicate no usable imagery for the day.
func IsEmpty(buf []byte) bool {
	return len(buf) < EmptyThreshold
}
