// Package assets loads the six dice face images.
package assets

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/KirkDiggler/thousand/internal/models"
)

// FileName returns the conventional file name for a face, dice1.png through dice6.png
func FileName(face int) string {
	return fmt.Sprintf("dice%d.png", face)
}

// Faces holds whichever face images could be loaded
type Faces struct {
	images  [models.FaceCount + 1]*gg.ImageBuf
	missing []int
}

// Load reads every face image from dir. Missing or unreadable files are
// logged and left empty so callers can draw a placeholder instead.
func Load(dir string, logger *slog.Logger) *Faces {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	faces := &Faces{}
	for face := 1; face <= models.FaceCount; face++ {
		path := filepath.Join(dir, FileName(face))

		img, err := gg.LoadImage(path)
		if err != nil {
			logger.Warn("dice image not found", "path", path, "error", err)
			faces.missing = append(faces.missing, face)
			continue
		}

		faces.images[face] = img
	}

	return faces
}

// Image returns the image for a face and whether it was loaded
func (f *Faces) Image(face int) (*gg.ImageBuf, bool) {
	if f == nil || face < 1 || face > models.FaceCount {
		return nil, false
	}
	img := f.images[face]
	return img, img != nil
}

// Missing lists the faces that have no image
func (f *Faces) Missing() []int {
	if f == nil {
		return []int{1, 2, 3, 4, 5, 6}
	}
	out := make([]int, len(f.missing))
	copy(out, f.missing)
	return out
}

// MissingFiles names the image files that could not be loaded
func (f *Faces) MissingFiles() []string {
	var out []string
	for _, face := range f.Missing() {
		out = append(out, FileName(face))
	}
	return out
}

// Complete reports whether all six faces were loaded
func (f *Faces) Complete() bool {
	return f != nil && len(f.missing) == 0
}
