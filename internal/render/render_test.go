package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/thousand/internal/assets"
)

func brightness(t *testing.T, path string, x, y int) uint32 {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := img.At(x, y).RGBA()
	return (r + g + b) / 3 >> 8
}

func TestRenderWithoutAssetsDrawsPips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")

	renderer, err := New(&Config{
		Faces:       assets.Load(t.TempDir(), nil),
		Path:        path,
		Placeholder: "Image not found",
	})
	require.NoError(t, err)

	require.NoError(t, renderer.Render([]int{1, 2, 3, 4, 5}))

	f, err := os.Open(path)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, FrameWidth, cfg.Width)
	assert.Equal(t, FrameHeight, cfg.Height)

	// centre pip of the first die is dark, the face around it is light
	assert.Less(t, brightness(t, path, marginX+DieSize/2, marginY+DieSize/2), uint32(100))
	assert.Greater(t, brightness(t, path, marginX+DieSize/2, marginY+DieSize/5), uint32(200))
}

func TestRenderUsesFaceImages(t *testing.T) {
	assetDir := t.TempDir()
	for face := 1; face <= 6; face++ {
		require.NoError(t, SaveFace(filepath.Join(assetDir, assets.FileName(face)), face, 64))
	}

	faces := assets.Load(assetDir, nil)
	require.True(t, faces.Complete())

	path := filepath.Join(t.TempDir(), "frame.png")
	renderer, err := New(&Config{Faces: faces, Path: path})
	require.NoError(t, err)

	require.NoError(t, renderer.Render([]int{6, 6, 6, 6, 6}))
	assert.FileExists(t, path)
}

func TestDrawDieRejectsBadFace(t *testing.T) {
	err := SaveFace(filepath.Join(t.TempDir(), "bad.png"), 7, 32)
	assert.Error(t, err)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}
