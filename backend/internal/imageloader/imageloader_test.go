package imageloader

import (
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/asset-fitter/api/apitype"
)

func writeTestImage(t *testing.T, name string, width int, height int) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, imaging.Save(imaging.New(width, height, color.NRGBA{R: 255, A: 255}), path))
	return path
}

func TestCachingImageLoader_LoadImage(t *testing.T) {
	a := assert.New(t)
	path := writeTestImage(t, "splash_logo.png", 1200, 800)
	sut := NewImageLoader()

	t.Run("Load", func(t *testing.T) {
		img, err := sut.LoadImage(path)

		a.Nil(err)
		a.Equal(1200, img.Bounds().Dx())
		a.Equal(800, img.Bounds().Dy())
	})
	t.Run("Cached instance is returned", func(t *testing.T) {
		first, _ := sut.LoadImage(path)
		require.NoError(t, os.Remove(path))
		second, err := sut.LoadImage(path)

		a.Nil(err)
		a.Same(first, second)
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := sut.LoadImage(filepath.Join(t.TempDir(), "missing.png"))

		a.ErrorIs(err, apitype.ErrMissingSource)
	})
}

func TestCachingImageLoader_Digest(t *testing.T) {
	a := assert.New(t)
	sut := NewImageLoader()
	path := filepath.Join(t.TempDir(), "source.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	digest, err := sut.Digest(path)

	a.Nil(err)
	a.Equal("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest)

	t.Run("Missing", func(t *testing.T) {
		_, err := sut.Digest(filepath.Join(t.TempDir(), "missing.png"))

		a.ErrorIs(err, apitype.ErrMissingSource)
	})
}
