package brand

import (
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/imagetools"
)

func TestDrawIcon(t *testing.T) {
	a := assert.New(t)
	palette := DefaultPalette(apitype.BrandOrange)

	t.Run("With background", func(t *testing.T) {
		icon := DrawIcon(512, palette, true)

		a.Equal(image.Rect(0, 0, 512, 512), icon.Bounds())
		a.Equal(uint8(0), icon.NRGBAAt(0, 0).A)
		a.Equal(uint8(0), icon.NRGBAAt(511, 511).A)
		a.Equal(apitype.BrandOrange, icon.NRGBAAt(256, 40))
	})
	t.Run("Without background", func(t *testing.T) {
		icon := DrawIcon(512, palette, false)
		size := 512.0

		a.Equal(uint8(0), icon.NRGBAAt(256, 40).A)
		line := icon.NRGBAAt(256, int(size*0.20)+int(size*0.028/2))
		a.Equal(palette.Lines, line)
	})
	t.Run("Pencil is white at its center", func(t *testing.T) {
		icon := DrawIcon(512, palette, true)
		size := 512.0

		a.Equal(palette.Pencil, icon.NRGBAAt(int(size*0.62), int(size*0.65)))
	})
	t.Run("Deterministic", func(t *testing.T) {
		a.Equal(DrawIcon(128, palette, true).Pix, DrawIcon(128, palette, true).Pix)
	})
}

func TestDefaultPalette(t *testing.T) {
	a := assert.New(t)

	a.Equal(color.NRGBA{R: 232, G: 160, B: 64, A: 255}, DefaultPalette(apitype.BrandOrange).Lines)

	blue := color.NRGBA{B: 200, A: 255}
	palette := DefaultPalette(blue)
	a.Equal(blue, palette.Background)
	a.NotEqual(blue, palette.Lines)
	a.Equal(uint8(255), palette.Lines.A)
	a.Greater(int(palette.Lines.R)+int(palette.Lines.G), 0)
}

func TestDrawFeatureGraphic(t *testing.T) {
	a := assert.New(t)
	resampler, err := imagetools.ResamplerByName("lanczos")
	require.NoError(t, err)

	icon := DrawIcon(512, DefaultPalette(apitype.BrandOrange), true)
	text := FeatureText{
		Title:   "PebbleNotes",
		Tagline: "Capture Your Thoughts",
		Accent:  apitype.BrandOrange,
	}

	banner, err := DrawFeatureGraphic(icon, text, resampler)
	require.NoError(t, err)

	a.Equal(image.Rect(0, 0, FeatureWidth, FeatureHeight), banner.Bounds())
	a.True(imagetools.IsOpaque(banner))
	t.Run("Gradient", func(t *testing.T) {
		a.Equal(color.NRGBA{R: 245, G: 245, B: 245, A: 255}, banner.NRGBAAt(0, 0))
		a.Equal(color.NRGBA{R: 248, G: 248, B: 248, A: 255}, banner.NRGBAAt(FeatureWidth/2, 0))
		a.Equal(color.NRGBA{R: 254, G: 254, B: 254, A: 255}, banner.NRGBAAt(FeatureWidth/2, FeatureHeight-1))
	})
	t.Run("Icon backing is white", func(t *testing.T) {
		a.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, banner.NRGBAAt(featureIconX+1, 101))
	})
	t.Run("Accent line", func(t *testing.T) {
		a.Equal(apitype.BrandOrange, banner.NRGBAAt(530+30, 195+81))
	})
	t.Run("Invalid icon", func(t *testing.T) {
		_, err := DrawFeatureGraphic(image.NewNRGBA(image.Rect(0, 0, 0, 0)), text, resampler)
		a.ErrorIs(err, apitype.ErrInvalidInput)
	})
}

func TestLoadFace(t *testing.T) {
	a := assert.New(t)

	t.Run("Falls back to built-in font", func(t *testing.T) {
		face := TitleFace([]string{filepath.Join(t.TempDir(), "missing.ttf")}, 24)
		a.NotNil(face)
		a.Greater(face.Metrics().Height.Ceil(), 0)
	})
	t.Run("Unparseable candidate falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.ttf")
		require.NoError(t, imaging.Save(imaging.New(1, 1, color.White), path+".png"))
		face := TaglineFace([]string{path + ".png"}, 12)
		a.NotNil(face)
	})
}
