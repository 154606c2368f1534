package imagetools

import (
	"errors"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"testing"
	"vincit.fi/asset-fitter/api/apitype"
)

var (
	blue  = color.NRGBA{B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func lanczos(t *testing.T) Resampler {
	resampler, err := ResamplerByName("lanczos")
	require.Nil(t, err)
	return resampler
}

func TestFit_WideSourceToPortraitTarget(t *testing.T) {
	a := assert.New(t)

	source := imaging.New(1200, 800, blue)
	canvas, err := Fit(source, apitype.SizeOf(1080, 1920), apitype.BrandOrange, lanczos(t))

	require.Nil(t, err)
	a.Equal(image.Rect(0, 0, 1080, 1920), canvas.Bounds())
	// 600 px margin on top and bottom, image 1080x720 in between
	a.Equal(apitype.BrandOrange, canvas.NRGBAAt(540, 0))
	a.Equal(apitype.BrandOrange, canvas.NRGBAAt(540, 599))
	a.Equal(blue, canvas.NRGBAAt(540, 600))
	a.Equal(blue, canvas.NRGBAAt(0, 600))
	a.Equal(blue, canvas.NRGBAAt(1079, 1319))
	a.Equal(apitype.BrandOrange, canvas.NRGBAAt(540, 1320))
	a.Equal(apitype.BrandOrange, canvas.NRGBAAt(1079, 1919))
}

func TestFit_ExactFit(t *testing.T) {
	source := imaging.New(512, 512, blue)
	canvas, err := Fit(source, apitype.SquareSize(108), apitype.BrandOrange, lanczos(t))

	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 108, 108), canvas.Bounds())
	for y := 0; y < 108; y++ {
		for x := 0; x < 108; x++ {
			if canvas.NRGBAAt(x, y) != blue {
				t.Fatalf("pixel %d,%d is %v", x, y, canvas.NRGBAAt(x, y))
			}
		}
	}
}

func TestFit_TransparentSourceShowsBackground(t *testing.T) {
	source := imaging.New(300, 200, apitype.Transparent)
	canvas, err := Fit(source, apitype.SizeOf(320, 480), apitype.BrandOrange, lanczos(t))

	require.Nil(t, err)
	for y := 0; y < 480; y++ {
		for x := 0; x < 320; x++ {
			if canvas.NRGBAAt(x, y) != apitype.BrandOrange {
				t.Fatalf("pixel %d,%d is %v", x, y, canvas.NRGBAAt(x, y))
			}
		}
	}
}

func TestFit_Idempotent(t *testing.T) {
	source := imaging.New(97, 61, red)
	Paste(source, imaging.New(20, 20, blue), image.Pt(10, 10))

	first, err := Fit(source, apitype.SizeOf(72, 72), apitype.BrandOrange, lanczos(t))
	require.Nil(t, err)
	second, err := Fit(source, apitype.SizeOf(72, 72), apitype.BrandOrange, lanczos(t))
	require.Nil(t, err)

	assert.Equal(t, first.Pix, second.Pix)
}

func TestFit_AllResamplers(t *testing.T) {
	a := assert.New(t)

	source := imaging.New(400, 200, blue)
	for _, name := range ResamplerNames() {
		t.Run(name, func(t *testing.T) {
			resampler, err := ResamplerByName(name)
			require.Nil(t, err)

			canvas, err := Fit(source, apitype.SquareSize(100), apitype.BrandOrange, resampler)

			require.Nil(t, err)
			a.Equal(image.Rect(0, 0, 100, 100), canvas.Bounds())
			a.Equal(apitype.BrandOrange, canvas.NRGBAAt(50, 24))
			a.Equal(apitype.BrandOrange, canvas.NRGBAAt(50, 75))
			a.Equal(uint8(255), canvas.NRGBAAt(50, 50).A)
		})
	}
}

func TestFit_InvalidInput(t *testing.T) {
	resampler := lanczos(t)

	t.Run("Nil source", func(t *testing.T) {
		_, err := Fit(nil, apitype.SquareSize(10), apitype.BrandOrange, resampler)
		assert.True(t, errors.Is(err, apitype.ErrInvalidInput))
	})
	t.Run("Empty source", func(t *testing.T) {
		_, err := Fit(image.NewNRGBA(image.Rect(0, 0, 0, 5)), apitype.SquareSize(10), apitype.BrandOrange, resampler)
		assert.True(t, errors.Is(err, apitype.ErrInvalidInput))
	})
	t.Run("Zero target", func(t *testing.T) {
		_, err := Fit(imaging.New(5, 5, blue), apitype.SizeOf(0, 10), apitype.BrandOrange, resampler)
		assert.True(t, errors.Is(err, apitype.ErrInvalidInput))
	})
	t.Run("Negative target", func(t *testing.T) {
		_, err := Fit(imaging.New(5, 5, blue), apitype.SizeOf(10, -1), apitype.BrandOrange, resampler)
		assert.True(t, errors.Is(err, apitype.ErrInvalidInput))
	})
}

func TestPaste_NonZeroOrigin(t *testing.T) {
	a := assert.New(t)

	canvas := imaging.New(4, 4, white)
	src := image.NewNRGBA(image.Rect(10, 10, 12, 12))
	for y := 10; y < 12; y++ {
		for x := 10; x < 12; x++ {
			src.SetNRGBA(x, y, red)
		}
	}

	Paste(canvas, src, image.Pt(1, 1))

	a.Equal(white, canvas.NRGBAAt(0, 0))
	a.Equal(red, canvas.NRGBAAt(1, 1))
	a.Equal(red, canvas.NRGBAAt(2, 2))
	a.Equal(white, canvas.NRGBAAt(3, 3))
}

func TestComposite(t *testing.T) {
	a := assert.New(t)

	img := imaging.New(2, 1, apitype.Transparent)
	img.SetNRGBA(1, 0, red)

	result := Composite(img, apitype.BrandOrange)

	a.Equal(apitype.BrandOrange, result.NRGBAAt(0, 0))
	a.Equal(red, result.NRGBAAt(1, 0))
	a.True(IsOpaque(result))
}

func TestFlatten(t *testing.T) {
	t.Run("Transparent pixels take the background", func(t *testing.T) {
		a := assert.New(t)
		img := imaging.New(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
		img.SetNRGBA(1, 0, red)
		a.False(IsOpaque(img))

		flattened := Flatten(img, apitype.BrandOrange)

		a.True(IsOpaque(flattened))
		a.Equal(apitype.BrandOrange, flattened.NRGBAAt(0, 0))
		a.Equal(red, flattened.NRGBAAt(1, 0))
		a.Equal(uint8(0), img.NRGBAAt(0, 0).A)
	})
	t.Run("Translucent background is made opaque", func(t *testing.T) {
		a := assert.New(t)
		img := imaging.New(2, 2, apitype.Transparent)

		flattened := Flatten(img, color.NRGBA{R: 0, G: 0, B: 255, A: 40})

		a.True(IsOpaque(flattened))
		a.Equal(color.NRGBA{R: 0, G: 0, B: 255, A: 255}, flattened.NRGBAAt(1, 1))
	})
}

func TestContentBounds(t *testing.T) {
	a := assert.New(t)

	img := imaging.New(10, 10, apitype.Transparent)
	a.True(ContentBounds(img).Empty())

	img.SetNRGBA(2, 3, red)
	img.SetNRGBA(5, 4, red)
	a.Equal(image.Rect(2, 3, 6, 5), ContentBounds(img))
}

func TestTrim(t *testing.T) {
	a := assert.New(t)

	img := imaging.New(10, 10, apitype.Transparent)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, red)
		}
	}

	trimmed := Trim(img, apitype.BrandOrange)

	a.Equal(image.Rect(0, 0, 10, 10), trimmed.Bounds())
	a.Equal(apitype.BrandOrange, trimmed.NRGBAAt(0, 0))
	a.Equal(apitype.BrandOrange, trimmed.NRGBAAt(2, 4))
	a.Equal(red, trimmed.NRGBAAt(3, 4))
	a.Equal(red, trimmed.NRGBAAt(6, 5))
	a.Equal(apitype.BrandOrange, trimmed.NRGBAAt(7, 5))
	a.Equal(apitype.BrandOrange, trimmed.NRGBAAt(3, 6))
}

func TestTrim_Empty(t *testing.T) {
	trimmed := Trim(imaging.New(3, 3, apitype.Transparent), apitype.BrandOrange)

	assert.Equal(t, apitype.BrandOrange, trimmed.NRGBAAt(1, 1))
}
