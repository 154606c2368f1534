package brand

import (
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"image"
	"image/color"
	"math"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/imagetools"
)

const (
	FeatureWidth  = 1024
	FeatureHeight = 500

	featureIconSize = 300
	featureIconX    = 150
	shadowPadding   = 20
	shadowRadius    = 50
	shadowBlur      = 15
	titlePoints     = 72
	taglinePoints   = 28
)

var (
	titleColor   = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
	taglineColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type FeatureText struct {
	Title        string
	Tagline      string
	TitleFonts   []string
	TaglineFonts []string
	Accent       color.NRGBA
}

// DrawFeatureGraphic renders the store banner: a light gradient, the icon
// on a white backing with a soft shadow, and the title with its tagline
// and accent line to the right of the icon.
func DrawFeatureGraphic(icon image.Image, text FeatureText, resampler imagetools.Resampler) (*image.NRGBA, error) {
	fitted, err := imagetools.Fit(icon, apitype.SquareSize(featureIconSize), white, resampler)
	if err != nil {
		return nil, err
	}

	banner := featureGradient(FeatureWidth, FeatureHeight)
	iconY := (FeatureHeight - featureIconSize) / 2
	imagetools.Paste(banner, iconShadow(), image.Pt(featureIconX-shadowPadding, iconY-10))
	imagetools.Paste(banner, fitted, image.Pt(featureIconX, iconY))

	dc := gg.NewContextForImage(banner)
	textX := float64(featureIconX + featureIconSize + 80)
	textY := float64(FeatureHeight/2 - 55)

	if text.Title != "" {
		dc.SetFontFace(TitleFace(text.TitleFonts, titlePoints))
		dc.SetColor(titleColor)
		dc.DrawStringAnchored(text.Title, textX, textY, 0, 1)
	}
	if text.Tagline != "" {
		dc.SetFontFace(TaglineFace(text.TaglineFonts, taglinePoints))
		dc.SetColor(taglineColor)
		dc.DrawStringAnchored(text.Tagline, textX, textY+85, 0, 1)
	}
	dc.SetColor(text.Accent)
	dc.DrawRectangle(textX, textY+80, 60, 3)
	dc.Fill()

	return imagetools.Flatten(dc.Image(), white), nil
}

// featureGradient goes from light gray at the top to white at the bottom
// and darkens slightly towards the left and right edges.
func featureGradient(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	half := float64(width) / 2
	for y := 0; y < height; y++ {
		gray := float64(int(248 + float64(y)/float64(height)*7))
		for x := 0; x < width; x++ {
			horizontal := math.Abs(float64(x)-half) / half
			value := uint8(int(gray - horizontal*3))
			img.SetNRGBA(x, y, color.NRGBA{R: value, G: value, B: value, A: 255})
		}
	}
	return img
}

func iconShadow() image.Image {
	size := featureIconSize + 2*shadowPadding
	dc := gg.NewContext(size, size)
	dc.SetColor(color.NRGBA{A: 25})
	dc.DrawRoundedRectangle(shadowPadding, shadowPadding, featureIconSize, featureIconSize, shadowRadius)
	dc.Fill()
	return imaging.Blur(dc.Image(), shadowBlur)
}
