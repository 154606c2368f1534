package imagetools

import (
	"fmt"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"image"
	"image/color"
	"vincit.fi/asset-fitter/api/apitype"
)

// Fit scales source to fit inside target without cropping or distortion,
// centers it and composites it over a canvas filled with background.
// The returned canvas always has exactly the target size.
func Fit(source image.Image, target apitype.Size, background color.Color, resampler Resampler) (*image.NRGBA, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no source image", apitype.ErrInvalidInput)
	}
	sourceSize := apitype.SizeFromRectangle(source.Bounds())
	if !sourceSize.IsValid() {
		return nil, fmt.Errorf("%w: source size %s", apitype.ErrInvalidInput, sourceSize)
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: target size %s", apitype.ErrInvalidInput, target)
	}

	scaledSize := apitype.ScaleToFit(sourceSize, target)
	scaled := resampler.Resize(source, scaledSize)

	canvas := imaging.New(target.Width(), target.Height(), background)
	Paste(canvas, scaled, apitype.CenterOffset(scaledSize, target))
	return canvas, nil
}

// Paste composites img over canvas with its top left corner at position,
// using the alpha of img as the mask.
func Paste(canvas *image.NRGBA, img image.Image, position image.Point) {
	bounds := img.Bounds()
	destination := image.Rectangle{Min: position, Max: position.Add(bounds.Size())}
	xdraw.Draw(canvas, destination, img, bounds.Min, xdraw.Over)
}

// Composite places img over a background filled canvas of the same size.
func Composite(img image.Image, background color.Color) *image.NRGBA {
	size := apitype.SizeFromRectangle(img.Bounds())
	canvas := imaging.New(size.Width(), size.Height(), background)
	Paste(canvas, img, image.Point{})
	return canvas
}

// Flatten composites img over the background with its alpha forced to
// opaque. Transparent pixels take the background color.
func Flatten(img image.Image, background color.NRGBA) *image.NRGBA {
	background.A = 0xff
	return Composite(img, background)
}

func IsOpaque(img image.Image) bool {
	if opaque, ok := img.(interface{ Opaque() bool }); ok {
		return opaque.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// ContentBounds is the smallest rectangle holding every pixel that is not
// fully transparent. Empty when there is no such pixel.
func ContentBounds(img image.Image) image.Rectangle {
	bounds := img.Bounds()
	content := image.Rectangle{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				content = content.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return content
}

// Trim crops img to its content and centers the content on a background
// filled canvas of the original size.
func Trim(img image.Image, background color.Color) *image.NRGBA {
	size := apitype.SizeFromRectangle(img.Bounds())
	canvas := imaging.New(size.Width(), size.Height(), background)
	content := ContentBounds(img)
	if content.Empty() {
		return canvas
	}
	cropped := imaging.Crop(img, content)
	Paste(canvas, cropped, apitype.CenterOffset(apitype.SizeFromRectangle(content), size))
	return canvas
}
