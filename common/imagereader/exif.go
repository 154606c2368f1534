package imagereader

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"image/color"
	"os"
	"vincit.fi/asset-fitter/common/logger"
)

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// LoadExifOrientation reads the orientation tag of the file. Files without
// EXIF data are treated as upright.
func LoadExifOrientation(path string) (float64, bool) {
	file, err := os.Open(path)
	if err != nil {
		return noRotate, noHorizontalFlip
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		logger.Trace.Printf("No Exif data in '%s': %s", path, err)
		return noRotate, noHorizontalFlip
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return noRotate, noHorizontalFlip
	}
	orientation, err := tag.Int(0)
	if err != nil {
		logger.Warn.Printf("Could not resolve orientation of '%s': %s", path, err)
		return noRotate, noHorizontalFlip
	}
	return ExifOrientationToAngleAndFlip(orientation)
}

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}
