package imagereader

import (
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/logger"
)

var jpegFileEndings = map[string]bool{".jpg": true, ".jpeg": true}

func IsJpeg(path string) bool {
	return jpegFileEndings[strings.ToLower(filepath.Ext(path))]
}

// LoadImage decodes the image at path. JPEG images are rotated according
// to their EXIF orientation.
func LoadImage(path string) (image.Image, error) {
	start := time.Now()
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image '%s' is empty", apitype.ErrInvalidInput, path)
	}
	logger.Debug.Printf("Loaded '%s' (%s) in %s", path, apitype.SizeFromRectangle(img.Bounds()), time.Since(start))
	return img, nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: '%s' does not exist", apitype.ErrMissingSource, path)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %s", apitype.ErrMissingSource, err)
	}
	defer file.Close()

	if IsJpeg(path) {
		img, err := decodeJpeg(file)
		if err != nil {
			return nil, fmt.Errorf("%w: could not decode '%s': %s", apitype.ErrInvalidInput, path, err)
		}
		rotation, flipped := LoadExifOrientation(path)
		return ExifRotateImage(img, rotation, flipped), nil
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode '%s': %s", apitype.ErrInvalidInput, path, err)
	}
	return img, nil
}
