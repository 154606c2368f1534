//go:build linux && cgo

package imagereader

import (
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"io"
)

var options = &jpeg.DecoderOptions{}

func decodeJpeg(reader io.Reader) (image.Image, error) {
	return jpeg.Decode(reader, options)
}
