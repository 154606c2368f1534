package writer

import (
	"fmt"
	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/common/util"
)

type FileAssetWriter struct {
	compressionLevel png.CompressionLevel

	api.AssetWriter
}

func NewAssetWriter() api.AssetWriter {
	return &FileAssetWriter{
		compressionLevel: png.BestCompression,
	}
}

// Write encodes img to path atomically. Opaque images are written without
// an alpha channel.
func (s *FileAssetWriter) Write(target *apitype.TargetSpec, path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := util.MakeDirectoriesIfNotExist(filepath.Dir(dir), dir); err != nil {
		logger.Error.Printf("Could not create directory '%s': %s", dir, err)
		return fmt.Errorf("%w: %s", apitype.ErrWriteFailure, err)
	}

	encode := s.encoderFor(target, path, img)
	if err := util.WriteFileAtomically(path, encode); err != nil {
		logger.Error.Printf("Could not write '%s': %s", path, err)
		return fmt.Errorf("%w: %s", apitype.ErrWriteFailure, err)
	}
	logger.Debug.Printf("Wrote '%s' (%s)", path, apitype.SizeFromRectangle(img.Bounds()))
	return nil
}

func (s *FileAssetWriter) encoderFor(target *apitype.TargetSpec, path string, img image.Image) func(io.Writer) error {
	if target.Kind() == apitype.KindFavicon || strings.EqualFold(filepath.Ext(path), ".ico") {
		return func(w io.Writer) error {
			return ico.Encode(w, img)
		}
	}
	return func(w io.Writer) error {
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(s.compressionLevel))
	}
}
