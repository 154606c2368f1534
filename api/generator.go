package api

import (
	"image"
	"vincit.fi/asset-fitter/api/apitype"
)

type AssetResult struct {
	Target  *apitype.TargetSpec
	Path    string
	Size    apitype.Size
	Skipped bool
	Err     error
}

func (s *AssetResult) Failed() bool {
	return s.Err != nil
}

type AssetGenerator interface {
	Generate(plan *Plan) ([]*AssetResult, error)
}

type ImageLoader interface {
	// LoadImage decodes the image at path. Fails with ErrMissingSource
	// when the file does not exist and ErrInvalidInput when it can't be
	// decoded.
	LoadImage(path string) (image.Image, error)
	// Digest is the hex encoded sha256 of the file content at path.
	Digest(path string) (string, error)
}

type AssetWriter interface {
	Write(target *apitype.TargetSpec, path string, img image.Image) error
}

type ManifestRecord struct {
	OutputPath  string
	Fingerprint string
	Size        apitype.Size
	RunId       string
}

type AssetManifest interface {
	// UpToDate returns the stored record for outputPath when its fingerprint
	// matches.
	UpToDate(outputPath string, fingerprint string) (*ManifestRecord, bool)
	Record(record *ManifestRecord) error
	Close()
}
