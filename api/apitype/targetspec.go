package apitype

import (
	"fmt"
	"image/color"
)

type AssetKind string

const (
	KindFit            AssetKind = "fit"
	KindFlatten        AssetKind = "flatten"
	KindTrim           AssetKind = "trim"
	KindSolid          AssetKind = "solid"
	KindBrandIcon      AssetKind = "brand-icon"
	KindFeatureGraphic AssetKind = "feature-graphic"
	KindFavicon        AssetKind = "favicon"
)

var allKinds = []AssetKind{
	KindFit, KindFlatten, KindTrim, KindSolid, KindBrandIcon, KindFeatureGraphic, KindFavicon,
}

func AssetKindFromString(value string) (AssetKind, error) {
	if value == "" {
		return KindFit, nil
	}
	for _, kind := range allKinds {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: unknown asset kind '%s'", ErrInvalidInput, value)
}

// NeedsSource is true for kinds that can't be generated without a source image.
func (s AssetKind) NeedsSource() bool {
	switch s {
	case KindSolid, KindBrandIcon, KindFeatureGraphic:
		return false
	default:
		return true
	}
}

// UsesSource is true for kinds that use the source image when there is one.
func (s AssetKind) UsesSource() bool {
	return s.NeedsSource() || s == KindFeatureGraphic
}

// SizeFromSource is true for kinds whose output has the dimensions of the source.
func (s AssetKind) SizeFromSource() bool {
	return s == KindFlatten || s == KindTrim
}

// TargetSpec describes one destination slot.
type TargetSpec struct {
	name       string
	kind       AssetKind
	size       Size
	background color.NRGBA
	outputPath string
	keepAlpha  bool
}

func NewTargetSpec(name string, kind AssetKind, size Size, background color.NRGBA, outputPath string) *TargetSpec {
	return &TargetSpec{
		name:       name,
		kind:       kind,
		size:       size,
		background: background,
		outputPath: outputPath,
	}
}

// WithKeepAlpha returns a copy that is not flattened before writing.
func (s *TargetSpec) WithKeepAlpha(keepAlpha bool) *TargetSpec {
	spec := *s
	spec.keepAlpha = keepAlpha
	return &spec
}

func (s *TargetSpec) WithOutputPath(outputPath string) *TargetSpec {
	spec := *s
	spec.outputPath = outputPath
	return &spec
}

func (s *TargetSpec) WithBackground(background color.NRGBA) *TargetSpec {
	spec := *s
	spec.background = background
	return &spec
}

func (s *TargetSpec) Name() string {
	return s.name
}

func (s *TargetSpec) Kind() AssetKind {
	return s.kind
}

func (s *TargetSpec) Size() Size {
	return s.size
}

func (s *TargetSpec) Background() color.NRGBA {
	return s.background
}

func (s *TargetSpec) OutputPath() string {
	return s.outputPath
}

func (s *TargetSpec) KeepAlpha() bool {
	return s.keepAlpha
}

func (s *TargetSpec) Validate() error {
	if s.name == "" {
		return fmt.Errorf("%w: asset has no name", ErrInvalidInput)
	}
	if s.outputPath == "" {
		return fmt.Errorf("%w: asset '%s' has no output path", ErrInvalidInput, s.name)
	}
	if _, err := AssetKindFromString(string(s.kind)); err != nil {
		return err
	}
	if !s.kind.SizeFromSource() && !s.size.IsValid() {
		return fmt.Errorf("%w: asset '%s' has invalid size %s", ErrInvalidInput, s.name, s.size)
	}
	return nil
}

// String is stable for equal specs and is used as part of the asset fingerprint.
func (s *TargetSpec) String() string {
	return fmt.Sprintf("%s kind=%s size=%s background=%s keepAlpha=%t output=%s",
		s.name, s.kind, s.size, ColorToHex(s.background), s.keepAlpha, s.outputPath)
}
