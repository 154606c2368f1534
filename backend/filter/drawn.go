package filter

import (
	"github.com/disintegration/imaging"
	"image"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/backend/internal/brand"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/imagetools"
)

// Size of the icon drawn for the feature graphic when there is no source.
const featureIconSize = 512

type ImageSolid struct {
	apitype.ImageOperation
}

func NewImageSolid() apitype.ImageOperation {
	return &ImageSolid{}
}

func (s *ImageSolid) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	target := operationGroup.Target()
	return imaging.New(target.Size().Width(), target.Size().Height(), target.Background()), nil
}

func (s *ImageSolid) String() string {
	return "Solid"
}

type ImageBrandIcon struct {
	apitype.ImageOperation
}

func NewImageBrandIcon() apitype.ImageOperation {
	return &ImageBrandIcon{}
}

// Apply draws the icon as a square of the shorter side and centers it on
// a transparent canvas when the target is not square.
func (s *ImageBrandIcon) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	target := operationGroup.Target()
	size := target.Size()
	side := size.Width()
	if size.Height() < side {
		side = size.Height()
	}
	icon := brand.DrawIcon(side, brand.DefaultPalette(target.Background()), true)
	if side == size.Width() && side == size.Height() {
		return icon, nil
	}
	canvas := imaging.New(size.Width(), size.Height(), apitype.Transparent)
	imagetools.Paste(canvas, icon, apitype.CenterOffset(apitype.SquareSize(side), size))
	return canvas, nil
}

func (s *ImageBrandIcon) String() string {
	return "Brand icon"
}

type ImageFeatureGraphic struct {
	branding  api.Branding
	resampler imagetools.Resampler
	apitype.ImageOperation
}

func NewImageFeatureGraphic(branding api.Branding, resampler imagetools.Resampler) apitype.ImageOperation {
	return &ImageFeatureGraphic{
		branding:  branding,
		resampler: resampler,
	}
}

// Apply uses the source as the icon when there is one and the drawn brand
// icon otherwise.
func (s *ImageFeatureGraphic) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	target := operationGroup.Target()
	icon := operationGroup.Source()
	if icon == nil {
		logger.Debug.Printf("No source for '%s', using the drawn icon", target.Name())
		icon = brand.DrawIcon(featureIconSize, brand.DefaultPalette(target.Background()), true)
	}

	banner, err := brand.DrawFeatureGraphic(icon, brand.FeatureText{
		Title:        s.branding.Title,
		Tagline:      s.branding.Tagline,
		TitleFonts:   s.branding.TitleFonts,
		TaglineFonts: s.branding.TaglineFonts,
		Accent:       s.branding.Accent,
	}, s.resampler)
	if err != nil {
		return nil, err
	}

	if apitype.SizeFromRectangle(banner.Bounds()) == target.Size() {
		return banner, nil
	}
	return imagetools.Fit(banner, target.Size(), target.Background(), s.resampler)
}

func (s *ImageFeatureGraphic) String() string {
	return "Feature graphic"
}
