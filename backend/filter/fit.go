package filter

import (
	"fmt"
	"image"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/imagetools"
)

type ImageFit struct {
	resampler imagetools.Resampler
	apitype.ImageOperation
}

func NewImageFit(resampler imagetools.Resampler) apitype.ImageOperation {
	return &ImageFit{
		resampler: resampler,
	}
}

func (s *ImageFit) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	target := operationGroup.Target()
	logger.Debug.Printf("Fit '%s' to %s with %s", target.Name(), target.Size(), s.resampler)
	return imagetools.Fit(operationGroup.ImageData(), target.Size(), target.Background(), s.resampler)
}

func (s *ImageFit) String() string {
	return fmt.Sprintf("Fit (%s)", s.resampler)
}
