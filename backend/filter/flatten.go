package filter

import (
	"fmt"
	"image"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/imagetools"
)

type ImageFlatten struct {
	apitype.ImageOperation
}

func NewImageFlatten() apitype.ImageOperation {
	return &ImageFlatten{}
}

func (s *ImageFlatten) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	if imagetools.IsOpaque(operationGroup.ImageData()) {
		return nil, nil
	}
	return imagetools.Flatten(operationGroup.ImageData(), operationGroup.Target().Background()), nil
}

func (s *ImageFlatten) String() string {
	return "Flatten"
}

type ImageComposite struct {
	apitype.ImageOperation
}

func NewImageComposite() apitype.ImageOperation {
	return &ImageComposite{}
}

func (s *ImageComposite) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	img := operationGroup.ImageData()
	if img == nil || !apitype.SizeFromRectangle(img.Bounds()).IsValid() {
		return nil, fmt.Errorf("%w: nothing to composite for '%s'", apitype.ErrInvalidInput, operationGroup.Target().Name())
	}
	return imagetools.Composite(img, operationGroup.Target().Background()), nil
}

func (s *ImageComposite) String() string {
	return "Composite over background"
}

type ImageTrim struct {
	apitype.ImageOperation
}

func NewImageTrim() apitype.ImageOperation {
	return &ImageTrim{}
}

func (s *ImageTrim) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	img := operationGroup.ImageData()
	if img == nil || !apitype.SizeFromRectangle(img.Bounds()).IsValid() {
		return nil, fmt.Errorf("%w: nothing to trim for '%s'", apitype.ErrInvalidInput, operationGroup.Target().Name())
	}
	return imagetools.Trim(img, operationGroup.Target().Background()), nil
}

func (s *ImageTrim) String() string {
	return "Trim to content"
}
