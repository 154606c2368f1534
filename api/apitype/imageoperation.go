package apitype

import (
	"fmt"
	"image"
	"vincit.fi/asset-fitter/common/logger"
)

type ImageOperation interface {
	// Apply returns the new image, or nil to keep the current one.
	Apply(operationGroup *ImageOperationGroup) (image.Image, error)
	String() string
}

// ImageOperationGroup runs a list of operations over one image. The source
// image is shared between groups and must not be mutated by operations.
type ImageOperationGroup struct {
	target          *TargetSpec
	source          image.Image
	imageData       image.Image
	hasBeenModified bool
	operations      []ImageOperation
}

func NewImageOperationGroup(target *TargetSpec, source image.Image, operations []ImageOperation) *ImageOperationGroup {
	return &ImageOperationGroup{
		target:          target,
		source:          source,
		imageData:       source,
		hasBeenModified: false,
		operations:      operations,
	}
}

func (s *ImageOperationGroup) Target() *TargetSpec {
	return s.target
}

func (s *ImageOperationGroup) Source() image.Image {
	return s.source
}

// ImageData is the output of the latest operation, or the source when
// nothing has been applied yet.
func (s *ImageOperationGroup) ImageData() image.Image {
	return s.imageData
}

func (s *ImageOperationGroup) Modified() bool {
	return s.hasBeenModified
}

func (s *ImageOperationGroup) Operations() []ImageOperation {
	return s.operations
}

func (s *ImageOperationGroup) Apply() (image.Image, error) {
	for _, operation := range s.operations {
		logger.Trace.Printf("Applying '%s' for '%s'", operation, s.target.Name())
		imgData, err := operation.Apply(s)
		if err != nil {
			return nil, err
		}
		if imgData != nil {
			s.imageData = imgData
			s.hasBeenModified = true
		}
	}
	if s.imageData == nil {
		return nil, fmt.Errorf("%w: no image produced for '%s'", ErrInvalidInput, s.target.Name())
	}
	return s.imageData, nil
}
