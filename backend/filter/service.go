package filter

import (
	"fmt"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/imagetools"
)

type Filter struct {
	id        string
	operation apitype.ImageOperation
}

func (s *Filter) Id() string {
	return s.id
}

func (s *Filter) Operation() apitype.ImageOperation {
	return s.operation
}

// FilterService maps an asset kind to the chain of operations that
// produces the asset.
type FilterService struct {
	branding  api.Branding
	resampler imagetools.Resampler
}

func NewFilterService(branding api.Branding, resampler imagetools.Resampler) *FilterService {
	return &FilterService{
		branding:  branding,
		resampler: resampler,
	}
}

func (s *FilterService) Resampler() imagetools.Resampler {
	return s.resampler
}

func (s *FilterService) GetFilters(target *apitype.TargetSpec) ([]*Filter, error) {
	var filtersToApply []*Filter
	switch target.Kind() {
	case apitype.KindFit, apitype.KindFavicon:
		filtersToApply = []*Filter{
			{id: "fit", operation: NewImageFit(s.resampler)},
		}
	case apitype.KindFlatten:
		filtersToApply = []*Filter{
			{id: "composite", operation: NewImageComposite()},
		}
	case apitype.KindTrim:
		filtersToApply = []*Filter{
			{id: "trim", operation: NewImageTrim()},
		}
	case apitype.KindSolid:
		return []*Filter{
			{id: "solid", operation: NewImageSolid()},
		}, nil
	case apitype.KindBrandIcon:
		filtersToApply = []*Filter{
			{id: "brandIcon", operation: NewImageBrandIcon()},
		}
	case apitype.KindFeatureGraphic:
		filtersToApply = []*Filter{
			{id: "featureGraphic", operation: NewImageFeatureGraphic(s.branding, s.resampler)},
		}
	default:
		return nil, fmt.Errorf("%w: unknown asset kind '%s'", apitype.ErrInvalidInput, target.Kind())
	}

	if !target.KeepAlpha() || target.Kind() == apitype.KindFlatten || target.Kind() == apitype.KindTrim {
		filtersToApply = append(filtersToApply, &Filter{
			id:        "flatten",
			operation: NewImageFlatten(),
		})
	}
	return filtersToApply, nil
}

// GetOperations is GetFilters without the filter ids.
func (s *FilterService) GetOperations(target *apitype.TargetSpec) ([]apitype.ImageOperation, error) {
	filters, err := s.GetFilters(target)
	if err != nil {
		return nil, err
	}
	operations := make([]apitype.ImageOperation, len(filters))
	for i, filter := range filters {
		operations[i] = filter.Operation()
	}
	return operations, nil
}
