package api

import (
	"fmt"
	"image/color"
	"vincit.fi/asset-fitter/api/apitype"
)

// Branding holds what the drawn assets need besides the source image.
type Branding struct {
	Title        string
	Tagline      string
	TitleFonts   []string
	TaglineFonts []string
	Accent       color.NRGBA
}

type Plan struct {
	Name       string
	Source     string
	Background color.NRGBA
	OutputDir  string
	Resampler  string
	Workers    int
	Branding   Branding
	Assets     []*apitype.TargetSpec
}

func (s *Plan) NeedsSource() bool {
	for _, asset := range s.Assets {
		if asset.Kind().NeedsSource() {
			return true
		}
	}
	return false
}

func (s *Plan) Validate() error {
	if len(s.Assets) == 0 {
		return fmt.Errorf("%w: plan '%s' has no assets", apitype.ErrInvalidInput, s.Name)
	}
	if s.NeedsSource() && s.Source == "" {
		return fmt.Errorf("%w: plan '%s' needs a source image", apitype.ErrInvalidInput, s.Name)
	}
	return nil
}
