package plan

import (
	"fmt"
	"image/color"
	"path/filepath"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/backend/internal/brand"
)

const (
	DefaultTitle   = "PebbleNotes"
	DefaultTagline = "Capture Your Thoughts"
)

// Definition is a plan as written in a YAML file. Built-in presets are
// definitions too.
type Definition struct {
	Name       string             `yaml:"name"`
	Source     string             `yaml:"source"`
	Background string             `yaml:"background"`
	OutputDir  string             `yaml:"outputDir"`
	Resampler  string             `yaml:"resampler"`
	Workers    int                `yaml:"workers"`
	Branding   BrandingDefinition `yaml:"branding"`
	Assets     []AssetDefinition  `yaml:"assets"`
}

type BrandingDefinition struct {
	Title        string   `yaml:"title"`
	Tagline      string   `yaml:"tagline"`
	TitleFonts   []string `yaml:"titleFonts"`
	TaglineFonts []string `yaml:"taglineFonts"`
	Accent       string   `yaml:"accent"`
}

type AssetDefinition struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Size       int    `yaml:"size"`
	Background string `yaml:"background"`
	Output     string `yaml:"output"`
	KeepAlpha  bool   `yaml:"keepAlpha"`
}

// ToPlan resolves colors, kinds and sizes. Asset output paths are relative
// to the plan output directory, which in turn is relative to rootDir
// unless absolute. Assets without a background use the plan background.
func (s *Definition) ToPlan(rootDir string) (*api.Plan, error) {
	backgroundValue := s.Background
	if backgroundValue == "" {
		backgroundValue = apitype.ColorToHex(apitype.BrandOrange)
	}
	background, err := apitype.ParseColor(backgroundValue)
	if err != nil {
		return nil, fmt.Errorf("plan '%s': %w", s.Name, err)
	}

	branding, err := s.Branding.toBranding()
	if err != nil {
		return nil, fmt.Errorf("plan '%s': %w", s.Name, err)
	}

	outputDir := s.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(rootDir, outputDir)
	}

	plan := &api.Plan{
		Name:       s.Name,
		Source:     s.Source,
		Background: background,
		OutputDir:  outputDir,
		Resampler:  s.Resampler,
		Workers:    s.Workers,
		Branding:   branding,
	}
	for i, asset := range s.Assets {
		target, err := asset.toTargetSpec(background)
		if err != nil {
			return nil, fmt.Errorf("plan '%s' asset %d: %w", s.Name, i, err)
		}
		plan.Assets = append(plan.Assets, target)
	}
	return plan, nil
}

func (s *BrandingDefinition) toBranding() (api.Branding, error) {
	branding := api.Branding{
		Title:        s.Title,
		Tagline:      s.Tagline,
		TitleFonts:   s.TitleFonts,
		TaglineFonts: s.TaglineFonts,
		Accent:       apitype.BrandOrange,
	}
	if branding.Title == "" {
		branding.Title = DefaultTitle
	}
	if branding.Tagline == "" {
		branding.Tagline = DefaultTagline
	}
	if len(branding.TitleFonts) == 0 {
		branding.TitleFonts = brand.DefaultTitleFonts
	}
	if len(branding.TaglineFonts) == 0 {
		branding.TaglineFonts = brand.DefaultTaglineFonts
	}
	if s.Accent != "" {
		accent, err := apitype.ParseColor(s.Accent)
		if err != nil {
			return api.Branding{}, err
		}
		branding.Accent = accent
	}
	return branding, nil
}

func (s *AssetDefinition) toTargetSpec(planBackground color.NRGBA) (*apitype.TargetSpec, error) {
	kind, err := apitype.AssetKindFromString(s.Kind)
	if err != nil {
		return nil, err
	}

	width, height := s.Width, s.Height
	if s.Size != 0 {
		width, height = s.Size, s.Size
	}

	background := planBackground
	if s.Background != "" {
		if background, err = apitype.ParseColor(s.Background); err != nil {
			return nil, err
		}
	}

	name := s.Name
	if name == "" {
		name = s.Output
	}
	target := apitype.NewTargetSpec(name, kind, apitype.SizeOf(width, height), background, s.Output).
		WithKeepAlpha(s.KeepAlpha)
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return target, nil
}
