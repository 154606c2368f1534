package common

import (
	"flag"
	"os"
)

const (
	DefaultPreset       = "android-splash"
	DefaultBackground   = "#FF9500"
	DefaultResampler    = "lanczos"
	DefaultManifestPath = ".asset-fitter/assets.db"
)

type Params struct {
	preset        string
	planFile      string
	source        string
	outputDir     string
	background    string
	resampler     string
	workers       int
	manifestPath  string
	skipUnchanged bool
	logLevel      string
}

func NewEmptyParams() *Params {
	return &Params{
		preset:        "",
		planFile:      "",
		source:        "",
		outputDir:     "",
		background:    "",
		resampler:     "",
		workers:       0,
		manifestPath:  "",
		skipUnchanged: false,
		logLevel:      "",
	}
}

func ParseParams() *Params {
	params, err := ParseParamsFrom(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	return params
}

// ParseParamsFrom registers the flags to flagSet and parses args.
// Source and background are left empty when not given so that plan
// values can take precedence.
func ParseParamsFrom(flagSet *flag.FlagSet, args []string) (*Params, error) {
	preset := flagSet.String("preset", DefaultPreset, "Built-in plan: android-splash, android-launcher, android-foreground, android-solid-foreground, ios, web, playstore, brand, all")
	planFile := flagSet.String("plan", "", "YAML plan file. Overrides -preset")
	source := flagSet.String("source", "", "Source image. Overrides the plan/preset source")
	outputDir := flagSet.String("out", ".", "Output root directory")
	background := flagSet.String("background", "", "Background color: #RRGGBB, #RRGGBBAA or r,g,b[,a] (default "+DefaultBackground+")")
	resampler := flagSet.String("resampler", "", "Resampling filter (default "+DefaultResampler+")")
	workers := flagSet.Int("workers", 0, "Number of assets generated in parallel. 0 uses the plan value or the CPU count")
	manifestPath := flagSet.String("manifest", DefaultManifestPath, "Manifest database. Empty disables the manifest")
	skipUnchanged := flagSet.Bool("skipUnchanged", false, "Skip assets whose source and settings have not changed since the last run")
	logLevel := flagSet.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	return &Params{
		preset:        *preset,
		planFile:      *planFile,
		source:        *source,
		outputDir:     *outputDir,
		background:    *background,
		resampler:     *resampler,
		workers:       *workers,
		manifestPath:  *manifestPath,
		skipUnchanged: *skipUnchanged,
		logLevel:      *logLevel,
	}, nil
}

func (s *Params) Preset() string {
	return s.preset
}

func (s *Params) PlanFile() string {
	return s.planFile
}

func (s *Params) Source() string {
	return s.source
}

func (s *Params) OutputDir() string {
	return s.outputDir
}

func (s *Params) Background() string {
	return s.background
}

func (s *Params) Resampler() string {
	return s.resampler
}

func (s *Params) Workers() int {
	return s.workers
}

func (s *Params) ManifestPath() string {
	return s.manifestPath
}

func (s *Params) SkipUnchanged() bool {
	return s.skipUnchanged
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
