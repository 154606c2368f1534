package plan

import (
	"bytes"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common"
	"vincit.fi/asset-fitter/common/logger"
)

func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: plan file '%s' does not exist", apitype.ErrInvalidInput, path)
		}
		return nil, err
	}
	return ParseDefinition(data, filepath.Base(path))
}

// ParseDefinition reads a YAML plan. Unknown fields are rejected so that
// typos don't silently fall back to defaults.
func ParseDefinition(data []byte, defaultName string) (*Definition, error) {
	var definition Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&definition); err != nil {
		return nil, fmt.Errorf("%w: invalid plan '%s': %s", apitype.ErrInvalidInput, defaultName, err)
	}
	if definition.Name == "" {
		definition.Name = defaultName
	}
	return &definition, nil
}

// Build resolves the plan selected by the params: the plan file when given
// and the preset otherwise. Source, background, resampler and workers
// given as params override the plan values.
func Build(params *common.Params) (*api.Plan, error) {
	var definition *Definition
	var err error
	if params.PlanFile() != "" {
		logger.Info.Printf("Using plan file '%s'", params.PlanFile())
		definition, err = LoadDefinition(params.PlanFile())
	} else {
		logger.Info.Printf("Using preset '%s'", params.Preset())
		definition, err = Preset(params.Preset())
	}
	if err != nil {
		return nil, err
	}

	if params.Source() != "" {
		definition.Source = params.Source()
	}
	if params.Background() != "" {
		definition.Background = params.Background()
	}
	if params.Resampler() != "" {
		definition.Resampler = params.Resampler()
	}
	if definition.Resampler == "" {
		definition.Resampler = common.DefaultResampler
	}
	if params.Workers() > 0 {
		definition.Workers = params.Workers()
	}

	rootDir := params.OutputDir()
	if rootDir == "" {
		rootDir = "."
	}
	plan, err := definition.ToPlan(rootDir)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	logger.Debug.Printf("Plan '%s': %d assets from '%s' into '%s'", plan.Name, len(plan.Assets), plan.Source, plan.OutputDir)
	return plan, nil
}
