package common

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseParamsFrom_Defaults(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{})

	require.Nil(t, err)
	a.Equal(DefaultPreset, params.Preset())
	a.Equal("", params.PlanFile())
	a.Equal("", params.Source())
	a.Equal(".", params.OutputDir())
	a.Equal("", params.Background())
	a.Equal(DefaultManifestPath, params.ManifestPath())
	a.False(params.SkipUnchanged())
	a.Equal("INFO", params.LogLevel())
	a.Equal(0, params.Workers())
}

func TestParseParamsFrom_Values(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-preset", "ios",
		"-source", "logo.png",
		"-out", "build",
		"-background", "#000000",
		"-resampler", "box",
		"-workers", "3",
		"-manifest", "",
		"-skipUnchanged",
		"-logLevel", "DEBUG",
	})

	require.Nil(t, err)
	a.Equal("ios", params.Preset())
	a.Equal("logo.png", params.Source())
	a.Equal("build", params.OutputDir())
	a.Equal("#000000", params.Background())
	a.Equal("box", params.Resampler())
	a.Equal(3, params.Workers())
	a.Equal("", params.ManifestPath())
	a.True(params.SkipUnchanged())
	a.Equal("DEBUG", params.LogLevel())
}

func TestParseParamsFrom_InvalidFlag(t *testing.T) {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.SetOutput(&discard{})

	_, err := ParseParamsFrom(flagSet, []string{"-workers", "many"})

	assert.NotNil(t, err)
}

type discard struct{}

func (s *discard) Write(p []byte) (int, error) {
	return len(p), nil
}
