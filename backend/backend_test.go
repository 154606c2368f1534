package backend

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
	"vincit.fi/asset-fitter/common"
)

func TestInitialize_BrandPreset(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	params, err := common.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-preset", "brand",
		"-out", dir,
		"-manifest", filepath.Join(dir, ".asset-fitter", "assets.db"),
		"-skipUnchanged",
	})
	require.NoError(t, err)

	plan, err := BuildPlan(params)
	require.NoError(t, err)

	stores, err := InitializeStores(params.ManifestPath())
	require.NoError(t, err)
	defer stores.Close()
	brokers := InitializeEventBrokers(10)
	defer brokers.Close()
	services := InitializeServices(params, stores, brokers)

	results, err := services.Generator.Generate(plan)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		a.FileExists(result.Path)
	}

	t.Run("Second run skips everything", func(t *testing.T) {
		results, err := services.Generator.Generate(plan)
		require.NoError(t, err)
		for _, result := range results {
			a.True(result.Skipped)
		}
	})
}

func TestInitializeStores_Disabled(t *testing.T) {
	stores, err := InitializeStores("")

	require.NoError(t, err)
	assert.Nil(t, stores.Manifest())
	stores.Close()
}
