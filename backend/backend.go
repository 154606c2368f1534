package backend

import (
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/backend/internal/database"
	"vincit.fi/asset-fitter/backend/internal/generator"
	"vincit.fi/asset-fitter/backend/internal/imageloader"
	"vincit.fi/asset-fitter/backend/internal/plan"
	"vincit.fi/asset-fitter/backend/internal/writer"
	"vincit.fi/asset-fitter/common"
	"vincit.fi/asset-fitter/common/event"
	"vincit.fi/asset-fitter/common/logger"
)

type Stores struct {
	ManifestStore *database.ManifestStore
}

// Manifest is nil when the manifest is disabled.
func (s *Stores) Manifest() api.AssetManifest {
	if s.ManifestStore == nil {
		return nil
	}
	return s.ManifestStore
}

func (s *Stores) Close() {
	if s.ManifestStore != nil {
		s.ManifestStore.Close()
	}
}

type Services struct {
	Generator   *generator.Generator
	ImageLoader api.ImageLoader
	AssetWriter api.AssetWriter
}

type Brokers struct {
	Broker *event.Broker
}

// Close unsubscribes every topic and waits for the queued events to be
// handled.
func (s *Brokers) Close() {
	s.Broker.Close(api.ProcessStatusUpdated)
	s.Broker.Close(api.AssetGenerated)
	s.Broker.Close(api.ShowError)
	s.Broker.Wait()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the manifest database at manifestPath. An empty
// path disables the manifest.
func InitializeStores(manifestPath string) (*Stores, error) {
	if manifestPath == "" {
		logger.Debug.Printf("Manifest disabled")
		return &Stores{}, nil
	}

	logger.Debug.Printf("Initialize databases...")
	manifestDb := database.NewDatabase()
	if err := manifestDb.InitializeForFile(manifestPath); err != nil {
		return nil, err
	}
	if _, err := manifestDb.Migrate(); err != nil {
		manifestDb.Close()
		return nil, err
	}

	stores := &Stores{
		ManifestStore: database.NewManifestStore(manifestDb),
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	assetWriter := writer.NewAssetWriter()
	progressReporter := api.NewSenderProgressReporter(brokers.Broker)
	services := &Services{
		Generator:   generator.NewGenerator(imageLoader, assetWriter, stores.Manifest(), progressReporter, params.SkipUnchanged()),
		ImageLoader: imageLoader,
		AssetWriter: assetWriter,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// BuildPlan resolves the preset or plan file selected by params.
func BuildPlan(params *common.Params) (*api.Plan, error) {
	return plan.Build(params)
}

func PresetNames() []string {
	return plan.PresetNames()
}
