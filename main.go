package main

import (
	"fmt"
	"os"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/backend"
	"vincit.fi/asset-fitter/common"
	"vincit.fi/asset-fitter/common/logger"
)

const eventBusQueueSize = 1000

func main() {
	os.Exit(run())
}

func run() int {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	plan, err := backend.BuildPlan(params)
	if err != nil {
		logger.Error.Fatal("Could not build plan: ", err)
	}

	stores, err := backend.InitializeStores(params.ManifestPath())
	if err != nil {
		logger.Error.Fatal("Error opening manifest: ", err)
	}
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	brokers.Broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Debug.Printf("[%d/%d] %s", command.Current, command.Total, command.Name)
	})
	brokers.Broker.Subscribe(api.AssetGenerated, func(command *api.AssetGeneratedCommand) {
		result := command.Result
		if result.Skipped {
			logger.Info.Printf("Unchanged %s", result.Path)
		} else if !result.Failed() {
			logger.Info.Printf("Created %s (%s)", result.Path, result.Size)
		}
	})

	services := backend.InitializeServices(params, stores, brokers)
	results, err := services.Generator.Generate(plan)
	brokers.Close()
	return printSummary(results, err)
}

func printSummary(results []*api.AssetResult, err error) int {
	if results == nil && err != nil {
		logger.Error.Print("Generation failed: ", err)
		return 1
	}

	created, skipped, failed := 0, 0, 0
	for _, result := range results {
		switch {
		case result.Failed():
			failed++
			fmt.Fprintf(os.Stderr, "FAILED  %s: %s\n", result.Path, result.Err)
		case result.Skipped:
			skipped++
		default:
			created++
		}
	}
	fmt.Printf("%d created, %d unchanged, %d failed\n", created, skipped, failed)

	if err != nil {
		return 1
	}
	return 0
}
