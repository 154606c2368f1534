package generator

import (
	"fmt"
	"github.com/google/uuid"
	"image"
	"runtime"
	"time"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/backend/filter"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/common/util"
	"vincit.fi/asset-fitter/imagetools"
)

type Generator struct {
	imageLoader   api.ImageLoader
	writer        api.AssetWriter
	manifest      api.AssetManifest
	reporter      api.ProgressReporter
	skipUnchanged bool
	runId         string

	api.AssetGenerator
}

// NewGenerator creates a generator. manifest may be nil, in which case
// nothing is recorded and nothing is skipped.
func NewGenerator(imageLoader api.ImageLoader, writer api.AssetWriter, manifest api.AssetManifest, reporter api.ProgressReporter, skipUnchanged bool) *Generator {
	return &Generator{
		imageLoader:   imageLoader,
		writer:        writer,
		manifest:      manifest,
		reporter:      reporter,
		skipUnchanged: skipUnchanged,
	}
}

// RunId identifies the latest Generate call in the manifest.
func (s *Generator) RunId() string {
	return s.runId
}

// Generate produces every asset of the plan. A failing asset does not stop
// the others. The returned results are in plan order and the error is
// non-nil if at least one asset failed.
func (s *Generator) Generate(plan *api.Plan) ([]*api.AssetResult, error) {
	if len(plan.Assets) == 0 {
		return nil, fmt.Errorf("%w: plan '%s' has no assets", apitype.ErrInvalidInput, plan.Name)
	}
	resampler, err := imagetools.ResamplerByName(plan.Resampler)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	s.runId = uuid.New().String()
	total := len(plan.Assets)
	logger.Info.Printf("Generating %d assets for '%s' (run %s)", total, plan.Name, s.runId)

	source, sourceDigest, sourceErr := s.loadSource(plan)

	results := make([]*api.AssetResult, total)
	var jobs []*assetJob
	outputPaths := util.NewSet[string]()
	for i, target := range plan.Assets {
		path := outputPathFor(plan.OutputDir, target)
		job := &assetJob{index: i, target: target, path: path}

		if err := target.Validate(); err != nil {
			results[i] = failedResult(target, path, err)
		} else if !outputPaths.AddIfAbsent(path) {
			results[i] = failedResult(target, path, fmt.Errorf("%w: output '%s' is already used by another asset", apitype.ErrInvalidInput, path))
		} else if target.Kind().NeedsSource() && sourceErr != nil {
			results[i] = failedResult(target, path, sourceErr)
		} else {
			digest := ""
			if target.Kind().UsesSource() && source != nil {
				job.source = source
				digest = sourceDigest
			}
			job.fingerprint = Fingerprint(digest, target, resampler.String())
			jobs = append(jobs, job)
		}
	}

	current := 0
	for _, result := range results {
		if result != nil {
			current++
			s.report(result, current, total)
		}
	}

	if len(jobs) > 0 {
		runner := &jobRunner{
			filterService: filter.NewFilterService(plan.Branding, resampler),
			writer:        s.writer,
			manifest:      s.manifest,
			skipUnchanged: s.skipUnchanged,
			runId:         s.runId,
		}

		threadCount := plan.Workers
		if threadCount <= 0 {
			threadCount = runtime.NumCPU()
		}
		if threadCount > len(jobs) {
			threadCount = len(jobs)
		}
		logger.Debug.Printf(" * Using %d workers", threadCount)

		inputChannel := make(chan *assetJob, len(jobs))
		outputChannel := make(chan *jobResult)
		for _, job := range jobs {
			inputChannel <- job
		}
		close(inputChannel)

		for i := 0; i < threadCount; i++ {
			go runner.generateAssets(inputChannel, outputChannel)
		}

		for range jobs {
			finished := <-outputChannel
			results[finished.index] = finished.result
			current++
			s.report(finished.result, current, total)
		}
	}

	failed, skipped := 0, 0
	var firstErr error
	for _, result := range results {
		if result.Failed() {
			if firstErr == nil {
				firstErr = result.Err
			}
			failed++
		} else if result.Skipped {
			skipped++
		}
	}
	logger.Info.Printf("%d assets generated in %s (%d skipped, %d failed)",
		total-failed-skipped, time.Since(startTime), skipped, failed)

	if failed > 0 {
		return results, fmt.Errorf("%d of %d assets failed, first: %w", failed, total, firstErr)
	}
	return results, nil
}

func (s *Generator) loadSource(plan *api.Plan) (image.Image, string, error) {
	usesSource := false
	for _, target := range plan.Assets {
		usesSource = usesSource || target.Kind().UsesSource()
	}
	if !usesSource {
		return nil, "", nil
	}
	if plan.Source == "" {
		return nil, "", fmt.Errorf("%w: no source image configured", apitype.ErrMissingSource)
	}

	source, err := s.imageLoader.LoadImage(plan.Source)
	if err != nil {
		if plan.NeedsSource() {
			s.reporter.Error(fmt.Sprintf("Could not load source '%s'", plan.Source), err)
		}
		return nil, "", err
	}
	digest, err := s.imageLoader.Digest(plan.Source)
	if err != nil {
		return nil, "", err
	}
	return source, digest, nil
}

func (s *Generator) report(result *api.AssetResult, current int, total int) {
	s.reporter.Update(result.Target.Name(), current, total)
	if result.Failed() {
		s.reporter.Error(fmt.Sprintf("Could not generate '%s'", result.Path), result.Err)
	}
	s.reporter.Generated(result)
}

func failedResult(target *apitype.TargetSpec, path string, err error) *api.AssetResult {
	return &api.AssetResult{
		Target: target,
		Path:   path,
		Err:    apitype.NewAssetError(target.Name(), err),
	}
}
