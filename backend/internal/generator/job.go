package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"path/filepath"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/backend/filter"
	"vincit.fi/asset-fitter/common/logger"
	"vincit.fi/asset-fitter/common/util"
)

type assetJob struct {
	index       int
	target      *apitype.TargetSpec
	path        string
	source      image.Image
	fingerprint string
}

type jobResult struct {
	index  int
	result *api.AssetResult
}

// Fingerprint identifies everything that affects the bytes of an asset:
// the source content, the target description and the resampler.
func Fingerprint(sourceDigest string, target *apitype.TargetSpec, resampler string) string {
	hash := sha256.New()
	_, _ = fmt.Fprintf(hash, "%s\n%s\n%s", sourceDigest, target, resampler)
	return hex.EncodeToString(hash.Sum(nil))
}

type jobRunner struct {
	filterService *filter.FilterService
	writer        api.AssetWriter
	manifest      api.AssetManifest
	skipUnchanged bool
	runId         string
}

func (s *jobRunner) generateAssets(input chan *assetJob, output chan *jobResult) {
	for job := range input {
		output <- &jobResult{
			index:  job.index,
			result: s.generateAsset(job),
		}
	}
}

func (s *jobRunner) generateAsset(job *assetJob) *api.AssetResult {
	target := job.target
	result := &api.AssetResult{
		Target: target,
		Path:   job.path,
	}

	if record := s.unchangedRecord(job); record != nil {
		logger.Debug.Printf("Skipping unchanged '%s'", job.path)
		result.Skipped = true
		result.Size = record.Size
		return result
	}

	operations, err := s.filterService.GetOperations(target)
	if err != nil {
		result.Err = apitype.NewAssetError(target.Name(), err)
		return result
	}

	img, err := apitype.NewImageOperationGroup(target, job.source, operations).Apply()
	if err != nil {
		result.Err = apitype.NewAssetError(target.Name(), err)
		return result
	}
	result.Size = apitype.SizeFromRectangle(img.Bounds())

	if err := s.writer.Write(target, job.path, img); err != nil {
		result.Err = apitype.NewAssetError(target.Name(), err)
		return result
	}

	if s.manifest != nil {
		if err := s.manifest.Record(&api.ManifestRecord{
			OutputPath:  job.path,
			Fingerprint: job.fingerprint,
			Size:        result.Size,
			RunId:       s.runId,
		}); err != nil {
			logger.Warn.Printf("Could not record '%s' in the manifest: %s", job.path, err)
		}
	}
	return result
}

// unchangedRecord is the manifest record of an output that can be kept as
// is, nil when the asset has to be generated.
func (s *jobRunner) unchangedRecord(job *assetJob) *api.ManifestRecord {
	if !s.skipUnchanged || s.manifest == nil || !util.DoesFileExist(job.path) {
		return nil
	}
	if record, upToDate := s.manifest.UpToDate(job.path, job.fingerprint); upToDate {
		return record
	}
	return nil
}

func outputPathFor(outputDir string, target *apitype.TargetSpec) string {
	return filepath.Clean(filepath.Join(outputDir, target.OutputPath()))
}
