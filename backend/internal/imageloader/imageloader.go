package imageloader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/imagereader"
	"vincit.fi/asset-fitter/common/logger"
)

// CachingImageLoader decodes each source at most once per run. Callers
// share the decoded image and must not modify it.
type CachingImageLoader struct {
	instances map[string]*Instance
	mux       sync.Mutex

	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	return &CachingImageLoader{
		instances: map[string]*Instance{},
	}
}

func (s *CachingImageLoader) LoadImage(path string) (image.Image, error) {
	return s.instanceFor(path).Full()
}

func (s *CachingImageLoader) Digest(path string) (string, error) {
	return s.instanceFor(path).Digest()
}

func (s *CachingImageLoader) instanceFor(path string) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if instance, ok := s.instances[path]; ok {
		return instance
	}
	instance := NewInstance(path)
	s.instances[path] = instance
	return instance
}

type Instance struct {
	path   string
	full   image.Image
	err    error
	digest string
	mux    sync.Mutex
}

func NewInstance(path string) *Instance {
	return &Instance{
		path: path,
	}
}

func (s *Instance) Path() string {
	return s.path
}

// Full returns the decoded image. A failed load is remembered and the same
// error is returned on later calls.
func (s *Instance) Full() (image.Image, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.full == nil && s.err == nil {
		startTime := time.Now()
		s.full, s.err = imagereader.LoadImage(s.path)
		if s.err != nil {
			logger.Error.Printf("Could not load image '%s': %s", s.path, s.err)
		} else {
			logger.Debug.Printf("Loaded '%s' (%s) in %s",
				s.path, apitype.SizeFromRectangle(s.full.Bounds()), time.Since(startTime))
		}
	} else {
		logger.Trace.Printf("Use cached image '%s'", s.path)
	}
	return s.full, s.err
}

func (s *Instance) Digest() (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.digest != "" {
		return s.digest, nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", apitype.ErrMissingSource, s.path)
		}
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	s.digest = hex.EncodeToString(hash.Sum(nil))
	return s.digest, nil
}
