package util

import "vincit.fi/asset-fitter/common/logger"

// ResolveFirstAvailable returns the first candidate path that exists.
// The boolean is false when none of them do and the caller should use its
// built-in default.
func ResolveFirstAvailable(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if DoesFileExist(candidate) {
			logger.Debug.Printf("Resolved resource '%s'", candidate)
			return candidate, true
		}
		logger.Trace.Printf("Resource '%s' not available", candidate)
	}
	return "", false
}
