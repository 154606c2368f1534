package util

import (
	"io"
	"os"
	"path/filepath"
	"vincit.fi/asset-fitter/common/logger"
)

const defaultDirMode = 0755

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDirectoriesIfNotExist creates dir and its parents using the mode of
// parentDir when it can be resolved.
func MakeDirectoriesIfNotExist(parentDir string, dir string) error {
	if DoesFileExist(dir) {
		return nil
	}
	mode := os.FileMode(defaultDirMode)
	if info, err := os.Stat(parentDir); err == nil && info.IsDir() {
		mode = info.Mode().Perm()
	}
	logger.Debug.Printf("Creating directory '%s'", dir)
	return os.MkdirAll(dir, mode)
}

// WriteFileAtomically writes to a temporary file next to dst and renames it
// over dst once write has returned successfully. On any failure the
// temporary file is removed and dst is left untouched.
func WriteFileAtomically(dst string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	logger.Trace.Printf("Renaming '%s' to '%s'", tmpName, dst)
	return os.Rename(tmpName, dst)
}
