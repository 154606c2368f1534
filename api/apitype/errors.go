package apitype

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingSource = errors.New("missing source")
	ErrWriteFailure  = errors.New("write failure")
)

// AssetError ties a failure to the asset whose generation it aborted.
type AssetError struct {
	Asset string
	Err   error
}

func NewAssetError(asset string, err error) *AssetError {
	return &AssetError{Asset: asset, Err: err}
}

func (s *AssetError) Error() string {
	return fmt.Sprintf("asset '%s': %s", s.Asset, s.Err)
}

func (s *AssetError) Unwrap() error {
	return s.Err
}
