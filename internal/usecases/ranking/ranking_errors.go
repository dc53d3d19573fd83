package ranking

import "errors"

var (
	ErrInvalidK         = errors.New("k must be between 1 and 100")
	ErrSnapshotNotFound = errors.New("revenue ranking snapshot not found")
)
