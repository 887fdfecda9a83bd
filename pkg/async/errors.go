package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future does not
	// complete within the given duration.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
)
