package schedule

import "errors"

var (
	// ErrRepositoryUnavailable wraps a failed booking repository read.
	// The core never retries; retry policy belongs to the transport layer.
	ErrRepositoryUnavailable = errors.New("booking repository unavailable")
)
