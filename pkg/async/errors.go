package async

import "errors"

var (
	// ErrTimeout indicates AwaitTimeout expired before the computation finished
	ErrTimeout = errors.New("async: await timed out")
)
