package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrStorage         = fmt.Errorf("storage failure")
	ErrTransport       = fmt.Errorf("transport failure")
	ErrUnknownBus      = fmt.Errorf("unknown bus transport")
	ErrInvalidRoom     = fmt.Errorf("room name must not be empty")
	ErrRateLimited     = fmt.Errorf("rate limit exceeded")
	ErrAlreadyShutdown = fmt.Errorf("already shut down")
	ErrClosed          = fmt.Errorf("closed")
)
