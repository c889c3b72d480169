package config

import "errors"

var (
	ErrInvalidSize         = errors.New("width and height must be positive")
	ErrStartOutOfBounds    = errors.New("start outside the grid")
	ErrUnknownLayout       = errors.New("unknown layout")
	ErrInvalidBlockedRatio = errors.New("blocked_one_in must be at least 1")
	ErrInvalidBraiding     = errors.New("braiding must be within [0, 1]")
	ErrInvalidIterations   = errors.New("iterations must not be negative")
	ErrInvalidDelay        = errors.New("delay must not be negative")
	ErrUnknownRenderer     = errors.New("unknown renderer")
	ErrUnknownLogLevel     = errors.New("unknown log level")
)
