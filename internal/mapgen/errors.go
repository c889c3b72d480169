package mapgen

import "errors"

var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("mapgen: width and height must be positive")
	// ErrUnknownLayout indicates an unsupported layout name.
	ErrUnknownLayout = errors.New("mapgen: unknown layout")
	// ErrInvalidDensity indicates BlockedOneIn < 1 or Braiding outside [0,1].
	ErrInvalidDensity = errors.New("mapgen: invalid density parameter")
)
