package testutil

import "errors"

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// FailingWriter is an io.Writer whose every write fails with ErrSimulated.
type FailingWriter struct{}

func (FailingWriter) Write([]byte) (int, error) { return 0, ErrSimulated }
