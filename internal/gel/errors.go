package gel

import "errors"

// Domain errors for run control.
var (
	// ErrNoSamples indicates Start was called before any lanes were loaded.
	ErrNoSamples = errors.New("gel: no samples loaded")
)
