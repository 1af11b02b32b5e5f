// Package studio holds the pipeline session, the stage runner, and the
// error taxonomy shared by every stage.
package studio

import "errors"

// Stage errors. Components wrap the matching sentinel (and the underlying
// cause, when there is one) so callers can classify failures with errors.Is.
var (
	// ErrInvalidInput marks an empty or missing required value from the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration marks an absent or unparsable credential/config value.
	ErrConfiguration = errors.New("configuration missing")

	// ErrRetrieval marks a failed article HTTP fetch.
	ErrRetrieval = errors.New("article retrieval failed")

	// ErrGeneration marks a failed or unparsable text-generation call.
	ErrGeneration = errors.New("package generation failed")

	// ErrSynthesis marks a failed text-to-speech call.
	ErrSynthesis = errors.New("voice synthesis failed")

	// ErrRender marks a local preview rendering fault.
	ErrRender = errors.New("preview rendering failed")

	// ErrExport marks a failed bundle archive assembly.
	ErrExport = errors.New("bundle export failed")
)
