package service

import "errors"

var (
	// ErrValidation wraps every rejected capture; the HTTP layer maps it to 400.
	ErrValidation = errors.New("invalid capture")

	// ErrProvider wraps transcription and understanding failures; mapped to 502.
	ErrProvider = errors.New("model provider failure")

	// ErrStorage wraps persistence failures of the main path; mapped to 500.
	ErrStorage = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrMissingPayload       = errors.New("capture has no payload for its input type")
	ErrUnsupportedInputType = errors.New("unsupported input type")
	ErrEmptyTranscription   = errors.New("provider returned an empty transcript")
	ErrMalformedModelOutput = errors.New("model returned malformed json")
	ErrNoHandlerForKind     = errors.New("no enrichment handler for kind")
	ErrTaskKindMismatch     = errors.New("task kind does not match handler")
	ErrUnknownDispatchMode  = errors.New("unknown dispatch mode")
	ErrEnrichmentFailed     = errors.New("enrichment failed")
)
