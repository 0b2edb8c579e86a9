package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrInvalidInputType     = errors.New("invalid input type")
	ErrEmptyAudioPayload    = errors.New("audio payload is required")
	ErrEmptyImagePayload    = errors.New("image payload is required")
	ErrEmptyTranscript      = errors.New("transcript is required for text input")
	ErrInvalidExpectedCount = errors.New("expected memo count must not be negative")

	ErrInvalidEnrichmentTask = errors.New("invalid enrichment task")
	ErrEmptyTaskMemoID       = errors.New("enrichment task memo id is required")
	ErrEmptyTaskUsername     = errors.New("enrichment task username is required")
)
