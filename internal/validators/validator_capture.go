package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	FieldUsername      = "username"
	FieldInputType     = "input_type"
	FieldPayload       = "payload"
	FieldExpectedCount = "expected_memo_count"

	FieldTaskKind   = "kind"
	FieldTaskMemoID = "memo_id"
	FieldTaskOwner  = "task_username"
)

var (
	captureFields = []string{FieldUsername, FieldInputType, FieldPayload, FieldExpectedCount}
	taskFields    = []string{FieldTaskKind, FieldTaskMemoID, FieldTaskOwner}
)

// CaptureValidator checks capture requests and enrichment tasks.
type CaptureValidator struct {
}

func NewCaptureValidator() Validator {
	return &CaptureValidator{}
}

func (v *CaptureValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CaptureRequest:
		return v.validateCaptureRequest(ctx, value, fields...)
	case *models.CaptureRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCaptureRequest(ctx, *value, fields...)

	case models.EnrichmentTask:
		return v.validateEnrichmentTask(ctx, value, fields...)
	case *models.EnrichmentTask:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEnrichmentTask(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaptureValidator) validateCaptureRequest(_ context.Context, req models.CaptureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = captureFields
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldInputType:
			if !req.InputType.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidInputType, req.InputType)
			}
		case FieldPayload:
			if err := validatePayload(req); err != nil {
				return err
			}
		case FieldExpectedCount:
			if req.ExpectedMemoCount < 0 {
				return ErrInvalidExpectedCount
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validatePayload(req models.CaptureRequest) error {
	switch req.InputType {
	case models.InputAudio:
		if len(req.AudioPayload) == 0 {
			return ErrEmptyAudioPayload
		}
	case models.InputImage:
		if len(req.ImagePayload) == 0 {
			return ErrEmptyImagePayload
		}
	case models.InputText:
		if strings.TrimSpace(req.Transcript) == "" {
			return ErrEmptyTranscript
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInputType, req.InputType)
	}
	return nil
}

func (v *CaptureValidator) validateEnrichmentTask(_ context.Context, task models.EnrichmentTask, fields ...string) error {
	if len(fields) == 0 {
		fields = taskFields
	}

	for _, field := range fields {
		switch field {
		case FieldTaskKind:
			if err := task.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEnrichmentTask, err)
			}
		case FieldTaskMemoID:
			if task.Payload.MemoID == "" {
				return ErrEmptyTaskMemoID
			}
		case FieldTaskOwner:
			if task.Payload.Username == "" {
				return ErrEmptyTaskUsername
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
