package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type captureService struct {
	validator validators.Validator
	requestID utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewCaptureService(logger *logger.Logger) CaptureService {
	return &captureService{
		validator: validators.NewCaptureValidator(),
		requestID: utils.NewULIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Receive validates req and returns its receipt. The username is trimmed and
// lower-cased. The request id is taken from req, then from ctx, and is
// generated when neither carries one.
func (s *captureService) Receive(ctx context.Context, req models.CaptureRequest) (models.CaptureReceipt, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "captureService.Receive").Str("input_type", string(req.InputType)).Msg("capture rejected")
		return models.CaptureReceipt{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		if fromCtx, ok := utils.GetRequestIDFromContext(ctx); ok {
			requestID = fromCtx
		} else {
			requestID = s.requestID.Generate()
		}
	}

	return models.CaptureReceipt{
		Username:   strings.ToLower(strings.TrimSpace(req.Username)),
		Source:     strings.TrimSpace(req.Source),
		DeviceID:   strings.TrimSpace(req.DeviceID),
		InputType:  req.InputType,
		RequestID:  requestID,
		ReceivedAt: s.now(),
	}, nil
}
