package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

// speechCharsPerSecond approximates how fast people dictate notes.
const speechCharsPerSecond = 15.0

const imageTranscriptionPrompt = `You are reading a photo that someone captured as a note to self.
Answer in plain text with exactly three sections:
TEXT: transcribe every piece of visible text verbatim, keeping line breaks. Write "none" if there is no text.
DESCRIPTION: describe what the image shows in one or two sentences.
CONTEXT: in one sentence, say what the person most likely wants to remember or do about it.`

// ModelRouter names the model used for each stage.
type ModelRouter struct {
	TranscriptionModel  string
	Language            string
	ResponseFormat      string
	VisionModel         string
	VisionFallbackModel string
	UnderstandingModel  string
}

func NewModelRouter(cfg config.LLM) ModelRouter {
	return ModelRouter{
		TranscriptionModel:  cfg.TranscriptionModel,
		Language:            cfg.TranscriptionLanguage,
		ResponseFormat:      cfg.TranscriptionFormat,
		VisionModel:         cfg.VisionModel,
		VisionFallbackModel: cfg.VisionFallbackModel,
		UnderstandingModel:  cfg.UnderstandingModel,
	}
}

type transcriptionService struct {
	provider adapter.ModelProvider
	router   ModelRouter

	logger *logger.Logger
}

func NewTranscriptionService(provider adapter.ModelProvider, router ModelRouter, logger *logger.Logger) TranscriptionService {
	return &transcriptionService{provider: provider, router: router, logger: logger}
}

func (s *transcriptionService) Transcribe(ctx context.Context, req models.CaptureRequest) (models.TranscriptionResult, error) {
	switch req.InputType {
	case models.InputText:
		return models.TranscriptionResult{
			Transcript: strings.TrimSpace(req.Transcript),
			Provider:   models.ProviderDirect,
		}, nil
	case models.InputAudio:
		return s.transcribeAudio(ctx, req)
	case models.InputImage:
		return s.transcribeImage(ctx, req)
	}
	return models.TranscriptionResult{}, fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnsupportedInputType, req.InputType)
}

func (s *transcriptionService) transcribeAudio(ctx context.Context, req models.CaptureRequest) (models.TranscriptionResult, error) {
	log := logger.FromContext(ctx)

	if len(req.AudioPayload) == 0 {
		return models.TranscriptionResult{}, fmt.Errorf("%w: %w: audio", ErrValidation, ErrMissingPayload)
	}

	result, err := s.provider.Transcribe(ctx, adapter.SpeechRequest{
		Audio:          req.AudioPayload,
		Filename:       req.OriginalFilename,
		ContentType:    req.ContentType,
		Model:          s.router.TranscriptionModel,
		Language:       s.router.Language,
		ResponseFormat: s.router.ResponseFormat,
	})
	if err != nil {
		log.Err(err).Str("func", "transcriptionService.transcribeAudio").Str("model", s.router.TranscriptionModel).Msg("audio transcription failed")
		return models.TranscriptionResult{}, fmt.Errorf("%w: audio transcription with %s: %w", ErrProvider, s.router.TranscriptionModel, err)
	}
	if strings.TrimSpace(result.Transcript) == "" {
		return models.TranscriptionResult{}, fmt.Errorf("%w: %w: %s", ErrProvider, ErrEmptyTranscription, s.router.TranscriptionModel)
	}

	if result.DurationSeconds == nil {
		result.DurationSeconds = estimateDuration(result.Transcript)
	}
	if result.Provider == "" {
		result.Provider = s.router.TranscriptionModel
	}
	return result, nil
}

// estimateDuration guesses the recording length from the transcript length.
func estimateDuration(transcript string) *float64 {
	chars := len([]rune(strings.TrimSpace(transcript)))
	if chars == 0 {
		return nil
	}
	seconds := math.Round(float64(chars)/speechCharsPerSecond*10) / 10
	return &seconds
}

// transcribeImage asks the vision model and, if that fails for any reason,
// repeats the same prompt once against the fallback model.
func (s *transcriptionService) transcribeImage(ctx context.Context, req models.CaptureRequest) (models.TranscriptionResult, error) {
	log := logger.FromContext(ctx)

	if len(req.ImagePayload) == 0 {
		return models.TranscriptionResult{}, fmt.Errorf("%w: %w: image", ErrValidation, ErrMissingPayload)
	}

	messages := []adapter.ChatMessage{{
		Role:     "user",
		Text:     imageTranscriptionPrompt,
		ImageURL: imageDataURL(req.ContentType, req.ImagePayload),
	}}

	primary := s.router.VisionModel
	text, err := s.provider.Complete(ctx, adapter.ChatRequest{Model: primary, Messages: messages})
	if err == nil {
		return models.TranscriptionResult{Transcript: strings.TrimSpace(text), Provider: primary}, nil
	}

	fallback := s.router.VisionFallbackModel
	if fallback == "" || fallback == primary {
		log.Err(err).Str("func", "transcriptionService.transcribeImage").Str("model", primary).Msg("vision transcription failed, no fallback configured")
		return models.TranscriptionResult{}, fmt.Errorf("%w: image transcription with %s: %w", ErrProvider, primary, err)
	}

	log.Warn().Err(err).Str("func", "transcriptionService.transcribeImage").Str("model", primary).Str("fallback", fallback).Msg("vision model failed, retrying with fallback")

	text, fallbackErr := s.provider.Complete(ctx, adapter.ChatRequest{Model: fallback, Messages: messages})
	if fallbackErr != nil {
		log.Err(fallbackErr).Str("func", "transcriptionService.transcribeImage").Str("model", fallback).Msg("fallback vision model failed")
		return models.TranscriptionResult{}, fmt.Errorf("%w: image transcription failed with %s (%v) and fallback %s: %w",
			ErrProvider, primary, err, fallback, fallbackErr)
	}

	return models.TranscriptionResult{Transcript: strings.TrimSpace(text), Provider: fallback}, nil
}

func imageDataURL(contentType string, payload []byte) string {
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
