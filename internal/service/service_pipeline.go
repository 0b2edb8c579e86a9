package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/metrics"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/rs/zerolog"
)

type capturePipeline struct {
	capture       CaptureService
	transcription TranscriptionService
	understanding UnderstandingService
	memos         MemoService
	planner       EnrichmentPlanner
	dispatcher    QueueDispatcher
	now           func() time.Time

	logger *logger.Logger
}

func NewCapturePipeline(
	capture CaptureService,
	transcription TranscriptionService,
	understanding UnderstandingService,
	memos MemoService,
	planner EnrichmentPlanner,
	dispatcher QueueDispatcher,
	logger *logger.Logger,
) CapturePipeline {
	return &capturePipeline{
		capture:       capture,
		transcription: transcription,
		understanding: understanding,
		memos:         memos,
		planner:       planner,
		dispatcher:    dispatcher,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// Process runs capture, transcription, understanding, persistence, planning
// and dispatch in order. Failures up to persistence abort the capture and are
// returned together with the partial result; a dispatch failure is recorded
// in the event trail only.
func (p *capturePipeline) Process(ctx context.Context, req models.CaptureRequest) (models.CaptureResult, error) {
	var result models.CaptureResult

	event := func(stage models.PipelineStage, format string, args ...any) {
		result.Events = append(result.Events, models.PipelineEvent{Stage: stage, At: p.now(), Message: fmt.Sprintf(format, args...)})
	}
	fail := func(stage models.PipelineStage, err error) (models.CaptureResult, error) {
		event(models.StageFailed, "%s: %v", stage, err)
		metrics.CaptureFailures.Add(string(stage), 1)
		return result, err
	}

	receipt, err := p.capture.Receive(ctx, req)
	if err != nil {
		return fail(models.StageCapture, err)
	}
	result.Receipt = receipt
	event(models.StageCapture, "capture %s accepted from %s", receipt.RequestID, receipt.Source)

	ctx = utils.WithRequestID(p.requestLogger(ctx, receipt).WithContext(ctx), receipt.RequestID)
	log := logger.FromContext(ctx)

	transcription, err := p.transcription.Transcribe(ctx, req)
	if err != nil {
		return fail(models.StageTranscription, err)
	}
	if transcription.Transcript == "" {
		return fail(models.StageTranscription, fmt.Errorf("%w: %w", ErrProvider, ErrEmptyTranscription))
	}
	result.Transcription = transcription
	event(models.StageTranscription, "transcribed by %s (%d chars)", transcription.Provider, len(transcription.Transcript))

	understanding, err := p.understanding.Understand(ctx, transcription.Transcript, req.ExpectedMemoCount)
	if err != nil {
		return fail(models.StageUnderstanding, err)
	}
	result.Understanding = understanding
	event(models.StageUnderstanding, "understood as %d memo(s)", len(understanding.Memos))

	transcriptionID, err := p.memos.SaveTranscription(ctx, receipt, transcription)
	if err != nil {
		return fail(models.StagePersistence, err)
	}
	result.TranscriptionID = transcriptionID

	memos, err := p.memos.WriteMemos(ctx, receipt, transcriptionID, transcription.Transcript, understanding.Memos)
	if err != nil {
		return fail(models.StagePersistence, err)
	}
	result.Memos = memos
	event(models.StagePersistence, "transcription %s saved with %d memo(s)", transcriptionID, len(memos))

	result.Tasks = p.planner.Plan(ctx, receipt, transcriptionID, memos)
	event(models.StagePlanning, "%d enrichment task(s) planned", len(result.Tasks))

	jobs, err := p.dispatcher.Dispatch(ctx, result.Tasks)
	if err != nil {
		log.Err(err).Str("func", "capturePipeline.Process").Str("transcription_id", transcriptionID).Msg("dispatch failed, memos are kept")
		event(models.StageDispatch, "dispatch failed: %v", err)
	} else {
		result.Jobs = jobs
		event(models.StageDispatch, "%d queue job(s) dispatched", len(jobs))
	}
	if result.Jobs == nil {
		result.Jobs = []models.QueueJob{}
	}

	metrics.CapturesProcessed.Add(string(receipt.InputType), 1)
	log.Info().
		Str("transcription_id", transcriptionID).
		Int("memos", len(memos)).
		Int("tasks", len(result.Tasks)).
		Msg("capture processed")
	return result, nil
}

// requestLogger adds the capture identity to the logger found in ctx, or to
// the pipeline logger when ctx carries none.
func (p *capturePipeline) requestLogger(ctx context.Context, receipt models.CaptureReceipt) *logger.Logger {
	base := logger.FromContext(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = p.logger
	}
	return &logger.Logger{Logger: base.With().
		Str("request_id", receipt.RequestID).
		Str("username", receipt.Username).
		Str("input_type", string(receipt.InputType)).
		Logger()}
}
