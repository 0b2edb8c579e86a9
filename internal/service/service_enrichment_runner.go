package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/metrics"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const outcomeFailed = "failed"

type enrichmentRunner struct {
	handlers    map[models.EnrichmentKind]EnrichmentHandler
	enrichments store.EnrichmentRepository
	now         func() time.Time

	logger *logger.Logger
}

func NewEnrichmentRunner(enrichments store.EnrichmentRepository, logger *logger.Logger, handlers ...EnrichmentHandler) EnrichmentRunner {
	byKind := make(map[models.EnrichmentKind]EnrichmentHandler, len(handlers))
	for _, h := range handlers {
		byKind[h.Kind()] = h
	}
	return &enrichmentRunner{
		handlers:    byKind,
		enrichments: enrichments,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// Run handles task, upserts a completed draft and marks the memo processed.
// Skipped tasks are marked processed too. A failed upsert leaves the memo
// unmarked.
func (r *enrichmentRunner) Run(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	log := logger.FromContext(ctx).With().
		Str("task_type", string(task.Kind)).
		Str("memo_id", task.Payload.MemoID).
		Logger()

	handler, ok := r.handlers[task.Kind]
	if !ok {
		metrics.EnrichmentOutcomes.Add(outcomeFailed, 1)
		return models.EnrichmentJobResult{}, fmt.Errorf("%w: %w: %s", ErrEnrichmentFailed, ErrNoHandlerForKind, task.Kind)
	}

	result, err := handler.Handle(ctx, task)
	if err != nil {
		log.Err(err).Str("func", "enrichmentRunner.Run").Msg("enrichment handler failed")
		metrics.EnrichmentOutcomes.Add(outcomeFailed, 1)
		return models.EnrichmentJobResult{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
	}

	if result.Status == models.JobCompleted && result.Draft != nil {
		if err = r.enrichments.UpsertDraft(ctx, result.Draft); err != nil {
			log.Err(err).Str("func", "enrichmentRunner.Run").Msg("error upserting enrichment draft")
			metrics.EnrichmentOutcomes.Add(outcomeFailed, 1)
			return models.EnrichmentJobResult{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
		}
	} else {
		log.Debug().Str("reason", result.Reason).Msg("enrichment skipped")
	}

	if err = r.enrichments.MarkProcessed(ctx, r.now(), task.Payload.MemoID); err != nil {
		log.Err(err).Str("func", "enrichmentRunner.Run").Msg("error marking memo processed")
		metrics.EnrichmentOutcomes.Add(outcomeFailed, 1)
		return models.EnrichmentJobResult{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
	}

	metrics.EnrichmentOutcomes.Add(string(result.Status), 1)
	return result, nil
}
