package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
	"github.com/MKhiriev/go-memo-keeper/models"
	"golang.org/x/sync/errgroup"
)

const defaultQueueBatchSize = 50

type queueProcessor struct {
	jobs        store.QueueJobRepository
	runner      EnrichmentRunner
	validator   validators.Validator
	batchSize   int
	concurrency int

	logger *logger.Logger
}

func NewQueueProcessor(jobs store.QueueJobRepository, runner EnrichmentRunner, batchSize, concurrency int, logger *logger.Logger) QueueProcessor {
	if batchSize <= 0 {
		batchSize = defaultQueueBatchSize
	}
	if concurrency <= 0 {
		concurrency = defaultEnrichmentConcurrency
	}
	return &queueProcessor{
		jobs:        jobs,
		runner:      runner,
		validator:   validators.NewCaptureValidator(),
		batchSize:   batchSize,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ProcessPending runs one batch of pending jobs through the runner and
// records each outcome. A failing job is marked failed and does not stop the
// rest of the batch.
func (p *queueProcessor) ProcessPending(ctx context.Context) (int, error) {
	log := p.logger

	pending, err := p.jobs.ListPending(ctx, p.batchSize)
	if err != nil {
		log.Err(err).Str("func", "queueProcessor.ProcessPending").Msg("error listing pending queue jobs")
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for _, job := range pending {
		g.Go(func() error {
			p.process(ctx, job)
			return nil
		})
	}
	_ = g.Wait()

	if len(pending) > 0 {
		log.Info().Int("jobs", len(pending)).Msg("pending queue jobs processed")
	}
	return len(pending), nil
}

func (p *queueProcessor) process(ctx context.Context, job models.QueueJob) {
	log := p.logger

	status, errText := models.QueueJobCompleted, ""
	if err := p.validator.Validate(ctx, job.Payload); err != nil {
		log.Err(err).Str("func", "queueProcessor.process").Str("job_id", job.ID).Msg("stored enrichment task is invalid")
		p.updateStatus(ctx, job.ID, models.QueueJobFailed, err.Error())
		return
	}

	result, err := p.runner.Run(ctx, job.Payload)
	switch {
	case err != nil:
		status, errText = models.QueueJobFailed, err.Error()
		log.Err(err).
			Str("func", "queueProcessor.process").
			Str("job_id", job.ID).
			Str("task_type", string(job.Type)).
			Str("memo_id", job.MemoID).
			Msg("queued enrichment task failed")
	case result.Status == models.JobSkipped:
		status, errText = models.QueueJobSkipped, result.Reason
	}

	p.updateStatus(ctx, job.ID, status, errText)
}

func (p *queueProcessor) updateStatus(ctx context.Context, id string, status models.QueueJobStatus, errText string) {
	if err := p.jobs.UpdateStatus(ctx, id, status, errText); err != nil {
		p.logger.Err(err).Str("func", "queueProcessor.updateStatus").Str("job_id", id).Str("status", string(status)).Msg("error updating queue job status")
	}
}
