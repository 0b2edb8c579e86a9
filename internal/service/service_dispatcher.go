package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
	"golang.org/x/sync/errgroup"
)

const defaultEnrichmentConcurrency = 4

// NewQueueDispatcher returns the dispatcher selected by cfg.App.DispatchMode.
func NewQueueDispatcher(cfg config.StructuredConfig, runner EnrichmentRunner, jobs store.QueueJobRepository, logger *logger.Logger) (QueueDispatcher, error) {
	switch cfg.App.DispatchMode {
	case config.DispatchImmediate, "":
		return NewImmediateDispatcher(runner, jobs, cfg.Workers.EnrichmentConcurrency, logger), nil
	case config.DispatchLog:
		return NewLogDispatcher(jobs, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDispatchMode, cfg.App.DispatchMode)
}

func newQueueJob(id string, task models.EnrichmentTask, status models.QueueJobStatus, now time.Time) models.QueueJob {
	return models.QueueJob{
		ID:        id,
		Type:      task.Kind,
		MemoID:    task.Payload.MemoID,
		Payload:   task,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ── immediate ──

type immediateDispatcher struct {
	runner      EnrichmentRunner
	jobs        store.QueueJobRepository
	concurrency int
	ids         utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewImmediateDispatcher runs tasks inside the request with at most
// concurrency tasks in flight. jobs may be nil, in which case finished jobs
// are only returned, not stored.
func NewImmediateDispatcher(runner EnrichmentRunner, jobs store.QueueJobRepository, concurrency int, logger *logger.Logger) QueueDispatcher {
	if concurrency <= 0 {
		concurrency = defaultEnrichmentConcurrency
	}
	return &immediateDispatcher{
		runner:      runner,
		jobs:        jobs,
		concurrency: concurrency,
		ids:         utils.NewUUIDGenerator(),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// Dispatch never fails because of a task: each failure is logged and
// recorded on its own job while sibling tasks keep running.
func (d *immediateDispatcher) Dispatch(ctx context.Context, tasks []models.EnrichmentTask) ([]models.QueueJob, error) {
	log := logger.FromContext(ctx)

	jobs := make([]models.QueueJob, len(tasks))
	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, task := range tasks {
		jobs[i] = newQueueJob(d.ids.Generate(), task, models.QueueJobPending, d.now())

		g.Go(func() error {
			result, err := d.runner.Run(ctx, task)
			jobs[i].UpdatedAt = d.now()
			if err != nil {
				log.Err(err).
					Str("func", "immediateDispatcher.Dispatch").
					Str("task_type", string(task.Kind)).
					Str("memo_id", task.Payload.MemoID).
					Msg("enrichment task failed")
				jobs[i].Status = models.QueueJobFailed
				jobs[i].Error = err.Error()
				return nil
			}
			jobs[i].Status = jobStatus(result.Status)
			jobs[i].Error = result.Reason
			return nil
		})
	}
	_ = g.Wait()

	if d.jobs != nil && len(jobs) > 0 {
		if err := d.jobs.Save(ctx, jobs...); err != nil {
			log.Err(err).Str("func", "immediateDispatcher.Dispatch").Int("jobs", len(jobs)).Msg("error recording finished queue jobs")
		}
	}

	return jobs, nil
}

func jobStatus(s models.JobStatus) models.QueueJobStatus {
	if s == models.JobSkipped {
		return models.QueueJobSkipped
	}
	return models.QueueJobCompleted
}

// ── log ──

type logDispatcher struct {
	jobs store.QueueJobRepository
	ids  utils.IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewLogDispatcher stores tasks as pending queue jobs for the queue worker.
func NewLogDispatcher(jobs store.QueueJobRepository, logger *logger.Logger) QueueDispatcher {
	return &logDispatcher{
		jobs:   jobs,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (d *logDispatcher) Dispatch(ctx context.Context, tasks []models.EnrichmentTask) ([]models.QueueJob, error) {
	log := logger.FromContext(ctx)

	now := d.now()
	jobs := make([]models.QueueJob, 0, len(tasks))
	for _, task := range tasks {
		jobs = append(jobs, newQueueJob(d.ids.Generate(), task, models.QueueJobPending, now))
	}
	if len(jobs) == 0 {
		return jobs, nil
	}

	if err := d.jobs.Save(ctx, jobs...); err != nil {
		log.Err(err).Str("func", "logDispatcher.Dispatch").Int("jobs", len(jobs)).Msg("error storing queue jobs")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	for _, job := range jobs {
		log.Info().Str("job_id", job.ID).Str("task_type", string(job.Type)).Str("memo_id", job.MemoID).Msg("enrichment task queued")
	}
	return jobs, nil
}
