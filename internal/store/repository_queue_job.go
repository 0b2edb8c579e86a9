package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type queueJobRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewQueueJobRepository(db *DB, logger *logger.Logger) QueueJobRepository {
	logger.Debug().Msg("creating queue job repository")
	return &queueJobRepository{
		DB:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (r *queueJobRepository) Save(ctx context.Context, jobs ...models.QueueJob) error {
	log := logger.FromContext(ctx)

	if len(jobs) == 0 {
		return nil
	}

	query, args, err := buildInsertQueueJobsQuery(r.builder, jobs)
	if err != nil {
		log.Err(err).Str("func", "queueJobRepository.Save").Msg("failed to build query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueJobRepository.Save").
			Int("count", len(jobs)).
			Str("error_class", r.errorClass(err)).
			Msg("failed to insert queue jobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListPending returns up to limit pending jobs, oldest first. A non-positive
// limit returns all of them.
func (r *queueJobRepository) ListPending(ctx context.Context, limit int) ([]models.QueueJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingJobsQuery(r.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "queueJobRepository.ListPending").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "queueJobRepository.ListPending").Msg("failed to query pending jobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.QueueJob, 0, max(limit, 0))
	for rows.Next() {
		var (
			job          models.QueueJob
			kind, status string
			payload      string
			errText      sql.NullString
		)
		if err = rows.Scan(&job.ID, &kind, &job.MemoID, &payload, &status, &errText, &job.CreatedAt, &job.UpdatedAt); err != nil {
			log.Err(err).Str("func", "queueJobRepository.ListPending").Msg("failed to scan queue job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = decodeJSON(payload, &job.Payload); err != nil {
			log.Err(err).Str("func", "queueJobRepository.ListPending").Str("job_id", job.ID).Msg("failed to decode job payload")
			return nil, err
		}
		job.Type = models.EnrichmentKind(kind)
		job.Status = models.QueueJobStatus(status)
		job.Error = errText.String
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "queueJobRepository.ListPending").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return jobs, nil
}

func (r *queueJobRepository) UpdateStatus(ctx context.Context, id string, status models.QueueJobStatus, errText string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQueueJobStatusQuery(r.builder, id, status, errText, r.now())
	if err != nil {
		log.Err(err).Str("func", "queueJobRepository.UpdateStatus").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueJobRepository.UpdateStatus").
			Str("job_id", id).
			Str("status", string(status)).
			Str("error_class", r.errorClass(err)).
			Msg("failed to update queue job")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrQueueJobNotFound, id)
	}

	return nil
}
