package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type enrichmentRepository struct {
	*DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewEnrichmentRepository(db *DB, logger *logger.Logger) EnrichmentRepository {
	logger.Debug().Msg("creating enrichment repository")
	return &enrichmentRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// UpsertDraft writes draft into its category table. Running it twice for the
// same memo leaves a single row holding the latest values.
func (r *enrichmentRepository) UpsertDraft(ctx context.Context, draft models.Draft) error {
	log := logger.FromContext(ctx)

	if draft == nil {
		return fmt.Errorf("%w: <nil>", ErrUnsupportedDraft)
	}
	if draft.OwnerMemoID() == "" {
		return fmt.Errorf("%w: %s", ErrEmptyMemoID, draft.Kind())
	}

	row, err := draftToRow(draft, r.ids.Generate())
	if err != nil {
		log.Err(err).Str("func", "enrichmentRepository.UpsertDraft").Str("task_type", string(draft.Kind())).Msg("failed to map draft")
		return err
	}

	query, args, err := buildUpsertDraftQuery(r.builder, row, r.now())
	if err != nil {
		log.Err(err).Str("func", "enrichmentRepository.UpsertDraft").Msg("failed to build query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "enrichmentRepository.UpsertDraft").
			Str("task_type", string(draft.Kind())).
			Str("memo_id", draft.OwnerMemoID()).
			Str("table", row.table).
			Str("error_class", r.errorClass(err)).
			Msg("failed to upsert draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MarkProcessed stamps enrichment_processed_at on one or more memos.
func (r *enrichmentRepository) MarkProcessed(ctx context.Context, at time.Time, memoIDs ...string) error {
	log := logger.FromContext(ctx)

	if len(memoIDs) == 0 {
		return nil
	}

	query, args, err := buildMarkProcessedQuery(r.builder, at, memoIDs)
	if err != nil {
		log.Err(err).Str("func", "enrichmentRepository.MarkProcessed").Msg("failed to build query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "enrichmentRepository.MarkProcessed").
			Strs("memo_ids", memoIDs).
			Str("error_class", r.errorClass(err)).
			Msg("failed to mark memos as processed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
