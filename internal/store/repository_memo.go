package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type memoRepository struct {
	*DB
	logger *logger.Logger
}

func NewMemoRepository(db *DB, logger *logger.Logger) MemoRepository {
	logger.Debug().Msg("creating memo repository")
	return &memoRepository{DB: db, logger: logger}
}

// InsertBatch writes all memos with one multi-row INSERT, so either every
// memo of a capture is stored or none is.
func (r *memoRepository) InsertBatch(ctx context.Context, memos []models.Memo) error {
	log := logger.FromContext(ctx)

	if len(memos) == 0 {
		log.Warn().Str("func", "memoRepository.InsertBatch").Msg("no memos provided")
		return nil
	}

	query, args, err := buildInsertMemosQuery(r.builder, memos)
	if err != nil {
		log.Err(err).Str("func", "memoRepository.InsertBatch").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoRepository.InsertBatch").
			Str("transcription_id", memos[0].TranscriptionID).
			Int("count", len(memos)).
			Str("error_class", r.errorClass(err)).
			Msg("failed to insert memos")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected != int64(len(memos)) {
		log.Error().
			Str("func", "memoRepository.InsertBatch").
			Int64("affected", affected).
			Int("count", len(memos)).
			Msg("memo batch was not fully saved")
		return ErrMemosNotSaved
	}

	return nil
}

// ListByTranscription returns the memos split from one transcription in
// creation order.
func (r *memoRepository) ListByTranscription(ctx context.Context, transcriptionID string) ([]models.Memo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemosByTranscriptionQuery(r.builder, transcriptionID)
	if err != nil {
		log.Err(err).Str("func", "memoRepository.ListByTranscription").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoRepository.ListByTranscription").
			Str("transcription_id", transcriptionID).
			Msg("failed to query memos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memos := make([]models.Memo, 0, 4)
	for rows.Next() {
		memo, scanErr := scanMemo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "memoRepository.ListByTranscription").
				Str("transcription_id", transcriptionID).
				Msg("failed to scan memo row")
			return nil, scanErr
		}
		memos = append(memos, memo)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "memoRepository.ListByTranscription").
			Str("transcription_id", transcriptionID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return memos, nil
}

func scanMemo(rows *sql.Rows) (models.Memo, error) {
	var (
		m                   models.Memo
		excerpt, size       sql.NullString
		deviceID            sql.NullString
		extracted, tags     string
		category, inputType string
		deletedAt           sql.NullTime
		processedAt         sql.NullTime
	)

	err := rows.Scan(
		&m.ID, &m.Username, &m.TranscriptionID, &m.Transcript, &excerpt,
		&category, &m.Confidence, &m.NeedsReview, &extracted, &tags, &m.Starred,
		&size, &m.Source, &inputType, &deviceID, &m.CreatedAt, &deletedAt,
		&m.AutoArchived, &processedAt,
	)
	if err != nil {
		return models.Memo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	m.Category = models.ParseCategory(category)
	m.InputType = models.InputType(inputType)
	m.DeviceID = deviceID.String
	if excerpt.Valid {
		m.TranscriptExcerpt = &excerpt.String
	}
	if size.Valid {
		m.Size = models.ParseSize(size.String)
	}
	if deletedAt.Valid {
		m.DeletedAt = &deletedAt.Time
	}
	if processedAt.Valid {
		m.EnrichmentProcessedAt = &processedAt.Time
	}

	if err = decodeJSON(extracted, &m.Extracted); err != nil {
		return models.Memo{}, err
	}
	if err = decodeJSON(tags, &m.Tags); err != nil {
		return models.Memo{}, err
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}

	return m, nil
}
