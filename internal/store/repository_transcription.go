package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type transcriptionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTranscriptionRepository(db *DB, logger *logger.Logger) TranscriptionRepository {
	logger.Debug().Msg("creating transcription repository")
	return &transcriptionRepository{DB: db, logger: logger}
}

// Save inserts t. A duplicate id is reported as [ErrTranscriptionExists].
func (r *transcriptionRepository) Save(ctx context.Context, t models.Transcription) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTranscriptionQuery(r.builder, t)
	if err != nil {
		log.Err(err).Str("func", "transcriptionRepository.Save").Msg("failed to build query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "transcriptionRepository.Save").
			Str("transcription_id", t.ID).
			Str("error_class", r.errorClass(err)).
			Msg("failed to insert transcription")

		if isUniqueViolation(err) {
			return ErrTranscriptionExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
