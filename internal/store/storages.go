package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// Storages groups every repository of the capture pipeline over one
// connection pool.
type Storages struct {
	DB *DB

	TranscriptionRepository TranscriptionRepository
	MemoRepository          MemoRepository
	EnrichmentRepository    EnrichmentRepository
	QueueJobRepository      QueueJobRepository
}

// NewStorages connects to the database named by cfg.DB, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                      db,
		TranscriptionRepository: NewTranscriptionRepository(db, logger),
		MemoRepository:          NewMemoRepository(db, logger),
		EnrichmentRepository:    NewEnrichmentRepository(db, logger),
		QueueJobRepository:      NewQueueJobRepository(db, logger),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
