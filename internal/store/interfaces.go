// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists transcriptions, memos, enrichment drafts and queue
// jobs in PostgreSQL or SQLite through database/sql.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// TranscriptionRepository stores one row per processed capture.
type TranscriptionRepository interface {
	Save(ctx context.Context, t models.Transcription) error
}

// MemoRepository stores memos split from a transcription.
type MemoRepository interface {
	// InsertBatch writes every memo in a single statement.
	InsertBatch(ctx context.Context, memos []models.Memo) error
	ListByTranscription(ctx context.Context, transcriptionID string) ([]models.Memo, error)
}

// EnrichmentRepository upserts drafts into their category tables and marks
// the owning memos as processed.
type EnrichmentRepository interface {
	// UpsertDraft inserts or overwrites the row keyed by draft.OwnerMemoID().
	UpsertDraft(ctx context.Context, draft models.Draft) error
	// MarkProcessed sets enrichment_processed_at on every listed memo.
	MarkProcessed(ctx context.Context, at time.Time, memoIDs ...string) error
}

// QueueJobRepository persists enrichment tasks for out-of-band processing.
type QueueJobRepository interface {
	Save(ctx context.Context, jobs ...models.QueueJob) error
	ListPending(ctx context.Context, limit int) ([]models.QueueJob, error)
	UpdateStatus(ctx context.Context, id string, status models.QueueJobStatus, errText string) error
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
