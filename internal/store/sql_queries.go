package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	tableTranscriptions = "transcriptions"
	tableMemos          = "memos"
	tableQueueJobs      = "queue_jobs"
)

var transcriptionColumns = []string{
	"id", "username", "transcript", "source", "device_id", "input_type",
	"language", "duration_seconds", "provider", "created_at",
}

var memoColumns = []string{
	"id", "username", "transcription_id", "transcript", "transcript_excerpt",
	"category", "confidence", "needs_review", "extracted", "tags", "starred",
	"size", "source", "input_type", "device_id", "created_at", "deleted_at",
	"auto_archived", "enrichment_processed_at",
}

var queueJobColumns = []string{
	"id", "type", "memo_id", "payload", "status", "error", "created_at", "updated_at",
}

func buildInsertTranscriptionQuery(b sq.StatementBuilderType, t models.Transcription) (string, []any, error) {
	query, args, err := b.Insert(tableTranscriptions).
		Columns(transcriptionColumns...).
		Values(
			t.ID, t.Username, t.Transcript, t.Source, nullString(t.DeviceID), string(t.InputType),
			nullString(t.Language), nullable(t.DurationSeconds), t.Provider, t.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertMemosQuery renders one multi-row INSERT for the whole batch.
func buildInsertMemosQuery(b sq.StatementBuilderType, memos []models.Memo) (string, []any, error) {
	insert := b.Insert(tableMemos).Columns(memoColumns...)

	for _, m := range memos {
		extracted, err := encodeJSON(m.Extracted, "{}")
		if err != nil {
			return "", nil, err
		}
		tags, err := encodeJSON(m.Tags, "[]")
		if err != nil {
			return "", nil, err
		}

		var size any
		if m.Size != nil {
			size = string(*m.Size)
		}

		insert = insert.Values(
			m.ID, m.Username, m.TranscriptionID, m.Transcript, nullable(m.TranscriptExcerpt),
			string(m.Category), m.Confidence, m.NeedsReview, extracted, tags, m.Starred,
			size, m.Source, string(m.InputType), nullString(m.DeviceID), m.CreatedAt, nullable(m.DeletedAt),
			m.AutoArchived, nullable(m.EnrichmentProcessedAt),
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectMemosByTranscriptionQuery(b sq.StatementBuilderType, transcriptionID string) (string, []any, error) {
	query, args, err := b.Select(memoColumns...).
		From(tableMemos).
		Where(sq.Eq{"transcription_id": transcriptionID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertDraftQuery inserts row or, when its memo_id already exists,
// overwrites every column except id, memo_id and created_at.
func buildUpsertDraftQuery(b sq.StatementBuilderType, row draftRow, now time.Time) (string, []any, error) {
	columns := append(append([]string{}, row.columns...), "created_at", "updated_at")
	values := append(append([]any{}, row.values...), now, now)

	set := make([]string, 0, len(columns))
	for _, column := range columns {
		switch column {
		case "id", "memo_id", "created_at":
			continue
		}
		set = append(set, fmt.Sprintf("%s = excluded.%s", column, column))
	}

	query, args, err := b.Insert(row.table).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (memo_id) DO UPDATE SET " + strings.Join(set, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkProcessedQuery(b sq.StatementBuilderType, at time.Time, memoIDs []string) (string, []any, error) {
	var where sq.Sqlizer = sq.Eq{"id": memoIDs}
	if len(memoIDs) == 1 {
		where = sq.Eq{"id": memoIDs[0]}
	}

	query, args, err := b.Update(tableMemos).
		Set("enrichment_processed_at", at).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertQueueJobsQuery(b sq.StatementBuilderType, jobs []models.QueueJob) (string, []any, error) {
	insert := b.Insert(tableQueueJobs).Columns(queueJobColumns...)

	for _, job := range jobs {
		payload, err := encodeJSON(job.Payload, "{}")
		if err != nil {
			return "", nil, err
		}
		insert = insert.Values(
			job.ID, string(job.Type), job.MemoID, payload, string(job.Status),
			nullString(job.Error), job.CreatedAt, job.UpdatedAt,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPendingJobsQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	query := b.Select(queueJobColumns...).
		From(tableQueueJobs).
		Where(sq.Eq{"status": string(models.QueueJobPending)}).
		OrderBy("created_at", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rendered, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return rendered, args, nil
}

func buildUpdateQueueJobStatusQuery(b sq.StatementBuilderType, id string, status models.QueueJobStatus, errText string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(tableQueueJobs).
		Set("status", string(status)).
		Set("error", nullString(errText)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// encodeJSON renders v for a TEXT column; nil values become empty.
func encodeJSON(v any, empty string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if string(data) == "null" {
		return empty, nil
	}
	return string(data), nil
}

func decodeJSON(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
