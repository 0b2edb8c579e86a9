// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func Test_buildInsertMemosQuery_OneStatementForBatch(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	size := models.SizeS
	memos := []models.Memo{
		{ID: "m1", Username: "alice", TranscriptionID: "t1", Transcript: "buy milk", Category: models.CategoryToBuy, Confidence: 0.9, Size: &size, InputType: models.InputText, CreatedAt: now},
		{ID: "m2", Username: "alice", TranscriptionID: "t1", Transcript: "buy milk", TranscriptExcerpt: strPtr("watch dune"), Category: models.CategoryMedia, Confidence: 0.6, NeedsReview: true, InputType: models.InputText, CreatedAt: now},
	}

	query, args, err := buildInsertMemosQuery(pgBuilder, memos)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Equal(t, 1, strings.Count(q, "insert into memos"))
	assert.Contains(t, q, "values ($1,")
	assert.Contains(t, query, "$38")
	require.Len(t, args, 2*len(memoColumns))

	// per-row json and nullable columns
	assert.Equal(t, "{}", args[8])
	assert.Equal(t, "[]", args[9])
	assert.Equal(t, "S", args[11])
	assert.Nil(t, args[len(memoColumns)+11])
	assert.Equal(t, "watch dune", args[len(memoColumns)+4])
}

func Test_buildSelectMemosByTranscriptionQuery(t *testing.T) {
	query, args, err := buildSelectMemosByTranscriptionQuery(sqliteBuilder, "t1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from memos")
	assert.Contains(t, q, "where transcription_id = ?")
	assert.Contains(t, q, "order by created_at, id")
	assert.Equal(t, []any{"t1"}, args)
}

func Test_buildUpsertDraftQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	row, err := draftToRow(models.ShoppingListItemDraft{
		MemoID:   "m1",
		Username: "alice",
		Title:    "Groceries",
		Items:    []string{"Milk", "Eggs"},
	}, "row-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		marker  string
	}{
		{name: "postgres placeholders", builder: pgBuilder, marker: "$8"},
		{name: "sqlite placeholders", builder: sqliteBuilder, marker: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpsertDraftQuery(tt.builder, row, now)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "insert into shopping_list_items")
			assert.Contains(t, q, "on conflict (memo_id) do update set")
			assert.Contains(t, q, "items = excluded.items")
			assert.Contains(t, q, "updated_at = excluded.updated_at")
			assert.NotContains(t, q, "id = excluded.id")
			assert.NotContains(t, q, "memo_id = excluded.memo_id")
			assert.NotContains(t, q, "created_at = excluded.created_at")
			assert.Contains(t, query, tt.marker)

			require.Len(t, args, 8)
			assert.Equal(t, "row-1", args[0])
			assert.Equal(t, `["Milk","Eggs"]`, args[4])
			assert.Nil(t, args[5])
			assert.Equal(t, now, args[7])
		})
	}
}

func Test_buildMarkProcessedQuery(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("single memo", func(t *testing.T) {
		query, args, err := buildMarkProcessedQuery(pgBuilder, at, []string{"m1"})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE memos SET enrichment_processed_at = $1 WHERE id = $2", query)
		assert.Equal(t, []any{at, "m1"}, args)
	})

	t.Run("bulk", func(t *testing.T) {
		query, args, err := buildMarkProcessedQuery(pgBuilder, at, []string{"m1", "m2", "m3"})
		require.NoError(t, err)
		// squirrel generates IN ($2,$3,$4) for a slice.
		assert.Equal(t, "UPDATE memos SET enrichment_processed_at = $1 WHERE id IN ($2,$3,$4)", query)
		assert.Len(t, args, 4)
	})
}

func Test_buildSelectPendingJobsQuery(t *testing.T) {
	query, args, err := buildSelectPendingJobsQuery(pgBuilder, 20)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from queue_jobs")
	assert.Contains(t, q, "where status = $1")
	assert.Contains(t, q, "limit 20")
	assert.Equal(t, []any{"pending"}, args)

	query, _, err = buildSelectPendingJobsQuery(pgBuilder, 0)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildUpdateQueueJobStatusQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateQueueJobStatusQuery(pgBuilder, "job-1", models.QueueJobCompleted, "", now)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE queue_jobs SET status = $1, error = $2, updated_at = $3 WHERE id = $4", query)
	assert.Equal(t, []any{"completed", nil, now, "job-1"}, args)
}

func Test_draftToRow(t *testing.T) {
	major := models.ArcanaMajor
	tests := []struct {
		name    string
		draft   models.Draft
		table   string
		wantErr error
	}{
		{name: "media", draft: models.MediaItemDraft{MemoID: "m", Title: "Dune", MediaType: models.MediaMovie, ReleaseYear: intPtr(2021)}, table: tableMediaItems},
		{name: "media pointer", draft: &models.MediaItemDraft{MemoID: "m", Title: "Dune"}, table: tableMediaItems},
		{name: "reminder", draft: models.ReminderDraft{MemoID: "m", Title: "Call mom"}, table: tableReminders},
		{name: "shopping", draft: models.ShoppingListItemDraft{MemoID: "m"}, table: tableShoppingListItems},
		{name: "todo", draft: models.TodoItemDraft{MemoID: "m"}, table: tableTodoItems},
		{name: "journal", draft: models.JournalItemDraft{MemoID: "m"}, table: tableJournalItems},
		{name: "tarot", draft: models.TarotItemDraft{MemoID: "m", CardName: "The Fool", Arcana: major}, table: tableTarotItems},
		{name: "idea", draft: models.IdeaItemDraft{MemoID: "m"}, table: tableIdeaItems},
		{name: "unsupported", draft: fakeDraft{}, wantErr: ErrUnsupportedDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := draftToRow(tt.draft, "id-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.table, row.table)
			assert.Len(t, row.values, len(row.columns))
			assert.Equal(t, "id", row.columns[0])
			assert.Equal(t, "memo_id", row.columns[1])
			assert.Equal(t, "id-1", row.values[0])
			assert.Equal(t, "m", row.values[1])
		})
	}
}

type fakeDraft struct{}

func (fakeDraft) Kind() models.EnrichmentKind { return "fake" }
func (fakeDraft) OwnerMemoID() string         { return "m" }

func Test_encodeJSON(t *testing.T) {
	var tags []string
	got, err := encodeJSON(tags, "[]")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	got, err = encodeJSON(models.Extracted{"what": "milk"}, "{}")
	require.NoError(t, err)
	assert.JSONEq(t, `{"what":"milk"}`, got)

	_, err = encodeJSON(make(chan int), "{}")
	require.ErrorIs(t, err, ErrEncodingColumn)
}
