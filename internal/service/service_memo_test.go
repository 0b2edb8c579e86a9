package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/mock"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMemoService(t *testing.T) (*memoService, *mock.MockTranscriptionRepository, *mock.MockMemoRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transcriptions := mock.NewMockTranscriptionRepository(ctrl)
	memos := mock.NewMockMemoRepository(ctrl)

	svc := NewMemoService(transcriptions, memos, logger.Nop()).(*memoService)
	svc.ids = &seqIDs{prefix: "id"}
	svc.now = fixedClock
	return svc, transcriptions, memos
}

// ── SaveTranscription ──

func TestSaveTranscription(t *testing.T) {
	duration := 3.5
	tests := []struct {
		name         string
		inputType    models.InputType
		wantDuration *float64
	}{
		{name: "audio keeps duration", inputType: models.InputAudio, wantDuration: &duration},
		{name: "image drops duration", inputType: models.InputImage, wantDuration: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, transcriptions, _ := newTestMemoService(t)
			receipt := testReceipt
			receipt.InputType = tt.inputType

			transcriptions.EXPECT().Save(gomock.Any(), models.Transcription{
				ID:              "id-1",
				Username:        "ann",
				Transcript:      "hello there",
				Source:          "ios",
				DeviceID:        "phone-1",
				InputType:       tt.inputType,
				Language:        "en",
				DurationSeconds: tt.wantDuration,
				Provider:        "whisper-1",
				CreatedAt:       testNow,
			}).Return(nil)

			id, err := svc.SaveTranscription(context.Background(), receipt, models.TranscriptionResult{
				Transcript:      "hello there",
				Language:        "en",
				DurationSeconds: &duration,
				Provider:        "whisper-1",
			})

			require.NoError(t, err)
			assert.Equal(t, "id-1", id)
		})
	}
}

func TestSaveTranscription_StorageError(t *testing.T) {
	svc, transcriptions, _ := newTestMemoService(t)
	dbErr := errors.New("disk full")

	transcriptions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)

	id, err := svc.SaveTranscription(context.Background(), testReceipt, models.TranscriptionResult{Transcript: "x"})

	assert.Empty(t, id)
	require.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)
}

// ── WriteMemos ──

func TestWriteMemos(t *testing.T) {
	svc, _, memos := newTestMemoService(t)

	long := "I need to pick up the dry cleaning on Friday before noon and then drop the package at the post office on the way home"
	drafts := []models.MemoDraft{
		{
			TranscriptExcerpt: strPtr(long),
			Category:          models.CategoryTodo,
			Confidence:        0.9,
			Extracted:         models.Extracted{"when": "friday"},
			Tags:              []string{"errands"},
			Size:              models.ParseSize("M"),
		},
		{
			TranscriptExcerpt: strPtr("test test mic check"),
			Category:          models.CategoryOther,
			Confidence:        0.9,
			Size:              models.ParseSize("S"),
		},
		{
			TranscriptExcerpt: strPtr("thinking about a weekend cabin trip with the whole family sometime this autumn when the leaves change"),
			Category:          models.CategoryJournal,
			Confidence:        0.6,
		},
	}

	var inserted []models.Memo
	memos.EXPECT().InsertBatch(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(_ context.Context, batch []models.Memo) error {
			inserted = batch
			return nil
		})

	got, err := svc.WriteMemos(context.Background(), testReceipt, "tr-1", long, drafts)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, inserted, got)

	todo := got[0]
	assert.Equal(t, "id-1", todo.ID)
	assert.Equal(t, "tr-1", todo.TranscriptionID)
	assert.Equal(t, "ann", todo.Username)
	assert.Equal(t, "ios", todo.Source)
	assert.Equal(t, models.InputAudio, todo.InputType)
	assert.Equal(t, testNow, todo.CreatedAt)
	assert.False(t, todo.IsArchived())
	require.NotNil(t, todo.Size)
	assert.Equal(t, models.SizeM, *todo.Size)

	garbage := got[1]
	assert.True(t, garbage.AutoArchived)
	require.NotNil(t, garbage.DeletedAt)
	assert.Equal(t, testNow, *garbage.DeletedAt)
	assert.Nil(t, garbage.Size)
	assert.Equal(t, []string{}, garbage.Tags)
	assert.Equal(t, models.Extracted{}, garbage.Extracted)

	journal := got[2]
	assert.False(t, journal.IsArchived())
	assert.True(t, journal.NeedsReview, "confidence below 0.7 needs review")
}

func TestWriteMemos_EveryPersistedMemoHonorsReviewThreshold(t *testing.T) {
	svc, _, memos := newTestMemoService(t)
	memos.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)

	text := strings.Repeat("remember the quarterly report ", 5)
	var drafts []models.MemoDraft
	for _, c := range []float64{0, 0.3, 0.69, 0.7, 0.95} {
		drafts = append(drafts, models.MemoDraft{Category: models.CategoryTodo, Confidence: c})
	}

	got, err := svc.WriteMemos(context.Background(), testReceipt, "tr-1", text, drafts)

	require.NoError(t, err)
	for _, memo := range got {
		if memo.Confidence < models.NeedsReviewThreshold {
			assert.True(t, memo.NeedsReview, "confidence %v", memo.Confidence)
		}
	}
}

func TestWriteMemos_BatchFailure(t *testing.T) {
	svc, _, memos := newTestMemoService(t)
	dbErr := errors.New("constraint violated")

	memos.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(dbErr)

	got, err := svc.WriteMemos(context.Background(), testReceipt, "tr-1", "buy milk", []models.MemoDraft{{Category: models.CategoryToBuy, Confidence: 0.9}})

	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)
}

// ── ListByTranscription ──

func TestListByTranscription(t *testing.T) {
	svc, _, memos := newTestMemoService(t)
	want := []models.Memo{memoOf("m-1", models.CategoryIdea, "a podcast about bridges")}

	memos.EXPECT().ListByTranscription(gomock.Any(), "tr-1").Return(want, nil)

	got, err := svc.ListByTranscription(context.Background(), "tr-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListByTranscription_StorageError(t *testing.T) {
	svc, _, memos := newTestMemoService(t)

	memos.EXPECT().ListByTranscription(gomock.Any(), "tr-1").Return(nil, errors.New("timeout"))

	_, err := svc.ListByTranscription(context.Background(), "tr-1")

	assert.ErrorIs(t, err, ErrStorage)
}
