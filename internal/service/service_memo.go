package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/heuristics"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/metrics"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type memoService struct {
	transcriptions store.TranscriptionRepository
	memos          store.MemoRepository
	ids            utils.IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewMemoService(transcriptions store.TranscriptionRepository, memos store.MemoRepository, logger *logger.Logger) MemoService {
	return &memoService{
		transcriptions: transcriptions,
		memos:          memos,
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// SaveTranscription stores one transcription row and returns the id every
// memo of the capture shares. Duration is kept for audio captures only.
func (s *memoService) SaveTranscription(ctx context.Context, receipt models.CaptureReceipt, transcription models.TranscriptionResult) (string, error) {
	log := logger.FromContext(ctx)

	row := models.Transcription{
		ID:         s.ids.Generate(),
		Username:   receipt.Username,
		Transcript: transcription.Transcript,
		Source:     receipt.Source,
		DeviceID:   receipt.DeviceID,
		InputType:  receipt.InputType,
		Language:   transcription.Language,
		Provider:   transcription.Provider,
		CreatedAt:  s.now(),
	}
	if receipt.InputType == models.InputAudio {
		row.DurationSeconds = transcription.DurationSeconds
	}

	if err := s.transcriptions.Save(ctx, row); err != nil {
		log.Err(err).Str("func", "memoService.SaveTranscription").Str("request_id", receipt.RequestID).Msg("error saving transcription")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return row.ID, nil
}

// WriteMemos builds one memo per draft and inserts them in one batch. Drafts
// the garbage detector rejects are written already archived.
func (s *memoService) WriteMemos(ctx context.Context, receipt models.CaptureReceipt, transcriptionID, transcript string, drafts []models.MemoDraft) ([]models.Memo, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	memos := make([]models.Memo, 0, len(drafts))
	for _, draft := range drafts {
		memo := models.Memo{
			ID:                s.ids.Generate(),
			Username:          receipt.Username,
			TranscriptionID:   transcriptionID,
			Transcript:        transcript,
			TranscriptExcerpt: draft.TranscriptExcerpt,
			Category:          draft.Category,
			Confidence:        draft.Confidence,
			NeedsReview:       draft.NeedsReview || draft.Confidence < models.NeedsReviewThreshold,
			Extracted:         draft.Extracted,
			Tags:              draft.Tags,
			Starred:           draft.Starred,
			Source:            receipt.Source,
			InputType:         receipt.InputType,
			DeviceID:          receipt.DeviceID,
			CreatedAt:         now,
		}
		if draft.Category.IsActionable() {
			memo.Size = draft.Size
		}
		if memo.Tags == nil {
			memo.Tags = []string{}
		}
		if memo.Extracted == nil {
			memo.Extracted = models.Extracted{}
		}

		if verdict := heuristics.DetectGarbage(memo.Text(), memo.Category, memo.Confidence); verdict.IsGarbage {
			archivedAt := now
			memo.DeletedAt = &archivedAt
			memo.AutoArchived = true
			metrics.MemosArchived.Add(1)
			log.Info().
				Str("memo_id", memo.ID).
				Str("transcription_id", transcriptionID).
				Str("reason", verdict.Reason).
				Msg("memo auto-archived as garbage")
		}

		memos = append(memos, memo)
	}

	if err := s.memos.InsertBatch(ctx, memos); err != nil {
		log.Err(err).Str("func", "memoService.WriteMemos").Str("transcription_id", transcriptionID).Int("memos", len(memos)).Msg("error inserting memos")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return memos, nil
}

func (s *memoService) ListByTranscription(ctx context.Context, transcriptionID string) ([]models.Memo, error) {
	memos, err := s.memos.ListByTranscription(ctx, transcriptionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "memoService.ListByTranscription").Str("transcription_id", transcriptionID).Msg("error listing memos")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return memos, nil
}
