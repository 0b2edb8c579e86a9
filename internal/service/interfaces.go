// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the capture pipeline: capture, transcription,
// understanding, memo persistence, enrichment planning and dispatch.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// CaptureService validates a capture and derives its receipt.
type CaptureService interface {
	Receive(ctx context.Context, req models.CaptureRequest) (models.CaptureReceipt, error)
}

// TranscriptionService turns a capture into text.
type TranscriptionService interface {
	Transcribe(ctx context.Context, req models.CaptureRequest) (models.TranscriptionResult, error)
}

// UnderstandingService splits a transcript into categorized memo drafts.
// expectedCount is a hint; zero means unknown.
type UnderstandingService interface {
	Understand(ctx context.Context, transcript string, expectedCount int) (models.UnderstandingResult, error)
}

// MemoService persists transcriptions and the memos split from them.
type MemoService interface {
	SaveTranscription(ctx context.Context, receipt models.CaptureReceipt, transcription models.TranscriptionResult) (string, error)
	WriteMemos(ctx context.Context, receipt models.CaptureReceipt, transcriptionID, transcript string, drafts []models.MemoDraft) ([]models.Memo, error)
	ListByTranscription(ctx context.Context, transcriptionID string) ([]models.Memo, error)
}

// EnrichmentPlanner decides which enrichment tasks the written memos need.
type EnrichmentPlanner interface {
	Plan(ctx context.Context, receipt models.CaptureReceipt, transcriptionID string, memos []models.Memo) []models.EnrichmentTask
}

// EnrichmentHandler turns one task of its kind into a job result.
type EnrichmentHandler interface {
	Kind() models.EnrichmentKind
	Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error)
}

// EnrichmentRunner handles a task and persists its outcome.
type EnrichmentRunner interface {
	Run(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error)
}

// QueueDispatcher hands enrichment tasks to a runner, now or later.
type QueueDispatcher interface {
	Dispatch(ctx context.Context, tasks []models.EnrichmentTask) ([]models.QueueJob, error)
}

// QueueProcessor drains tasks stored by the log dispatcher.
type QueueProcessor interface {
	// ProcessPending runs up to one batch of pending jobs and returns how
	// many were taken.
	ProcessPending(ctx context.Context) (int, error)
}

// CapturePipeline runs one capture through every stage.
type CapturePipeline interface {
	Process(ctx context.Context, req models.CaptureRequest) (models.CaptureResult, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
