// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PipelineStage names a step of the capture pipeline.
type PipelineStage string

const (
	StageCapture       PipelineStage = "capture"
	StageTranscription PipelineStage = "transcription"
	StageUnderstanding PipelineStage = "understanding"
	StagePersistence   PipelineStage = "persistence"
	StagePlanning      PipelineStage = "planning"
	StageDispatch      PipelineStage = "dispatch"
	StageFailed        PipelineStage = "failed"
)

// PipelineEvent is one timestamped entry of the event trail.
type PipelineEvent struct {
	Stage   PipelineStage `json:"stage"`
	At      time.Time     `json:"at"`
	Message string        `json:"message"`
}

// CaptureResult is everything one pipeline run produced.
type CaptureResult struct {
	Receipt         CaptureReceipt      `json:"receipt"`
	Transcription   TranscriptionResult `json:"transcription"`
	TranscriptionID string              `json:"transcriptionId"`
	Understanding   UnderstandingResult `json:"understanding"`
	Memos           []Memo              `json:"memos"`
	Tasks           []EnrichmentTask    `json:"tasks"`
	Jobs            []QueueJob          `json:"jobs"`
	Events          []PipelineEvent     `json:"events"`
}
