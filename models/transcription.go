// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderDirect marks a transcription that was passed through from text input.
const ProviderDirect = "direct"

// TranscriptionResult is the text produced from a capture.
type TranscriptionResult struct {
	Transcript      string   `json:"transcript"`
	Language        string   `json:"language,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
	Provider        string   `json:"provider"`
}

// Transcription is the persisted transcription row. Its ID is shared by every
// memo split from the same capture.
type Transcription struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Transcript      string    `json:"transcript"`
	Source          string    `json:"source"`
	DeviceID        string    `json:"deviceId,omitempty"`
	InputType       InputType `json:"inputType"`
	Language        string    `json:"language,omitempty"`
	DurationSeconds *float64  `json:"durationSeconds,omitempty"`
	Provider        string    `json:"provider"`
	CreatedAt       time.Time `json:"createdAt"`
}
