// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of go-memo-keeper.
//
// Server side, [ModelProvider] talks to an OpenAI-compatible endpoint for
// speech-to-text, vision and structured understanding, and every
// [MediaResolver] looks a title up in one metadata source (TMDB, IGDB,
// Wikipedia). Client side, [CaptureAdapter] submits captures to the server
// with bounded retry.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-memo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ModelProvider calls hosted models. Implementations never retry; callers
// own any fallback policy.
type ModelProvider interface {
	// Transcribe converts an audio payload to text with req.Model.
	Transcribe(ctx context.Context, req SpeechRequest) (models.TranscriptionResult, error)

	// Complete runs one chat completion and returns the assistant message
	// content. With req.JSONResponse the model is asked for a JSON object.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// MediaResolver looks up a media title in one metadata source.
type MediaResolver interface {
	// Name identifies the resolver in search debug output.
	Name() string

	// Resolve returns the best match for q, or nil when the source has no
	// acceptable candidate.
	Resolve(ctx context.Context, q models.MediaQuery) (*Resolution, error)
}

// CaptureAdapter submits captures to the go-memo-keeper server.
type CaptureAdapter interface {
	// Submit posts req and returns the pipeline result. Network failures and
	// 5xx responses are retried with a fixed delay; 4xx fail immediately.
	Submit(ctx context.Context, req models.CaptureRequest) (models.CaptureResult, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}

// SpeechRequest is one speech-to-text call.
type SpeechRequest struct {
	Audio          []byte
	Filename       string
	ContentType    string
	Model          string
	Language       string
	ResponseFormat string
}

// ChatMessage is one message of a chat completion. A non-empty ImageURL
// (usually a data URL) turns the message into a text+image content list.
type ChatMessage struct {
	Role     string
	Text     string
	ImageURL string
}

// ChatRequest is one chat completion call.
type ChatRequest struct {
	Model        string
	Messages     []ChatMessage
	JSONResponse bool
	Temperature  *float64
	MaxTokens    int
}

// Resolution is a resolver match together with the score that ranked it.
type Resolution struct {
	Match models.MediaMatch
	Score float64
}
