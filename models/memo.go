// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
	"time"
)

// NeedsReviewThreshold is the confidence below which a memo is flagged for review.
const NeedsReviewThreshold = 0.7

// Extracted holds the structured fields pulled out of a transcript
// (title, who, when, where, what and any provider-specific extras).
type Extracted map[string]any

// String returns the trimmed textual value stored under key. Numbers are
// formatted, lists are joined with ", ".
func (e Extracted) String(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	case []string:
		return strings.Join(value, ", ")
	case []any:
		return strings.Join(e.Strings(key), ", ")
	}
	return ""
}

// Strings returns the value under key as a list, wrapping scalars.
func (e Extracted) Strings(key string) []string {
	v, ok := e[key]
	if !ok || v == nil {
		return nil
	}
	switch value := v.(type) {
	case []string:
		return compactStrings(value)
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return compactStrings(out)
	}
	if s := e.String(key); s != "" {
		return []string{s}
	}
	return nil
}

// FirstString returns the first non-empty value among keys.
func (e Extracted) FirstString(keys ...string) string {
	for _, key := range keys {
		if s := e.String(key); s != "" {
			return s
		}
	}
	return ""
}

// Who returns the people mentioned in the memo.
func (e Extracted) Who() []string {
	return e.Strings("who")
}

// Values returns every textual value, used for keyword scans.
func (e Extracted) Values() []string {
	out := make([]string, 0, len(e))
	for key := range e {
		out = append(out, e.Strings(key)...)
	}
	return out
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MemoDraft is one topic produced by the understanding step.
type MemoDraft struct {
	// TranscriptExcerpt is nil when the memo covers the whole transcript.
	TranscriptExcerpt *string   `json:"transcriptExcerpt"`
	Category          Category  `json:"category"`
	Confidence        float64   `json:"confidence"`
	NeedsReview       bool      `json:"needsReview"`
	Extracted         Extracted `json:"extracted"`
	Tags              []string  `json:"tags"`
	Starred           bool      `json:"starred"`
	Size              *Size     `json:"size"`
}

// UnderstandingResult always carries at least one MemoDraft.
type UnderstandingResult struct {
	ShouldSplit bool        `json:"shouldSplit"`
	Memos       []MemoDraft `json:"memos"`
}

// Memo is a persisted, categorized note.
type Memo struct {
	ID                    string     `json:"id"`
	Username              string     `json:"username"`
	TranscriptionID       string     `json:"transcriptionId"`
	Transcript            string     `json:"transcript"`
	TranscriptExcerpt     *string    `json:"transcriptExcerpt"`
	Category              Category   `json:"category"`
	Confidence            float64    `json:"confidence"`
	NeedsReview           bool       `json:"needsReview"`
	Extracted             Extracted  `json:"extracted"`
	Tags                  []string   `json:"tags"`
	Starred               bool       `json:"starred"`
	Size                  *Size      `json:"size"`
	Source                string     `json:"source"`
	InputType             InputType  `json:"inputType"`
	DeviceID              string     `json:"deviceId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	DeletedAt             *time.Time `json:"deletedAt"`
	AutoArchived          bool       `json:"autoArchived"`
	EnrichmentProcessedAt *time.Time `json:"enrichmentProcessedAt"`
}

// Text returns the excerpt when present, otherwise the full transcript.
func (m Memo) Text() string {
	if m.TranscriptExcerpt != nil && strings.TrimSpace(*m.TranscriptExcerpt) != "" {
		return *m.TranscriptExcerpt
	}
	return m.Transcript
}

// IsArchived reports whether the memo is soft-deleted or auto-archived.
func (m Memo) IsArchived() bool {
	return m.DeletedAt != nil || m.AutoArchived
}
