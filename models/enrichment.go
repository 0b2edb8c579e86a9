// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// EnrichmentKind names the seven enrichment task kinds.
type EnrichmentKind string

const (
	KindMedia    EnrichmentKind = "media"
	KindReminder EnrichmentKind = "reminder"
	KindShopping EnrichmentKind = "shopping"
	KindTodo     EnrichmentKind = "todo"
	KindJournal  EnrichmentKind = "journal"
	KindTarot    EnrichmentKind = "tarot"
	KindIdea     EnrichmentKind = "idea"
)

var (
	ErrUnknownEnrichmentKind = errors.New("unknown enrichment kind")
	ErrMissingEnrichmentHint = errors.New("enrichment task is missing its kind-specific hints")
)

// EnrichmentPayload is the part shared by every enrichment task.
type EnrichmentPayload struct {
	TranscriptionID   string    `json:"transcriptionId"`
	Username          string    `json:"username"`
	MemoID            string    `json:"memoId"`
	Category          Category  `json:"category"`
	Tags              []string  `json:"tags"`
	Extracted         Extracted `json:"extracted"`
	TranscriptExcerpt string    `json:"transcriptExcerpt"`
	Size              *Size     `json:"size,omitempty"`
}

// MediaHints carries the planner's guess about the referenced title.
type MediaHints struct {
	ProbableTitle string    `json:"probableTitle"`
	ProbableYear  *int      `json:"probableYear,omitempty"`
	ProbableType  MediaType `json:"probableType"`
	// TitleOverride is a user-provided title that beats every resolver.
	TitleOverride string `json:"titleOverride,omitempty"`
}

// ReminderHints is shared by reminder and todo tasks.
type ReminderHints struct {
	When        string `json:"when,omitempty"`
	What        string `json:"what,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Recurrence  string `json:"recurrence,omitempty"`
	IsRecurring bool   `json:"isRecurring"`
}

// ShoppingHints carries items parsed from the transcript.
type ShoppingHints struct {
	Items []string `json:"items"`
}

// EnrichmentTask is a tagged union: Kind selects which hint field is set.
// Journal, tarot and idea tasks carry the base payload only.
type EnrichmentTask struct {
	Kind     EnrichmentKind    `json:"kind"`
	Payload  EnrichmentPayload `json:"payload"`
	Media    *MediaHints       `json:"media,omitempty"`
	Reminder *ReminderHints    `json:"reminder,omitempty"`
	Shopping *ShoppingHints    `json:"shopping,omitempty"`
}

// Validate checks that the hint field matches Kind.
func (t EnrichmentTask) Validate() error {
	switch t.Kind {
	case KindMedia:
		if t.Media == nil {
			return fmt.Errorf("%w: %s", ErrMissingEnrichmentHint, t.Kind)
		}
	case KindReminder, KindTodo:
		if t.Reminder == nil {
			return fmt.Errorf("%w: %s", ErrMissingEnrichmentHint, t.Kind)
		}
	case KindShopping:
		if t.Shopping == nil {
			return fmt.Errorf("%w: %s", ErrMissingEnrichmentHint, t.Kind)
		}
	case KindJournal, KindTarot, KindIdea:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnrichmentKind, t.Kind)
	}
	return nil
}

// JobStatus is the outcome of one enrichment handler run.
type JobStatus string

const (
	JobCompleted JobStatus = "completed"
	JobSkipped   JobStatus = "skipped"
)

// Draft is a kind-specific record produced by an enrichment handler and
// upserted into its category table keyed by memo id.
type Draft interface {
	Kind() EnrichmentKind
	OwnerMemoID() string
}

// EnrichmentJobResult is either completed (Draft and Payload set) or skipped
// (Reason set).
type EnrichmentJobResult struct {
	Status  JobStatus         `json:"status"`
	Kind    EnrichmentKind    `json:"type"`
	Draft   Draft             `json:"draft,omitempty"`
	Payload EnrichmentPayload `json:"payload"`
	Reason  string            `json:"reason,omitempty"`
}

// Completed builds a completed result.
func Completed(kind EnrichmentKind, draft Draft, payload EnrichmentPayload) EnrichmentJobResult {
	return EnrichmentJobResult{Status: JobCompleted, Kind: kind, Draft: draft, Payload: payload}
}

// Skipped builds a skipped result.
func Skipped(kind EnrichmentKind, payload EnrichmentPayload, reason string) EnrichmentJobResult {
	return EnrichmentJobResult{Status: JobSkipped, Kind: kind, Payload: payload, Reason: reason}
}
