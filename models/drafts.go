// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MediaItemDraft is a movie, show, game, book or album to consume.
type MediaItemDraft struct {
	MemoID            string      `json:"memoId"`
	Username          string      `json:"username"`
	Title             string      `json:"title"`
	MediaType         MediaType   `json:"mediaType"`
	ReleaseYear       *int        `json:"releaseYear"`
	AutoTitle         *string     `json:"autoTitle"`
	AutoReleaseYear   *int        `json:"autoReleaseYear"`
	Overview          *string     `json:"overview"`
	PosterURL         *string     `json:"posterUrl"`
	Genres            []string    `json:"genres"`
	RuntimeMinutes    *int        `json:"runtimeMinutes"`
	Rating            *float64    `json:"rating"`
	TimeToBeatMinutes *int        `json:"timeToBeatMinutes"`
	ExternalSource    *string     `json:"externalSource"`
	ExternalID        *string     `json:"externalId"`
	ExternalURL       *string     `json:"externalUrl"`
	SearchDebug       SearchDebug `json:"searchDebug"`
}

func (d MediaItemDraft) Kind() EnrichmentKind { return KindMedia }
func (d MediaItemDraft) OwnerMemoID() string  { return d.MemoID }

// ReminderDraft is a dated or recurring reminder.
type ReminderDraft struct {
	MemoID      string     `json:"memoId"`
	Username    string     `json:"username"`
	Title       string     `json:"title"`
	DueText     *string    `json:"dueText"`
	DueAt       *time.Time `json:"dueAt"`
	Priority    string     `json:"priority"`
	Recurrence  *string    `json:"recurrence"`
	IsRecurring bool       `json:"isRecurring"`
	Notes       *string    `json:"notes"`
}

func (d ReminderDraft) Kind() EnrichmentKind { return KindReminder }
func (d ReminderDraft) OwnerMemoID() string  { return d.MemoID }

// TodoItemDraft is an actionable task.
type TodoItemDraft struct {
	MemoID      string     `json:"memoId"`
	Username    string     `json:"username"`
	Title       string     `json:"title"`
	Priority    string     `json:"priority"`
	Size        *Size      `json:"size"`
	DueText     *string    `json:"dueText"`
	DueAt       *time.Time `json:"dueAt"`
	Recurrence  *string    `json:"recurrence"`
	IsRecurring bool       `json:"isRecurring"`
	Completed   bool       `json:"completed"`
}

func (d TodoItemDraft) Kind() EnrichmentKind { return KindTodo }
func (d TodoItemDraft) OwnerMemoID() string  { return d.MemoID }

// ShoppingListItemDraft groups the items of one shopping memo.
type ShoppingListItemDraft struct {
	MemoID   string   `json:"memoId"`
	Username string   `json:"username"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
	Store    *string  `json:"store"`
}

func (d ShoppingListItemDraft) Kind() EnrichmentKind { return KindShopping }
func (d ShoppingListItemDraft) OwnerMemoID() string  { return d.MemoID }

// JournalItemDraft is a diary entry with a guessed mood.
type JournalItemDraft struct {
	MemoID   string   `json:"memoId"`
	Username string   `json:"username"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Mood     *string  `json:"mood"`
	Themes   []string `json:"themes"`
}

func (d JournalItemDraft) Kind() EnrichmentKind { return KindJournal }
func (d JournalItemDraft) OwnerMemoID() string  { return d.MemoID }

// Arcana of a tarot card.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// TarotItemDraft records a drawn card.
type TarotItemDraft struct {
	MemoID   string  `json:"memoId"`
	Username string  `json:"username"`
	Title    string  `json:"title"`
	CardName string  `json:"cardName"`
	Arcana   Arcana  `json:"arcana"`
	Suit     *string `json:"suit"`
	Rank     *string `json:"rank"`
	Reversed bool    `json:"reversed"`
	Notes    string  `json:"notes"`
}

func (d TarotItemDraft) Kind() EnrichmentKind { return KindTarot }
func (d TarotItemDraft) OwnerMemoID() string  { return d.MemoID }

// IdeaItemDraft is a captured idea with a coarse category.
type IdeaItemDraft struct {
	MemoID       string   `json:"memoId"`
	Username     string   `json:"username"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	IdeaCategory *string  `json:"ideaCategory"`
	Tags         []string `json:"tags"`
}

func (d IdeaItemDraft) Kind() EnrichmentKind { return KindIdea }
func (d IdeaItemDraft) OwnerMemoID() string  { return d.MemoID }
