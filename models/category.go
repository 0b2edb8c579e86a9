// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category is the closed set of memo categories.
type Category string

const (
	CategoryTodo     Category = "todo"
	CategoryReminder Category = "reminder"
	CategoryEvent    Category = "event"
	CategoryToBuy    Category = "to buy"
	CategoryMedia    Category = "media"
	CategoryJournal  Category = "journal"
	CategoryTarot    Category = "tarot"
	CategoryIdea     Category = "idea"
	CategoryOther    Category = "other"
)

// Categories lists every category in prompt order.
var Categories = []Category{
	CategoryTodo,
	CategoryReminder,
	CategoryEvent,
	CategoryToBuy,
	CategoryMedia,
	CategoryJournal,
	CategoryTarot,
	CategoryIdea,
	CategoryOther,
}

var categoryAliases = map[string]Category{
	"shopping":      CategoryToBuy,
	"to-buy":        CategoryToBuy,
	"to_buy":        CategoryToBuy,
	"tobuy":         CategoryToBuy,
	"buy":           CategoryToBuy,
	"grocery":       CategoryToBuy,
	"groceries":     CategoryToBuy,
	"task":          CategoryTodo,
	"to do":         CategoryTodo,
	"to-do":         CategoryTodo,
	"movie":         CategoryMedia,
	"film":          CategoryMedia,
	"tv":            CategoryMedia,
	"show":          CategoryMedia,
	"game":          CategoryMedia,
	"book":          CategoryMedia,
	"music":         CategoryMedia,
	"note":          CategoryJournal,
	"diary":         CategoryJournal,
	"appointment":   CategoryEvent,
	"tarot reading": CategoryTarot,
}

// ParseCategory coerces free text into the closed category set. Unknown
// values become CategoryOther.
func ParseCategory(s string) Category {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	for _, c := range Categories {
		if key == string(c) {
			return c
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryOther
}

// IsActionable reports whether memos of this category carry a size estimate.
func (c Category) IsActionable() bool {
	switch c {
	case CategoryTodo, CategoryReminder, CategoryEvent, CategoryToBuy:
		return true
	}
	return false
}

// MediaType is the closed set of media kinds the resolvers understand.
type MediaType string

const (
	MediaMovie   MediaType = "movie"
	MediaTV      MediaType = "tv"
	MediaMusic   MediaType = "music"
	MediaGame    MediaType = "game"
	MediaBook    MediaType = "book"
	MediaUnknown MediaType = "unknown"
)

// ParseMediaType coerces free text into a MediaType, defaulting to MediaUnknown.
func ParseMediaType(s string) MediaType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "film":
		return MediaMovie
	case "tv", "show", "series", "tv show":
		return MediaTV
	case "music", "album", "song", "podcast":
		return MediaMusic
	case "game", "videogame", "video game":
		return MediaGame
	case "book", "novel":
		return MediaBook
	}
	return MediaUnknown
}

// Size is a rough effort estimate for actionable memos.
type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
)

// ParseSize returns nil for anything other than S, M or L.
func ParseSize(s string) *Size {
	var size Size
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SMALL":
		size = SizeS
	case "M", "MEDIUM":
		size = SizeM
	case "L", "LARGE":
		size = SizeL
	default:
		return nil
	}
	return &size
}
