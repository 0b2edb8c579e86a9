// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package heuristics

import (
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// Bucket is one (label, keywords) row of a keyword table.
type Bucket struct {
	Label    string
	Keywords []string
}

// Table is an ordered list of buckets; the first bucket with a matching
// keyword wins.
type Table []Bucket

// Match returns the label of the first bucket with a keyword present in any
// of texts. Keywords match on word boundaries, case-insensitively.
func (t Table) Match(texts ...string) (string, bool) {
	joined := strings.ToLower(strings.Join(texts, " \n "))
	for _, b := range t {
		for _, kw := range b.Keywords {
			if ContainsKeyword(joined, kw) {
				return b.Label, true
			}
		}
	}
	return "", false
}

var (
	keywordPatternsMu sync.Mutex
	keywordPatterns   = map[string]*regexp.Regexp{}
)

// ContainsKeyword reports whether keyword (a word or phrase) appears in text
// on word boundaries, ignoring case.
func ContainsKeyword(text, keyword string) bool {
	keywordPatternsMu.Lock()
	re, ok := keywordPatterns[keyword]
	if !ok {
		re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		keywordPatterns[keyword] = re
	}
	keywordPatternsMu.Unlock()

	return re.MatchString(text)
}

// ContainsAny reports whether any keyword appears in text.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if ContainsKeyword(text, kw) {
			return true
		}
	}
	return false
}

// MediaTypes infers a probable media type from free text.
var MediaTypes = Table{
	{Label: string(models.MediaMovie), Keywords: []string{"movie", "movies", "film", "films", "cinema"}},
	{Label: string(models.MediaTV), Keywords: []string{"show", "series", "tv", "tv show", "episode", "season"}},
	{Label: string(models.MediaMusic), Keywords: []string{"album", "song", "music", "track", "podcast"}},
	{Label: string(models.MediaGame), Keywords: []string{"game", "videogame", "video game", "play"}},
	{Label: string(models.MediaBook), Keywords: []string{"book", "novel", "read", "reading"}},
}

// InferMediaType scans texts with [MediaTypes].
func InferMediaType(texts ...string) models.MediaType {
	if label, ok := MediaTypes.Match(texts...); ok {
		return models.MediaType(label)
	}
	return models.MediaUnknown
}

// LocationKeywords mark memos that talk about a place rather than a title.
var LocationKeywords = []string{
	"museum", "gallery", "exhibition", "restaurant", "cafe", "visit the", "go to the",
}

// Moods maps journal text to a mood label.
var Moods = Table{
	{Label: "happy", Keywords: []string{"happy", "joy", "joyful", "excited", "great day", "amazing", "awesome", "wonderful", "thrilled"}},
	{Label: "sad", Keywords: []string{"sad", "down", "depressed", "lonely", "cry", "cried", "miserable", "heartbroken"}},
	{Label: "anxious", Keywords: []string{"anxious", "anxiety", "worried", "worry", "nervous", "stressed", "panic", "overwhelmed"}},
	{Label: "calm", Keywords: []string{"calm", "relaxed", "peaceful", "content", "chill", "serene"}},
	{Label: "frustrated", Keywords: []string{"frustrated", "annoyed", "angry", "irritated", "mad", "furious"}},
	{Label: "grateful", Keywords: []string{"grateful", "thankful", "blessed", "appreciate", "gratitude"}},
	{Label: "confused", Keywords: []string{"confused", "unsure", "lost", "uncertain", "don't know what"}},
}

// IdeaCategories maps idea text to a coarse category.
var IdeaCategories = Table{
	{Label: "product", Keywords: []string{"product", "app", "startup", "sell", "customers", "market"}},
	{Label: "feature", Keywords: []string{"feature", "button", "setting", "option", "improvement", "add a"}},
	{Label: "project", Keywords: []string{"project", "build", "side project", "diy", "renovate"}},
	{Label: "creative", Keywords: []string{"story", "song", "poem", "paint", "drawing", "novel", "film", "design"}},
	{Label: "business", Keywords: []string{"business", "revenue", "pricing", "marketing", "company", "client"}},
	{Label: "technical", Keywords: []string{"code", "api", "database", "algorithm", "server", "script", "bug", "refactor"}},
}

// Recurrences maps reminder text to a recurrence rule.
var Recurrences = Table{
	{Label: "daily", Keywords: []string{"every day", "everyday", "daily", "each day", "every morning", "every night", "every evening"}},
	{Label: "weekly", Keywords: []string{"every week", "weekly", "each week", "every monday", "every tuesday", "every wednesday", "every thursday", "every friday", "every saturday", "every sunday"}},
	{Label: "monthly", Keywords: []string{"every month", "monthly", "each month"}},
	{Label: "yearly", Keywords: []string{"every year", "yearly", "annually", "each year"}},
	{Label: "custom", Keywords: []string{"every", "habit", "routine", "regularly", "recurring"}},
}

// DetectRecurrence returns the recurrence rule implied by texts, if any.
func DetectRecurrence(texts ...string) (string, bool) {
	return Recurrences.Match(texts...)
}

// Priorities maps reminder text to a priority label.
var Priorities = Table{
	{Label: "high", Keywords: []string{"urgent", "asap", "important", "high priority", "critical", "right away"}},
	{Label: "low", Keywords: []string{"whenever", "someday", "low priority", "no rush", "eventually"}},
}
