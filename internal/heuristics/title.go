// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package heuristics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minTitleLength = 3

// titleBlocklist holds nouns that are never media titles on their own.
var titleBlocklist = map[string]struct{}{
	"museum": {}, "gallery": {}, "exhibition": {}, "link": {}, "watch": {},
	"play": {}, "read": {}, "listen": {}, "movie": {}, "movies": {}, "film": {},
	"show": {}, "series": {}, "tv": {}, "game": {}, "games": {}, "book": {},
	"album": {}, "song": {}, "podcast": {}, "video": {}, "episode": {},
	"something": {}, "thing": {}, "this": {}, "that": {}, "it": {}, "restaurant": {},
	"cafe": {}, "new one": {}, "the new one": {}, "later": {},
}

var (
	// leadingActionPhrase matches openers such as "I should watch",
	// "gotta play" or "dude you gotta watch".
	leadingActionPhrase = regexp.MustCompile(`(?i)^(?:(?:dude|hey|yo|man|bro|oh|so|okay|ok|remember|reminder)[,!.]?\s+)*` +
		`(?:(?:i|you|we|u)\s+)?` +
		`(?:(?:really|totally|definitely|still)\s+)?` +
		`(?:(?:should|gotta|got to|have to|need to|must|want to|wanna|will|going to|gonna|could|might|to)\s+)?` +
		`(?:(?:re-?)?watch(?:ing)?|play(?:ing)?|read(?:ing)?|listen(?:ing)?\s+to|check(?:ing)?\s+out|see|finish|start|try|binge)\s+`)

	// trailingFiller matches closers such as "again" or "as well".
	trailingFiller = regexp.MustCompile(`(?i)\s+(?:again|too|as well|sometime|sometime soon|someday|at some point|later|soon|tonight|this weekend)$`)

	quoteTrim = "\"'`“”‘’ \t.,!?;:"
)

// SanitizeTitle normalizes a candidate media title. It returns false when
// the candidate is too short or is a blocklisted noun, before or after
// stripping. The function is idempotent.
func SanitizeTitle(raw string) (string, bool) {
	title := normalizeTitle(raw)
	if !validTitle(title) {
		return "", false
	}

	for {
		stripped := normalizeTitle(trailingFiller.ReplaceAllString(leadingActionPhrase.ReplaceAllString(title, ""), ""))
		if stripped == title {
			break
		}
		title = stripped
	}

	if !validTitle(title) {
		return "", false
	}
	return title, true
}

func normalizeTitle(s string) string {
	return strings.Trim(strings.Join(strings.Fields(s), " "), quoteTrim)
}

func validTitle(title string) bool {
	if utf8.RuneCountInString(title) < minTitleLength {
		return false
	}
	_, blocked := titleBlocklist[strings.ToLower(title)]
	return !blocked
}
