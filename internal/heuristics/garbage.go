// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package heuristics

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	veryShortWords = 10
	veryShortChars = 50
	shortWords     = 20
	shortChars     = 100
	longTestWords  = 40

	lowConfidence      = 0.3
	uncertainOtherConf = 0.5
)

// TestPhrases mark recordings made to check the microphone or the app.
var TestPhrases = []string{
	"test test", "testing testing", "just testing", "this is a test", "testing 1 2 3",
	"mic check", "microphone check", "can you hear me", "check check", "one two three",
	"hello hello", "is this working", "is this on", "sound check",
}

// fillerWords carry no content on their own.
var fillerWords = map[string]struct{}{
	"um": {}, "umm": {}, "uh": {}, "uhh": {}, "hmm": {}, "hm": {}, "er": {},
	"ah": {}, "oh": {}, "okay": {}, "ok": {}, "so": {}, "yeah": {}, "hello": {}, "hi": {},
}

// GarbageVerdict is the outcome of [DetectGarbage].
type GarbageVerdict struct {
	IsGarbage bool
	Reason    string
}

// DetectGarbage applies ordered rules, first match wins:
//  1. very short (< 10 words and < 50 chars) with test keywords or filler only;
//  2. test keywords and short (< 20 words or < 100 chars);
//  3. confidence < 0.3;
//  4. category other, confidence < 0.5 and short;
//  5. test keywords and < 40 words.
func DetectGarbage(transcript string, category models.Category, confidence float64) GarbageVerdict {
	text := strings.TrimSpace(transcript)
	words := strings.Fields(text)
	wordCount := len(words)
	charCount := utf8.RuneCountInString(text)

	hasTestPhrase := ContainsAny(text, TestPhrases)
	veryShort := wordCount < veryShortWords && charCount < veryShortChars
	short := wordCount < shortWords || charCount < shortChars

	switch {
	case veryShort && hasTestPhrase:
		return garbage("very short recording with test keywords (%d words, %d chars)", wordCount, charCount)
	case veryShort && fillerOnly(words):
		return garbage("very short recording without content (%d words, %d chars)", wordCount, charCount)
	case hasTestPhrase && short:
		return garbage("short recording with test keywords (%d words)", wordCount)
	case confidence < lowConfidence:
		return garbage("classifier confidence %.2f below %.2f", confidence, lowConfidence)
	case category == models.CategoryOther && confidence < uncertainOtherConf && short:
		return garbage("short uncategorized memo with confidence %.2f", confidence)
	case hasTestPhrase && wordCount < longTestWords:
		return garbage("test keywords in a %d-word recording", wordCount)
	}

	return GarbageVerdict{}
}

func garbage(format string, args ...any) GarbageVerdict {
	return GarbageVerdict{IsGarbage: true, Reason: fmt.Sprintf(format, args...)}
}

// fillerOnly reports whether words contain no letters or only filler words.
func fillerOnly(words []string) bool {
	for _, w := range words {
		w = strings.ToLower(strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }))
		if w == "" {
			continue
		}
		if _, ok := fillerWords[w]; !ok {
			return false
		}
	}
	return true
}
