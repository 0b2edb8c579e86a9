// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package heuristics

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	shoppingTrigger   = regexp.MustCompile(`(?i)\b(?:buy|need|get|grab|pick\s+up)\b`)
	sentenceEnd       = regexp.MustCompile(`[.!?\n]`)
	itemSeparator     = regexp.MustCompile(`(?i)\s*(?:,|;|&|\band\b|\bor\b|\bplus\b)\s*`)
	itemTailCutPoints = regexp.MustCompile(`(?i)\s+\b(?:from|at|for|before|after|when|tomorrow|today|tonight|later|on the way)\b.*$`)
)

// leadingItemWords are dropped from the start of an item phrase: trigger
// verbs, possessives and quantifiers.
var leadingItemWords = map[string]struct{}{
	"to": {}, "buy": {}, "get": {}, "grab": {}, "pick": {}, "up": {}, "need": {}, "needs": {},
	"i": {}, "we": {}, "also": {}, "more": {}, "some": {}, "any": {}, "a": {}, "an": {}, "the": {},
	"my": {}, "our": {}, "your": {}, "his": {}, "her": {}, "their": {},
	"few": {}, "couple": {}, "of": {}, "lots": {}, "lot": {}, "bunch": {}, "dozen": {},
	"pack": {}, "packs": {}, "bottle": {}, "bottles": {}, "can": {}, "cans": {}, "bag": {}, "bags": {},
	"box": {}, "boxes": {}, "loaf": {}, "jar": {}, "jars": {},
	"one": {}, "two": {}, "three": {}, "four": {}, "five": {}, "six": {}, "ten": {}, "twelve": {},
}

// itemStopWords are removed anywhere inside an item phrase.
var itemStopWords = map[string]struct{}{
	"please": {}, "also": {}, "too": {}, "some": {}, "maybe": {}, "just": {}, "like": {},
	"um": {}, "uh": {}, "the": {}, "a": {}, "an": {}, "stuff": {}, "things": {}, "etc": {},
}

// ParseShoppingItems splits a shopping memo into title-cased item phrases in
// the order they were mentioned: "I need to buy milk, eggs, and coffee beans"
// gives ["Milk", "Eggs", "Coffee Beans"].
func ParseShoppingItems(text string) []string {
	rest := text
	if loc := shoppingTrigger.FindStringIndex(text); loc != nil {
		rest = text[loc[1]:]
	}
	if loc := sentenceEnd.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}

	seen := make(map[string]struct{})
	items := make([]string, 0, 4)
	for _, part := range itemSeparator.Split(rest, -1) {
		item := cleanItem(part)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, item)
	}
	return items
}

func cleanItem(part string) string {
	part = itemTailCutPoints.ReplaceAllString(strings.TrimSpace(part), "")

	words := strings.Fields(part)
	for len(words) > 0 && isLeadingItemWord(words[0]) {
		words = words[1:]
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if w == "" {
			continue
		}
		if _, stop := itemStopWords[strings.ToLower(w)]; stop {
			continue
		}
		kept = append(kept, titleWord(w))
	}
	return strings.Join(kept, " ")
}

func isLeadingItemWord(w string) bool {
	lw := strings.ToLower(strings.Trim(w, ".,!?;:"))
	if _, ok := leadingItemWords[lw]; ok {
		return true
	}
	if strings.HasSuffix(lw, "'s") || strings.HasSuffix(lw, "’s") {
		return true
	}
	_, err := strconv.Atoi(lw)
	return err == nil
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}
