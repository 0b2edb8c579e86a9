// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package heuristics

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// TarotCard is a card recognized in free text.
type TarotCard struct {
	Name     string
	Arcana   models.Arcana
	Suit     string
	Rank     string
	Reversed bool
}

var tarotRanks = map[string]string{
	"ace": "Ace", "1": "Ace", "one": "Ace",
	"two": "Two", "2": "Two", "three": "Three", "3": "Three",
	"four": "Four", "4": "Four", "five": "Five", "5": "Five",
	"six": "Six", "6": "Six", "seven": "Seven", "7": "Seven",
	"eight": "Eight", "8": "Eight", "nine": "Nine", "9": "Nine",
	"ten": "Ten", "10": "Ten",
	"page": "Page", "knight": "Knight", "queen": "Queen", "king": "King",
}

var tarotSuits = map[string]string{
	"wands": "Wands", "rods": "Wands", "staves": "Wands",
	"cups": "Cups", "chalices": "Cups",
	"swords": "Swords",
	"pentacles": "Pentacles", "coins": "Pentacles", "disks": "Pentacles",
}

// majorArcana maps the lower-case key of each major card to its canonical name.
var majorArcana = []struct {
	key  string
	name string
}{
	{"high priestess", "The High Priestess"},
	{"wheel of fortune", "Wheel of Fortune"},
	{"hanged man", "The Hanged Man"},
	{"fool", "The Fool"},
	{"magician", "The Magician"},
	{"empress", "The Empress"},
	{"emperor", "The Emperor"},
	{"hierophant", "The Hierophant"},
	{"lovers", "The Lovers"},
	{"chariot", "The Chariot"},
	{"strength", "Strength"},
	{"hermit", "The Hermit"},
	{"justice", "Justice"},
	{"death", "Death"},
	{"temperance", "Temperance"},
	{"devil", "The Devil"},
	{"tower", "The Tower"},
	{"star", "The Star"},
	{"moon", "The Moon"},
	{"sun", "The Sun"},
	{"judgement", "Judgement"},
	{"judgment", "Judgement"},
	{"world", "The World"},
}

var (
	minorArcanaPattern = regexp.MustCompile(`(?i)\b(ace|one|two|three|four|five|six|seven|eight|nine|ten|page|knight|queen|king|10|[1-9])\s+of\s+(wands|rods|staves|cups|chalices|swords|pentacles|coins|disks)\b`)
	majorArcanaPattern = regexp.MustCompile(`(?i)\bthe\s+(high priestess|wheel of fortune|hanged man|fool|magician|empress|emperor|hierophant|lovers|chariot|strength|hermit|justice|death|temperance|devil|tower|star|moon|sun|judgement|judgment|world)\b`)
	reversedPattern    = regexp.MustCompile(`(?i)\b(?:reversed|upside[ -]down|inverted)\b`)
)

// ParseTarotCard finds a card name using, in order: "X of Y" minor arcana,
// "The X" major arcana, and a bare scan of major arcana names.
func ParseTarotCard(text string) (TarotCard, bool) {
	reversed := reversedPattern.MatchString(text)

	if m := minorArcanaPattern.FindStringSubmatch(text); m != nil {
		rank := tarotRanks[strings.ToLower(m[1])]
		suit := tarotSuits[strings.ToLower(m[2])]
		return TarotCard{
			Name:     rank + " of " + suit,
			Arcana:   models.ArcanaMinor,
			Suit:     suit,
			Rank:     rank,
			Reversed: reversed,
		}, true
	}

	if m := majorArcanaPattern.FindStringSubmatch(text); m != nil {
		if name, ok := majorName(m[1]); ok {
			return TarotCard{Name: name, Arcana: models.ArcanaMajor, Reversed: reversed}, true
		}
	}

	lower := strings.ToLower(text)
	for _, card := range majorArcana {
		if ContainsKeyword(lower, card.key) {
			return TarotCard{Name: card.name, Arcana: models.ArcanaMajor, Reversed: reversed}, true
		}
	}

	return TarotCard{}, false
}

func majorName(key string) (string, bool) {
	key = strings.ToLower(strings.Join(strings.Fields(key), " "))
	for _, card := range majorArcana {
		if card.key == key {
			return card.name, true
		}
	}
	return "", false
}
