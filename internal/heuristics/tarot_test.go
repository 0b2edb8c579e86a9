package heuristics

import (
	"testing"

	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarotCard(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TarotCard
	}{
		{
			name: "minor arcana with word rank",
			in:   "pulled the three of swords this morning",
			want: TarotCard{Name: "Three of Swords", Arcana: models.ArcanaMinor, Suit: "Swords", Rank: "Three"},
		},
		{
			name: "minor arcana with numeral and suit alias",
			in:   "got the 7 of coins reversed",
			want: TarotCard{Name: "Seven of Pentacles", Arcana: models.ArcanaMinor, Suit: "Pentacles", Rank: "Seven", Reversed: true},
		},
		{
			name: "court card",
			in:   "Queen of Cups again",
			want: TarotCard{Name: "Queen of Cups", Arcana: models.ArcanaMinor, Suit: "Cups", Rank: "Queen"},
		},
		{
			name: "major with article",
			in:   "drew The High Priestess for the week",
			want: TarotCard{Name: "The High Priestess", Arcana: models.ArcanaMajor},
		},
		{
			name: "bare keyword",
			in:   "temperance came up, upside down",
			want: TarotCard{Name: "Temperance", Arcana: models.ArcanaMajor, Reversed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTarotCard(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTarotCard_NoCard(t *testing.T) {
	_, ok := ParseTarotCard("did a reading with Sam tonight")
	assert.False(t, ok)
}
