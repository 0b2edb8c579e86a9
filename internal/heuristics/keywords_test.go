package heuristics

import (
	"testing"

	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestTable_FirstMatchWins(t *testing.T) {
	table := Table{
		{Label: "first", Keywords: []string{"alpha"}},
		{Label: "second", Keywords: []string{"alpha", "beta"}},
	}

	label, ok := table.Match("beta then alpha")
	assert.True(t, ok)
	assert.Equal(t, "first", label)

	_, ok = table.Match("gamma")
	assert.False(t, ok)
}

func TestContainsKeyword_WordBoundaries(t *testing.T) {
	assert.True(t, ContainsKeyword("Watch the MOVIE tonight", "movie"))
	assert.False(t, ContainsKeyword("a moviegoer", "movie"))
	assert.True(t, ContainsKeyword("we should visit the museum", "visit the"))
}

func TestInferMediaType(t *testing.T) {
	assert.Equal(t, models.MediaMovie, InferMediaType("new film by Villeneuve"))
	assert.Equal(t, models.MediaTV, InferMediaType("", "finish the series"))
	assert.Equal(t, models.MediaGame, InferMediaType("that videogame"))
	assert.Equal(t, models.MediaBook, InferMediaType("a novel about whales"))
	assert.Equal(t, models.MediaUnknown, InferMediaType("call mom"))
}

func TestMoods(t *testing.T) {
	mood, ok := Moods.Match("I felt so anxious before the interview")
	assert.True(t, ok)
	assert.Equal(t, "anxious", mood)

	mood, _ = Moods.Match("really grateful for my friends, and happy")
	assert.Equal(t, "happy", mood)
}

func TestIdeaCategories(t *testing.T) {
	label, ok := IdeaCategories.Match("an app that helps customers split bills")
	assert.True(t, ok)
	assert.Equal(t, "product", label)

	label, _ = IdeaCategories.Match("refactor the database layer")
	assert.Equal(t, "technical", label)
}

func TestDetectRecurrence(t *testing.T) {
	r, ok := DetectRecurrence("take vitamins every morning")
	assert.True(t, ok)
	assert.Equal(t, "daily", r)

	r, _ = DetectRecurrence("water plants every other day")
	assert.Equal(t, "custom", r)

	_, ok = DetectRecurrence("call the dentist on friday")
	assert.False(t, ok)
}
