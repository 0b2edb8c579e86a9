package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	defaultConfidence      = 0.5
	understandingMaxTokens = 2048
)

var understandingTemperature = 0.2

const understandingPrompt = `You turn a personal voice or text note into structured memos.

A single note may talk about several unrelated things. Split it into one memo per topic
and set "shouldSplit" to true when you return more than one memo.

Every memo has a "category", exactly one of: %s.
- "to buy" is anything the person wants to purchase.
- "media" is a movie, show, game, book, album or podcast to consume.
- "event" has a date or time but no action for the person to take.
- "other" is for anything that fits nowhere else.

Answer with one JSON object and nothing else:
{
  "shouldSplit": boolean,
  "memos": [
    {
      "transcriptExcerpt": string or null (the part of the note this memo covers, null if it is the whole note),
      "category": string,
      "confidence": number between 0 and 1,
      "extracted": {"title": string, "who": [string], "when": string, "where": string, "what": string},
      "tags": [string],
      "starred": boolean,
      "size": "S" | "M" | "L" | null (effort, only for todo, reminder, event and to buy)
    }
  ]
}
Omit extracted fields you cannot find.

Example note: "remind me to call mom on sunday and I need to buy milk and eggs"
Example answer:
{"shouldSplit": true, "memos": [
  {"transcriptExcerpt": "remind me to call mom on sunday", "category": "reminder", "confidence": 0.92,
   "extracted": {"title": "Call mom", "who": ["mom"], "when": "sunday", "what": "call mom"}, "tags": ["family"], "starred": false, "size": "S"},
  {"transcriptExcerpt": "I need to buy milk and eggs", "category": "to buy", "confidence": 0.95,
   "extracted": {"title": "Groceries", "what": "milk, eggs"}, "tags": ["groceries"], "starred": false, "size": "S"}
]}

Example note: "you have to watch Arrival, the Denis Villeneuve movie"
Example answer:
{"shouldSplit": false, "memos": [
  {"transcriptExcerpt": null, "category": "media", "confidence": 0.9,
   "extracted": {"title": "Arrival", "who": ["Denis Villeneuve"], "what": "movie"}, "tags": ["movie"], "starred": false, "size": null}
]}

Example note: "today was rough, I felt anxious all morning before the interview"
Example answer:
{"shouldSplit": false, "memos": [
  {"transcriptExcerpt": null, "category": "journal", "confidence": 0.85,
   "extracted": {"what": "interview day"}, "tags": ["work"], "starred": false, "size": null}
]}`

type understandingService struct {
	provider adapter.ModelProvider
	model    string

	logger *logger.Logger
}

func NewUnderstandingService(provider adapter.ModelProvider, router ModelRouter, logger *logger.Logger) UnderstandingService {
	return &understandingService{provider: provider, model: router.UnderstandingModel, logger: logger}
}

func (s *understandingService) Understand(ctx context.Context, transcript string, expectedCount int) (models.UnderstandingResult, error) {
	log := logger.FromContext(ctx)

	categories := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, strconv.Quote(string(c)))
	}

	user := "Note:\n" + transcript
	if expectedCount > 0 {
		user += fmt.Sprintf("\n\nThe person expects about %d separate memos in this note.", expectedCount)
	}

	raw, err := s.provider.Complete(ctx, adapter.ChatRequest{
		Model: s.model,
		Messages: []adapter.ChatMessage{
			{Role: "system", Text: fmt.Sprintf(understandingPrompt, strings.Join(categories, ", "))},
			{Role: "user", Text: user},
		},
		JSONResponse: true,
		Temperature:  &understandingTemperature,
		MaxTokens:    understandingMaxTokens,
	})
	if err != nil {
		log.Err(err).Str("func", "understandingService.Understand").Str("model", s.model).Msg("understanding request failed")
		return models.UnderstandingResult{}, fmt.Errorf("%w: understanding with %s: %w", ErrProvider, s.model, err)
	}

	result, err := ParseUnderstanding(raw)
	if err != nil {
		log.Err(err).Str("func", "understandingService.Understand").Str("model", s.model).Msg("cannot parse understanding output")
		return models.UnderstandingResult{}, fmt.Errorf("%w: understanding with %s: %w", ErrProvider, s.model, err)
	}

	log.Debug().Str("model", s.model).Int("memos", len(result.Memos)).Bool("should_split", result.ShouldSplit).Msg("transcript understood")
	return result, nil
}

type rawUnderstanding struct {
	ShouldSplit any              `json:"shouldSplit"`
	Memos       []map[string]any `json:"memos"`
}

// ParseUnderstanding decodes model output into a validated result. Categories
// outside the closed set become "other", confidence is clamped to [0,1] and
// defaults to 0.5, "who" and tags are always lists, and an empty memo list
// yields one low-confidence "other" memo.
func ParseUnderstanding(raw string) (models.UnderstandingResult, error) {
	body := stripCodeFence(raw)

	var parsed rawUnderstanding
	switch {
	case strings.HasPrefix(body, "["):
		if err := json.Unmarshal([]byte(body), &parsed.Memos); err != nil {
			return models.UnderstandingResult{}, fmt.Errorf("%w: %w", ErrMalformedModelOutput, err)
		}
	default:
		var object map[string]any
		if err := json.Unmarshal([]byte(body), &object); err != nil {
			return models.UnderstandingResult{}, fmt.Errorf("%w: %w", ErrMalformedModelOutput, err)
		}
		parsed.ShouldSplit = object["shouldSplit"]
		switch memos := object["memos"].(type) {
		case []any:
			for _, m := range memos {
				if fields, ok := m.(map[string]any); ok {
					parsed.Memos = append(parsed.Memos, fields)
				}
			}
		case nil:
			// a bare memo object
			if _, ok := object["category"]; ok {
				parsed.Memos = []map[string]any{object}
			}
		}
	}

	result := models.UnderstandingResult{Memos: make([]models.MemoDraft, 0, len(parsed.Memos))}
	for _, fields := range parsed.Memos {
		result.Memos = append(result.Memos, normalizeDraft(fields))
	}
	if len(result.Memos) == 0 {
		result.Memos = append(result.Memos, normalizeDraft(nil))
	}

	split, _ := parsed.ShouldSplit.(bool)
	result.ShouldSplit = split || len(result.Memos) > 1
	return result, nil
}

func normalizeDraft(fields map[string]any) models.MemoDraft {
	category := models.CategoryOther
	if s, ok := fields["category"].(string); ok {
		category = models.ParseCategory(s)
	}

	confidence := coerceConfidence(fields["confidence"])
	explicitReview, _ := fields["needsReview"].(bool)

	draft := models.MemoDraft{
		Category:    category,
		Confidence:  confidence,
		NeedsReview: explicitReview || confidence < models.NeedsReviewThreshold,
		Extracted:   coerceExtracted(fields["extracted"]),
		Tags:        coerceStringList(fields["tags"], false),
	}

	if excerpt, ok := fields["transcriptExcerpt"].(string); ok && strings.TrimSpace(excerpt) != "" {
		excerpt = strings.TrimSpace(excerpt)
		draft.TranscriptExcerpt = &excerpt
	}
	draft.Starred, _ = fields["starred"].(bool)
	if size, ok := fields["size"].(string); ok && category.IsActionable() {
		draft.Size = models.ParseSize(size)
	}
	return draft
}

func coerceConfidence(v any) float64 {
	var c float64
	switch value := v.(type) {
	case float64:
		c = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return defaultConfidence
		}
		c = parsed
	default:
		return defaultConfidence
	}
	if math.IsNaN(c) {
		return defaultConfidence
	}
	return math.Min(1, math.Max(0, c))
}

// coerceStringList keeps the string items of a JSON array. Scalars are wrapped
// only when wrapScalar is set; anything else yields an empty list.
func coerceStringList(v any, wrapScalar bool) []string {
	out := []string{}
	switch value := v.(type) {
	case []any:
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		if wrapScalar && strings.TrimSpace(value) != "" {
			out = append(out, strings.TrimSpace(value))
		}
	}
	return out
}

func coerceExtracted(v any) models.Extracted {
	fields, ok := v.(map[string]any)
	if !ok {
		return models.Extracted{}
	}
	extracted := make(models.Extracted, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		extracted[key] = value
	}
	if who, ok := extracted["who"]; ok {
		extracted["who"] = coerceStringList(who, true)
	}
	return extracted
}

// stripCodeFence removes a markdown code fence around model output.
func stripCodeFence(raw string) string {
	body := strings.TrimSpace(raw)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	body = strings.TrimPrefix(body, "```")
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
