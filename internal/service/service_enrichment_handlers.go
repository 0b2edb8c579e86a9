package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-memo-keeper/internal/heuristics"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const excerptTitleLength = 80

var titleKeys = []string{"title", "name", "what"}

// titleOverrideKey is the extracted key that wins the title cascade.
const titleOverrideKey = "titleOverride"

// dueLayouts are the absolute date formats a "when" value may carry.
var dueLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// pickTitle applies the title cascade: override, extracted keys in order,
// the excerpt, then placeholder.
func pickTitle(override string, extracted models.Extracted, keys []string, excerpt, placeholder string) string {
	if title := strings.TrimSpace(override); title != "" {
		return title
	}
	if title := extracted.FirstString(keys...); title != "" {
		return title
	}
	if title := excerptTitle(excerpt); title != "" {
		return title
	}
	return placeholder
}

// excerptTitle is the first line of text, cut to excerptTitleLength runes.
func excerptTitle(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "\n.!?"); i > 0 {
		text = text[:i]
	}
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) > excerptTitleLength {
		text = strings.TrimSpace(string([]rune(text)[:excerptTitleLength])) + "…"
	}
	return text
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDueAt(when string) *time.Time {
	when = strings.TrimSpace(when)
	for _, layout := range dueLayouts {
		if t, err := time.Parse(layout, when); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// dedupeFold keeps the first spelling of each value, ignoring case.
func dedupeFold(values ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range values {
		for _, v := range list {
			v = strings.TrimSpace(v)
			key := strings.ToLower(v)
			if v == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func checkTask(kind models.EnrichmentKind, task models.EnrichmentTask) error {
	if task.Kind != kind {
		return fmt.Errorf("%w: %s handler got %s", ErrTaskKindMismatch, kind, task.Kind)
	}
	return task.Validate()
}

// ── reminder ──

type reminderHandler struct {
	logger *logger.Logger
}

func NewReminderHandler(logger *logger.Logger) EnrichmentHandler {
	return &reminderHandler{logger: logger}
}

func (h *reminderHandler) Kind() models.EnrichmentKind { return models.KindReminder }

func (h *reminderHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p, hints := task.Payload, task.Reminder

	title := pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, []string{"title", "what"}, firstNonEmpty(hints.What, p.TranscriptExcerpt), "Untitled reminder")
	draft := models.ReminderDraft{
		MemoID:      p.MemoID,
		Username:    p.Username,
		Title:       title,
		DueText:     optionalString(hints.When),
		DueAt:       parseDueAt(hints.When),
		Priority:    firstNonEmpty(hints.Priority, defaultPriority),
		Recurrence:  optionalString(hints.Recurrence),
		IsRecurring: hints.IsRecurring,
	}
	if p.TranscriptExcerpt != title {
		draft.Notes = optionalString(p.TranscriptExcerpt)
	}
	return models.Completed(h.Kind(), draft, p), nil
}

// ── todo ──

type todoHandler struct {
	logger *logger.Logger
}

func NewTodoHandler(logger *logger.Logger) EnrichmentHandler {
	return &todoHandler{logger: logger}
}

func (h *todoHandler) Kind() models.EnrichmentKind { return models.KindTodo }

func (h *todoHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p, hints := task.Payload, task.Reminder

	draft := models.TodoItemDraft{
		MemoID:      p.MemoID,
		Username:    p.Username,
		Title:       pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, []string{"title", "what"}, firstNonEmpty(hints.What, p.TranscriptExcerpt), "Untitled task"),
		Priority:    firstNonEmpty(hints.Priority, defaultPriority),
		Size:        todoSize(p),
		DueText:     optionalString(hints.When),
		DueAt:       parseDueAt(hints.When),
		Recurrence:  optionalString(hints.Recurrence),
		IsRecurring: hints.IsRecurring,
	}
	return models.Completed(h.Kind(), draft, p), nil
}

// todoSize prefers the size the understanding step put on the memo and
// falls back to an extracted "size" value.
func todoSize(p models.EnrichmentPayload) *models.Size {
	if p.Size != nil {
		size := *p.Size
		return &size
	}
	return models.ParseSize(p.Extracted.String("size"))
}

// ── shopping ──

type shoppingHandler struct {
	logger *logger.Logger
}

func NewShoppingHandler(logger *logger.Logger) EnrichmentHandler {
	return &shoppingHandler{logger: logger}
}

func (h *shoppingHandler) Kind() models.EnrichmentKind { return models.KindShopping }

func (h *shoppingHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p := task.Payload

	items := dedupeFold(task.Shopping.Items)
	if len(items) == 0 {
		return models.Skipped(h.Kind(), p, "no shopping items found"), nil
	}

	draft := models.ShoppingListItemDraft{
		MemoID:   p.MemoID,
		Username: p.Username,
		Title:    pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, []string{"title"}, "", "Shopping list"),
		Items:    items,
		Store:    optionalString(p.Extracted.FirstString("store", "where")),
	}
	return models.Completed(h.Kind(), draft, p), nil
}

// ── journal ──

type journalHandler struct {
	logger *logger.Logger
}

func NewJournalHandler(logger *logger.Logger) EnrichmentHandler {
	return &journalHandler{logger: logger}
}

func (h *journalHandler) Kind() models.EnrichmentKind { return models.KindJournal }

func (h *journalHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p := task.Payload

	draft := models.JournalItemDraft{
		MemoID:   p.MemoID,
		Username: p.Username,
		Title:    pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, []string{"title"}, p.TranscriptExcerpt, "Untitled entry"),
		Body:     strings.TrimSpace(p.TranscriptExcerpt),
		Themes:   dedupeFold(p.Tags, p.Extracted.Who(), p.Extracted.Strings("where")),
	}
	if mood, ok := heuristics.Moods.Match(append([]string{p.TranscriptExcerpt}, p.Tags...)...); ok {
		draft.Mood = &mood
	}
	return models.Completed(h.Kind(), draft, p), nil
}

// ── tarot ──

type tarotHandler struct {
	logger *logger.Logger
}

func NewTarotHandler(logger *logger.Logger) EnrichmentHandler {
	return &tarotHandler{logger: logger}
}

func (h *tarotHandler) Kind() models.EnrichmentKind { return models.KindTarot }

func (h *tarotHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p := task.Payload

	card, ok := heuristics.ParseTarotCard(strings.Join(append([]string{p.TranscriptExcerpt}, p.Extracted.Values()...), "\n"))
	if !ok {
		return models.Skipped(h.Kind(), p, "no tarot card recognized"), nil
	}

	draft := models.TarotItemDraft{
		MemoID:   p.MemoID,
		Username: p.Username,
		Title:    pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, []string{"title"}, "", card.Name),
		CardName: card.Name,
		Arcana:   card.Arcana,
		Suit:     optionalString(card.Suit),
		Rank:     optionalString(card.Rank),
		Reversed: card.Reversed,
		Notes:    strings.TrimSpace(p.TranscriptExcerpt),
	}
	return models.Completed(h.Kind(), draft, p), nil
}

// ── idea ──

type ideaHandler struct {
	logger *logger.Logger
}

func NewIdeaHandler(logger *logger.Logger) EnrichmentHandler {
	return &ideaHandler{logger: logger}
}

func (h *ideaHandler) Kind() models.EnrichmentKind { return models.KindIdea }

func (h *ideaHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p := task.Payload

	draft := models.IdeaItemDraft{
		MemoID:   p.MemoID,
		Username: p.Username,
		Title:    pickTitle(p.Extracted.String(titleOverrideKey), p.Extracted, titleKeys, p.TranscriptExcerpt, "Untitled idea"),
		Summary:  firstNonEmpty(p.Extracted.FirstString("summary", "what"), strings.TrimSpace(p.TranscriptExcerpt)),
		Tags:     dedupeFold(p.Tags),
	}
	if category, ok := heuristics.IdeaCategories.Match(append([]string{p.TranscriptExcerpt}, p.Tags...)...); ok {
		draft.IdeaCategory = &category
	}
	return models.Completed(h.Kind(), draft, p), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
