package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/heuristics"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/metrics"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const defaultPriority = "medium"

var plannerYear = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)

// mediaTitleKeys are tried in order when picking a media title candidate.
var mediaTitleKeys = []string{"title", "name", "what"}

type enrichmentPlanner struct {
	logger *logger.Logger
}

func NewEnrichmentPlanner(logger *logger.Logger) EnrichmentPlanner {
	return &enrichmentPlanner{logger: logger}
}

// Plan emits at most one task per memo. Archived memos never get a task and
// memos matching no route are skipped silently, apart from a counter.
func (p *enrichmentPlanner) Plan(ctx context.Context, receipt models.CaptureReceipt, transcriptionID string, memos []models.Memo) []models.EnrichmentTask {
	log := logger.FromContext(ctx)

	tasks := make([]models.EnrichmentTask, 0, len(memos))
	for _, memo := range memos {
		if memo.IsArchived() {
			continue
		}

		task, ok := p.planMemo(receipt, transcriptionID, memo)
		if !ok {
			metrics.PlannerSkipped.Add(1)
			log.Debug().Str("memo_id", memo.ID).Str("category", string(memo.Category)).Msg("no enrichment route for memo")
			continue
		}

		metrics.TasksPlanned.Add(string(task.Kind), 1)
		tasks = append(tasks, task)
	}
	return tasks
}

func (p *enrichmentPlanner) planMemo(receipt models.CaptureReceipt, transcriptionID string, memo models.Memo) (models.EnrichmentTask, bool) {
	payload := basePayload(receipt, transcriptionID, memo)

	if hints, ok := planMedia(memo); ok {
		return models.EnrichmentTask{Kind: models.KindMedia, Payload: payload, Media: hints}, true
	}

	switch memo.Category {
	case models.CategoryTodo:
		return models.EnrichmentTask{Kind: models.KindTodo, Payload: payload, Reminder: planReminder(memo)}, true
	case models.CategoryReminder, models.CategoryEvent:
		return models.EnrichmentTask{Kind: models.KindReminder, Payload: payload, Reminder: planReminder(memo)}, true
	case models.CategoryToBuy:
		return models.EnrichmentTask{Kind: models.KindShopping, Payload: payload, Shopping: planShopping(memo)}, true
	case models.CategoryJournal:
		return models.EnrichmentTask{Kind: models.KindJournal, Payload: payload}, true
	case models.CategoryTarot:
		return models.EnrichmentTask{Kind: models.KindTarot, Payload: payload}, true
	case models.CategoryIdea:
		return models.EnrichmentTask{Kind: models.KindIdea, Payload: payload}, true
	}
	return models.EnrichmentTask{}, false
}

func basePayload(receipt models.CaptureReceipt, transcriptionID string, memo models.Memo) models.EnrichmentPayload {
	username := memo.Username
	if username == "" {
		username = receipt.Username
	}
	tags := memo.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.EnrichmentPayload{
		TranscriptionID:   transcriptionID,
		Username:          username,
		MemoID:            memo.ID,
		Category:          memo.Category,
		Tags:              tags,
		Extracted:         memo.Extracted,
		TranscriptExcerpt: memo.Text(),
		Size:              memo.Size,
	}
}

// planMedia returns hints when the memo is about a title to consume. Memos
// that mention a place are rejected, as are memos without a usable title.
func planMedia(memo models.Memo) (*models.MediaHints, bool) {
	texts := memoTexts(memo)
	inferred := heuristics.InferMediaType(texts...)

	switch {
	case memo.Category == models.CategoryMedia:
	case memo.Category == models.CategoryOther && inferred != models.MediaUnknown:
	default:
		return nil, false
	}

	if heuristics.ContainsAny(strings.Join(texts, " \n "), heuristics.LocationKeywords) {
		return nil, false
	}

	title, ok := mediaTitleCandidate(memo)
	if !ok {
		return nil, false
	}

	hints := &models.MediaHints{
		ProbableTitle: title,
		ProbableYear:  probableYear(memo),
		ProbableType:  inferred,
		TitleOverride: memo.Extracted.String(titleOverrideKey),
	}
	if t := models.ParseMediaType(memo.Extracted.String("mediaType")); t != models.MediaUnknown {
		hints.ProbableType = t
	}
	return hints, true
}

func memoTexts(memo models.Memo) []string {
	texts := make([]string, 0, len(memo.Tags)+len(memo.Extracted)+1)
	texts = append(texts, memo.Tags...)
	texts = append(texts, memo.Text())
	texts = append(texts, memo.Extracted.Values()...)
	return texts
}

// mediaTitleCandidate tries extracted title fields, then tags, then the
// memo text and returns the first one that survives sanitizing.
func mediaTitleCandidate(memo models.Memo) (string, bool) {
	candidates := make([]string, 0, len(mediaTitleKeys)+len(memo.Tags)+1)
	for _, key := range mediaTitleKeys {
		candidates = append(candidates, memo.Extracted.String(key))
	}
	candidates = append(candidates, memo.Tags...)
	candidates = append(candidates, memo.Text())

	for _, candidate := range candidates {
		if title, ok := heuristics.SanitizeTitle(candidate); ok {
			return title, true
		}
	}
	return "", false
}

func probableYear(memo models.Memo) *int {
	for _, text := range []string{memo.Extracted.String("year"), memo.Extracted.String("when"), memo.Text()} {
		if m := plannerYear.FindString(text); m != "" {
			if y, err := strconv.Atoi(m); err == nil {
				return &y
			}
		}
	}
	return nil
}

func planReminder(memo models.Memo) *models.ReminderHints {
	text := memo.Text()

	hints := &models.ReminderHints{
		When:       memo.Extracted.FirstString("when", "date", "time"),
		What:       memo.Extracted.FirstString("what", "title"),
		Priority:   strings.ToLower(memo.Extracted.String("priority")),
		Recurrence: strings.ToLower(memo.Extracted.String("recurrence")),
	}
	if hints.What == "" {
		hints.What = strings.TrimSpace(text)
	}
	if hints.Priority == "" {
		if label, ok := heuristics.Priorities.Match(text); ok {
			hints.Priority = label
		} else {
			hints.Priority = defaultPriority
		}
	}
	if hints.Recurrence == "" {
		if label, ok := heuristics.DetectRecurrence(text, hints.When); ok {
			hints.Recurrence = label
		}
	}
	hints.IsRecurring = hints.Recurrence != ""
	return hints
}

// planShopping parses items out of the memo text, falling back to the
// extracted item list.
func planShopping(memo models.Memo) *models.ShoppingHints {
	items := heuristics.ParseShoppingItems(memo.Text())
	if len(items) == 0 {
		for _, key := range []string{"items", "what"} {
			for _, raw := range memo.Extracted.Strings(key) {
				items = append(items, heuristics.ParseShoppingItems(raw)...)
			}
			if len(items) > 0 {
				break
			}
		}
	}
	if items == nil {
		items = []string{}
	}
	return &models.ShoppingHints{Items: items}
}
