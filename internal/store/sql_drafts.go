package store

import (
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// Category tables, one per enrichment kind.
const (
	tableMediaItems        = "media_items"
	tableReminders         = "reminders"
	tableShoppingListItems = "shopping_list_items"
	tableTodoItems         = "todo_items"
	tableJournalItems      = "journal_items"
	tableTarotItems        = "tarot_items"
	tableIdeaItems         = "idea_items"
)

// draftRow is a draft flattened into the columns of its category table.
type draftRow struct {
	table   string
	columns []string
	values  []any
}

// draftToRow maps a draft onto its table. id is used only when the row is
// inserted for the first time.
func draftToRow(draft models.Draft, id string) (draftRow, error) {
	switch d := draft.(type) {
	case *models.MediaItemDraft:
		return draftToRow(*d, id)
	case *models.ReminderDraft:
		return draftToRow(*d, id)
	case *models.ShoppingListItemDraft:
		return draftToRow(*d, id)
	case *models.TodoItemDraft:
		return draftToRow(*d, id)
	case *models.JournalItemDraft:
		return draftToRow(*d, id)
	case *models.TarotItemDraft:
		return draftToRow(*d, id)
	case *models.IdeaItemDraft:
		return draftToRow(*d, id)

	case models.MediaItemDraft:
		genres, err := encodeJSON(d.Genres, "[]")
		if err != nil {
			return draftRow{}, err
		}
		debug, err := encodeJSON(d.SearchDebug, "{}")
		if err != nil {
			return draftRow{}, err
		}
		return draftRow{
			table: tableMediaItems,
			columns: []string{
				"id", "memo_id", "username", "title", "media_type", "release_year",
				"auto_title", "auto_release_year", "overview", "poster_url", "genres",
				"runtime_minutes", "rating", "time_to_beat_minutes", "external_source",
				"external_id", "external_url", "search_debug",
			},
			values: []any{
				id, d.MemoID, d.Username, d.Title, string(d.MediaType), nullable(d.ReleaseYear),
				nullable(d.AutoTitle), nullable(d.AutoReleaseYear), nullable(d.Overview), nullable(d.PosterURL), genres,
				nullable(d.RuntimeMinutes), nullable(d.Rating), nullable(d.TimeToBeatMinutes), nullable(d.ExternalSource),
				nullable(d.ExternalID), nullable(d.ExternalURL), debug,
			},
		}, nil

	case models.ReminderDraft:
		return draftRow{
			table: tableReminders,
			columns: []string{
				"id", "memo_id", "username", "title", "due_text", "due_at",
				"priority", "recurrence", "is_recurring", "notes",
			},
			values: []any{
				id, d.MemoID, d.Username, d.Title, nullable(d.DueText), nullable(d.DueAt),
				d.Priority, nullable(d.Recurrence), d.IsRecurring, nullable(d.Notes),
			},
		}, nil

	case models.ShoppingListItemDraft:
		items, err := encodeJSON(d.Items, "[]")
		if err != nil {
			return draftRow{}, err
		}
		return draftRow{
			table:   tableShoppingListItems,
			columns: []string{"id", "memo_id", "username", "title", "items", "store"},
			values:  []any{id, d.MemoID, d.Username, d.Title, items, nullable(d.Store)},
		}, nil

	case models.TodoItemDraft:
		var size any
		if d.Size != nil {
			size = string(*d.Size)
		}
		return draftRow{
			table: tableTodoItems,
			columns: []string{
				"id", "memo_id", "username", "title", "priority", "size",
				"due_text", "due_at", "recurrence", "is_recurring", "completed",
			},
			values: []any{
				id, d.MemoID, d.Username, d.Title, d.Priority, size,
				nullable(d.DueText), nullable(d.DueAt), nullable(d.Recurrence), d.IsRecurring, d.Completed,
			},
		}, nil

	case models.JournalItemDraft:
		themes, err := encodeJSON(d.Themes, "[]")
		if err != nil {
			return draftRow{}, err
		}
		return draftRow{
			table:   tableJournalItems,
			columns: []string{"id", "memo_id", "username", "title", "body", "mood", "themes"},
			values:  []any{id, d.MemoID, d.Username, d.Title, d.Body, nullable(d.Mood), themes},
		}, nil

	case models.TarotItemDraft:
		return draftRow{
			table: tableTarotItems,
			columns: []string{
				"id", "memo_id", "username", "title", "card_name", "arcana",
				"suit", "rank", "reversed", "notes",
			},
			values: []any{
				id, d.MemoID, d.Username, d.Title, d.CardName, string(d.Arcana),
				nullable(d.Suit), nullable(d.Rank), d.Reversed, d.Notes,
			},
		}, nil

	case models.IdeaItemDraft:
		tags, err := encodeJSON(d.Tags, "[]")
		if err != nil {
			return draftRow{}, err
		}
		return draftRow{
			table:   tableIdeaItems,
			columns: []string{"id", "memo_id", "username", "title", "summary", "idea_category", "tags"},
			values:  []any{id, d.MemoID, d.Username, d.Title, d.Summary, nullable(d.IdeaCategory), tags},
		}, nil
	}

	return draftRow{}, fmt.Errorf("%w: %T", ErrUnsupportedDraft, draft)
}
