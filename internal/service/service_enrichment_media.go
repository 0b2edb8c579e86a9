package service

import (
	"context"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const untitledMedia = "Untitled media"

type mediaHandler struct {
	movies       adapter.MediaResolver
	games        adapter.MediaResolver
	encyclopedia adapter.MediaResolver

	logger *logger.Logger
}

// NewMediaHandler builds the media handler. Any resolver may be nil, in which
// case it is left out of the cascade.
func NewMediaHandler(movies, games, encyclopedia adapter.MediaResolver, logger *logger.Logger) EnrichmentHandler {
	return &mediaHandler{
		movies:       movies,
		games:        games,
		encyclopedia: encyclopedia,
		logger:       logger,
	}
}

func (h *mediaHandler) Kind() models.EnrichmentKind { return models.KindMedia }

// resolvers returns the lookup order for t. Games try the game source first;
// everything else ends with it as a last resort.
func (h *mediaHandler) resolvers(t models.MediaType) []adapter.MediaResolver {
	var order []adapter.MediaResolver
	if t == models.MediaGame {
		order = []adapter.MediaResolver{h.games, h.movies, h.encyclopedia}
	} else {
		order = []adapter.MediaResolver{h.movies, h.encyclopedia, h.games}
	}

	out := order[:0]
	for _, r := range order {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (h *mediaHandler) Handle(ctx context.Context, task models.EnrichmentTask) (models.EnrichmentJobResult, error) {
	if err := checkTask(h.Kind(), task); err != nil {
		return models.EnrichmentJobResult{}, err
	}
	p, hints := task.Payload, task.Media

	query := models.MediaQuery{
		Title: firstNonEmpty(hints.TitleOverride, hints.ProbableTitle),
		Year:  hints.ProbableYear,
		Type:  hints.ProbableType,
	}
	if query.Type == "" {
		query.Type = models.MediaUnknown
	}

	debug := models.SearchDebug{Query: query.Title, Year: query.Year, Type: query.Type, Attempts: []models.ResolverAttempt{}}
	var resolved models.MediaMatch
	if query.Title != "" {
		resolved = h.resolve(ctx, p.MemoID, query, &debug)
	}

	var override models.MediaMatch
	if title := optionalString(hints.TitleOverride); title != nil {
		override.Title = title
	}
	fallback := models.MediaMatch{
		Title:       optionalString(pickTitle(hints.ProbableTitle, p.Extracted, titleKeys, p.TranscriptExcerpt, untitledMedia)),
		MediaType:   &query.Type,
		ReleaseYear: query.Year,
	}
	match := models.MergeMediaMatches(override, resolved, fallback)

	draft := models.MediaItemDraft{
		MemoID:            p.MemoID,
		Username:          p.Username,
		Title:             untitledMedia,
		MediaType:         models.MediaUnknown,
		ReleaseYear:       match.ReleaseYear,
		AutoTitle:         match.AutoTitle,
		AutoReleaseYear:   match.AutoReleaseYear,
		Overview:          match.Overview,
		PosterURL:         match.PosterURL,
		Genres:            match.Genres,
		RuntimeMinutes:    match.RuntimeMinutes,
		Rating:            match.Rating,
		TimeToBeatMinutes: match.TimeToBeatMinutes,
		ExternalSource:    match.ExternalSource,
		ExternalID:        match.ExternalID,
		ExternalURL:       match.ExternalURL,
		SearchDebug:       debug,
	}
	if match.Title != nil {
		draft.Title = *match.Title
	}
	if match.MediaType != nil {
		draft.MediaType = *match.MediaType
	}
	if draft.Genres == nil {
		draft.Genres = []string{}
	}

	return models.Completed(h.Kind(), draft, p), nil
}

// resolve walks the resolver cascade and stops at the first match. Resolver
// errors count as no match and are kept in debug.
func (h *mediaHandler) resolve(ctx context.Context, memoID string, q models.MediaQuery, debug *models.SearchDebug) models.MediaMatch {
	log := logger.FromContext(ctx)

	for _, r := range h.resolvers(q.Type) {
		attempt := models.ResolverAttempt{Resolver: r.Name()}

		res, err := r.Resolve(ctx, q)
		switch {
		case err != nil:
			attempt.Error = err.Error()
			log.Warn().Err(err).
				Str("func", "mediaHandler.resolve").
				Str("resolver", r.Name()).
				Str("memo_id", memoID).
				Str("task_type", string(models.KindMedia)).
				Msg("media resolver failed, treating as no match")
		case res != nil:
			attempt.Matched = true
			attempt.Score = res.Score
		}
		debug.Attempts = append(debug.Attempts, attempt)

		if attempt.Matched {
			debug.MatchedBy = r.Name()
			return res.Match
		}
	}
	return models.MediaMatch{}
}
