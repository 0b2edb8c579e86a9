package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	ResolverTMDB = "tmdb"

	tmdbTypeBonus = 50
	tmdbYearBonus = 25
)

type tmdbResolver struct {
	client       *utils.HTTPClient
	token        string
	imageBaseURL string

	logger *logger.Logger
}

// NewTMDBResolver builds the movie/TV [MediaResolver].
func NewTMDBResolver(cfg config.TMDB, timeout time.Duration, logger *logger.Logger) (MediaResolver, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: tmdb base url: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
		utils.WithBearerToken(cfg.Token),
	)

	return &tmdbResolver{
		client:       client,
		token:        cfg.Token,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		logger:       logger,
	}, nil
}

func (r *tmdbResolver) Name() string { return ResolverTMDB }

type tmdbSearchHit struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

func (h tmdbSearchHit) displayTitle() string {
	if h.Title != "" {
		return h.Title
	}
	return h.Name
}

func (h tmdbSearchHit) year() *int {
	date := h.ReleaseDate
	if date == "" {
		date = h.FirstAirDate
	}
	return yearFromDate(date)
}

func (h tmdbSearchHit) mediaType() models.MediaType {
	if h.MediaType == "tv" {
		return models.MediaTV
	}
	return models.MediaMovie
}

type tmdbSearchResponse struct {
	Results []tmdbSearchHit `json:"results"`
}

type tmdbGenre struct {
	Name string `json:"name"`
}

type tmdbDetails struct {
	Runtime        int         `json:"runtime"`
	EpisodeRunTime []int       `json:"episode_run_time"`
	Genres         []tmdbGenre `json:"genres"`
}

func (r *tmdbResolver) Resolve(ctx context.Context, q models.MediaQuery) (*Resolution, error) {
	if r.token == "" {
		return nil, fmt.Errorf("%w: tmdb token", ErrNotConfigured)
	}

	var search tmdbSearchResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":         q.Title,
			"include_adult": "false",
			"page":          "1",
		}).
		SetResult(&search).
		Get("/search/multi")
	if err != nil {
		return nil, fmt.Errorf("tmdb search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}

	best, score, ok := pickTMDBHit(search.Results, q)
	if !ok {
		return nil, nil
	}

	match := r.toMatch(best)
	if details, err := r.details(ctx, best); err != nil {
		r.logger.Err(err).Str("func", "tmdbResolver.Resolve").Int64("tmdb_id", best.ID).Msg("tmdb details lookup failed, keeping search hit")
	} else {
		match = models.MergeMediaMatches(match, details)
	}

	return &Resolution{Match: match, Score: score}, nil
}

// pickTMDBHit ranks movie and tv hits by popularity plus type and year
// bonuses; the highest score wins, earlier hits win ties.
func pickTMDBHit(hits []tmdbSearchHit, q models.MediaQuery) (tmdbSearchHit, float64, bool) {
	var (
		best      tmdbSearchHit
		bestScore float64
		found     bool
	)
	for _, hit := range hits {
		if hit.MediaType != "movie" && hit.MediaType != "tv" {
			continue
		}
		score := scoreTMDBHit(hit, q)
		if !found || score > bestScore {
			best, bestScore, found = hit, score, true
		}
	}
	return best, bestScore, found
}

func scoreTMDBHit(hit tmdbSearchHit, q models.MediaQuery) float64 {
	score := hit.Popularity
	if hit.mediaType() == q.Type {
		score += tmdbTypeBonus
	}
	if q.Year != nil {
		if y := hit.year(); y != nil && *y == *q.Year {
			score += tmdbYearBonus
		}
	}
	return score
}

func (r *tmdbResolver) toMatch(hit tmdbSearchHit) models.MediaMatch {
	title := hit.displayTitle()
	mediaType := hit.mediaType()
	source := ResolverTMDB
	id := strconv.FormatInt(hit.ID, 10)
	url := fmt.Sprintf("https://www.themoviedb.org/%s/%s", hit.MediaType, id)

	match := models.MediaMatch{
		Title:           &title,
		AutoTitle:       &title,
		MediaType:       &mediaType,
		ReleaseYear:     hit.year(),
		AutoReleaseYear: hit.year(),
		ExternalSource:  &source,
		ExternalID:      &id,
		ExternalURL:     &url,
	}
	if hit.Overview != "" {
		overview := hit.Overview
		match.Overview = &overview
	}
	if hit.PosterPath != "" && r.imageBaseURL != "" {
		poster := r.imageBaseURL + hit.PosterPath
		match.PosterURL = &poster
	}
	if hit.VoteAverage > 0 {
		rating := hit.VoteAverage
		match.Rating = &rating
	}
	return match
}

func (r *tmdbResolver) details(ctx context.Context, hit tmdbSearchHit) (models.MediaMatch, error) {
	var details tmdbDetails
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"kind": hit.MediaType, "id": strconv.FormatInt(hit.ID, 10)}).
		SetResult(&details).
		Get("/{kind}/{id}")
	if err != nil {
		return models.MediaMatch{}, fmt.Errorf("tmdb details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaMatch{}, fmt.Errorf("tmdb details: %w", err)
	}

	var match models.MediaMatch
	runtime := details.Runtime
	if runtime <= 0 && len(details.EpisodeRunTime) > 0 {
		runtime = details.EpisodeRunTime[0]
	}
	if runtime > 0 {
		match.RuntimeMinutes = &runtime
	}
	for _, g := range details.Genres {
		if g.Name != "" {
			match.Genres = append(match.Genres, g.Name)
		}
	}
	return match, nil
}

// yearFromDate extracts the year of a "YYYY-MM-DD" date.
func yearFromDate(date string) *int {
	if len(date) < 4 {
		return nil
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil || y <= 0 {
		return nil
	}
	return &y
}
