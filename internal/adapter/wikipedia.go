package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/heuristics"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const ResolverWikipedia = "wikipedia"

var yearPattern = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)

// wikipediaTypeWords narrow the search toward the expected kind of article.
var wikipediaTypeWords = map[models.MediaType]string{
	models.MediaMovie: "film",
	models.MediaTV:    "TV series",
	models.MediaGame:  "video game",
	models.MediaBook:  "novel",
	models.MediaMusic: "album",
}

// wikipediaDescriptionTypes maps article short descriptions to media types.
var wikipediaDescriptionTypes = heuristics.Table{
	{Label: string(models.MediaGame), Keywords: []string{"video game"}},
	{Label: string(models.MediaTV), Keywords: []string{"television series", "tv series", "miniseries", "sitcom", "anime series"}},
	{Label: string(models.MediaMovie), Keywords: []string{"film", "movie"}},
	{Label: string(models.MediaMusic), Keywords: []string{"album", "song", "single", "podcast"}},
	{Label: string(models.MediaBook), Keywords: []string{"novel", "book", "novella", "memoir"}},
}

type wikipediaResolver struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewWikipediaResolver builds the encyclopedia fallback [MediaResolver].
func NewWikipediaResolver(cfg config.Encyclopedia, timeout time.Duration, logger *logger.Logger) (MediaResolver, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: encyclopedia base url: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
		utils.WithUserAgent(cfg.UserAgent),
	)

	return &wikipediaResolver{client: client, logger: logger}, nil
}

func (r *wikipediaResolver) Name() string { return ResolverWikipedia }

type wikipediaSearchResponse struct {
	Query struct {
		Search []struct {
			Title  string `json:"title"`
			PageID int64  `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

type wikipediaSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	Thumbnail   *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func (r *wikipediaResolver) Resolve(ctx context.Context, q models.MediaQuery) (*Resolution, error) {
	var search wikipediaSearchResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":   "query",
			"list":     "search",
			"srsearch": wikipediaSearchTerm(q),
			"srlimit":  "5",
			"format":   "json",
		}).
		SetResult(&search).
		Get("/w/api.php")
	if err != nil {
		return nil, fmt.Errorf("wikipedia search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("wikipedia search: %w", err)
	}
	if len(search.Query.Search) == 0 {
		return nil, nil
	}

	page := search.Query.Search[0]
	var summary wikipediaSummary
	resp, err = r.client.R().
		SetContext(ctx).
		SetPathParam("title", strings.ReplaceAll(page.Title, " ", "_")).
		SetResult(&summary).
		Get("/api/rest_v1/page/summary/{title}")
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("wikipedia summary: %w", err)
	}
	if summary.Title == "" {
		summary.Title = page.Title
	}

	return &Resolution{Match: toWikipediaMatch(summary, page.PageID, q), Score: 1}, nil
}

func wikipediaSearchTerm(q models.MediaQuery) string {
	parts := []string{q.Title}
	if q.Year != nil {
		parts = append(parts, strconv.Itoa(*q.Year))
	}
	if word, ok := wikipediaTypeWords[q.Type]; ok {
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

func toWikipediaMatch(s wikipediaSummary, pageID int64, q models.MediaQuery) models.MediaMatch {
	title := stripDisambiguation(s.Title)
	source := ResolverWikipedia
	id := strconv.FormatInt(pageID, 10)

	match := models.MediaMatch{
		Title:          &title,
		AutoTitle:      &title,
		ExternalSource: &source,
		ExternalID:     &id,
	}

	if label, ok := wikipediaDescriptionTypes.Match(s.Description); ok {
		mediaType := models.MediaType(label)
		match.MediaType = &mediaType
	} else if q.Type != models.MediaUnknown && q.Type != "" {
		mediaType := q.Type
		match.MediaType = &mediaType
	}

	if year := yearFromText(s.Description); year != nil {
		match.ReleaseYear = year
		match.AutoReleaseYear = year
	} else if q.Year != nil {
		year := *q.Year
		match.ReleaseYear = &year
	}

	if s.Extract != "" {
		extract := s.Extract
		match.Overview = &extract
	}
	if s.Thumbnail != nil && s.Thumbnail.Source != "" {
		poster := s.Thumbnail.Source
		match.PosterURL = &poster
	}
	if s.ContentURLs.Desktop.Page != "" {
		page := s.ContentURLs.Desktop.Page
		match.ExternalURL = &page
	}
	return match
}

// stripDisambiguation turns "Dune (2021 film)" into "Dune".
func stripDisambiguation(title string) string {
	if i := strings.LastIndex(title, " ("); i > 0 && strings.HasSuffix(title, ")") {
		return title[:i]
	}
	return title
}

func yearFromText(text string) *int {
	m := yearPattern.FindString(text)
	if m == "" {
		return nil
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &y
}
