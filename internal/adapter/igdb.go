package adapter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	ResolverIGDB = "igdb"

	igdbYearBonus  = 40
	igdbExactBonus = 60

	// tokenExpirySkew renews the access token this long before it expires.
	tokenExpirySkew = 60 * time.Second
)

type igdbResolver struct {
	client       *utils.HTTPClient
	tokenClient  *utils.HTTPClient
	tokenURL     string
	clientID     string
	clientSecret string

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
	now         func() time.Time

	logger *logger.Logger
}

// NewIGDBResolver builds the game [MediaResolver]. The Twitch access token is
// fetched lazily and cached until shortly before it expires.
func NewIGDBResolver(cfg config.IGDB, timeout time.Duration, logger *logger.Logger) (MediaResolver, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: igdb base url: %w", ErrInvalidAddress, err)
	}

	return &igdbResolver{
		client:       utils.NewHTTPClient(utils.WithBaseURL(baseURL), utils.WithTimeout(timeout)),
		tokenClient:  utils.NewHTTPClient(utils.WithTimeout(timeout)),
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (r *igdbResolver) Name() string { return ResolverIGDB }

type twitchToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// token returns the cached access token, refreshing it when it is missing or
// within tokenExpirySkew of expiry.
func (r *igdbResolver) token(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.accessToken != "" && r.now().Before(r.expiresAt) {
		return r.accessToken, nil
	}

	var tok twitchToken
	resp, err := r.tokenClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client_id":     r.clientID,
			"client_secret": r.clientSecret,
			"grant_type":    "client_credentials",
		}).
		SetResult(&tok).
		Post(r.tokenURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenRequest, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrTokenRequest)
	}

	r.accessToken = tok.AccessToken
	r.expiresAt = r.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySkew)
	return r.accessToken, nil
}

type igdbGame struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	FirstReleaseDate int64   `json:"first_release_date"`
	TotalRating      float64 `json:"total_rating"`
	Rating           float64 `json:"rating"`
	Summary          string  `json:"summary"`
	URL              string  `json:"url"`
	Cover            *struct {
		ImageID string `json:"image_id"`
	} `json:"cover"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

func (g igdbGame) year() *int {
	if g.FirstReleaseDate <= 0 {
		return nil
	}
	y := time.Unix(g.FirstReleaseDate, 0).UTC().Year()
	return &y
}

func (g igdbGame) rating() float64 {
	if g.TotalRating > 0 {
		return g.TotalRating
	}
	return g.Rating
}

type igdbTimeToBeat struct {
	GameID     int64 `json:"game_id"`
	Normally   int64 `json:"normally"`
	Hastily    int64 `json:"hastily"`
	Completely int64 `json:"completely"`
}

func (r *igdbResolver) Resolve(ctx context.Context, q models.MediaQuery) (*Resolution, error) {
	if r.clientID == "" || r.clientSecret == "" {
		return nil, fmt.Errorf("%w: igdb client credentials", ErrNotConfigured)
	}

	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"search %s; fields id,name,first_release_date,total_rating,rating,summary,url,cover.image_id,genres.name; limit 10;",
		strconv.Quote(q.Title),
	)

	var games []igdbGame
	resp, err := r.authed(ctx, token).
		SetBody(query).
		SetResult(&games).
		Post("/games")
	if err != nil {
		return nil, fmt.Errorf("igdb search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("igdb search: %w", err)
	}

	best, score, ok := pickIGDBGame(games, q)
	if !ok {
		return nil, nil
	}

	match := toIGDBMatch(best)
	if minutes, err := r.timeToBeat(ctx, token, best.ID); err != nil {
		r.logger.Err(err).Str("func", "igdbResolver.Resolve").Int64("igdb_id", best.ID).Msg("time to beat lookup failed")
	} else if minutes != nil {
		match.TimeToBeatMinutes = minutes
	}

	return &Resolution{Match: match, Score: score}, nil
}

func (r *igdbResolver) authed(ctx context.Context, token string) *resty.Request {
	return r.client.R().
		SetContext(ctx).
		SetHeader("Client-ID", r.clientID).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "text/plain")
}

// pickIGDBGame ranks games by year match, rating and exact name match; the
// highest score wins, earlier games win ties.
func pickIGDBGame(games []igdbGame, q models.MediaQuery) (igdbGame, float64, bool) {
	var (
		best      igdbGame
		bestScore float64
		found     bool
	)
	for _, g := range games {
		score := scoreIGDBGame(g, q)
		if !found || score > bestScore {
			best, bestScore, found = g, score, true
		}
	}
	return best, bestScore, found
}

func scoreIGDBGame(g igdbGame, q models.MediaQuery) float64 {
	score := g.rating()
	if q.Year != nil {
		if y := g.year(); y != nil && *y == *q.Year {
			score += igdbYearBonus
		}
	}
	if strings.EqualFold(strings.TrimSpace(g.Name), strings.TrimSpace(q.Title)) {
		score += igdbExactBonus
	}
	return score
}

func toIGDBMatch(g igdbGame) models.MediaMatch {
	name := g.Name
	mediaType := models.MediaGame
	source := ResolverIGDB
	id := strconv.FormatInt(g.ID, 10)

	match := models.MediaMatch{
		Title:           &name,
		AutoTitle:       &name,
		MediaType:       &mediaType,
		ReleaseYear:     g.year(),
		AutoReleaseYear: g.year(),
		ExternalSource:  &source,
		ExternalID:      &id,
	}
	if g.URL != "" {
		u := g.URL
		match.ExternalURL = &u
	}
	if g.Summary != "" {
		summary := g.Summary
		match.Overview = &summary
	}
	if g.Cover != nil && g.Cover.ImageID != "" {
		poster := "https://images.igdb.com/igdb/image/upload/t_cover_big/" + g.Cover.ImageID + ".jpg"
		match.PosterURL = &poster
	}
	if rating := g.rating(); rating > 0 {
		match.Rating = &rating
	}
	for _, genre := range g.Genres {
		if genre.Name != "" {
			match.Genres = append(match.Genres, genre.Name)
		}
	}
	return match
}

// timeToBeat returns the typical completion time in whole minutes, or nil
// when IGDB has no positive estimate.
func (r *igdbResolver) timeToBeat(ctx context.Context, token string, gameID int64) (*int, error) {
	var rows []igdbTimeToBeat
	resp, err := r.authed(ctx, token).
		SetBody(fmt.Sprintf("fields game_id,normally,hastily,completely; where game_id = %d;", gameID)).
		SetResult(&rows).
		Post("/game_time_to_beats")
	if err != nil {
		return nil, fmt.Errorf("igdb time to beat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("igdb time to beat: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	seconds := rows[0].Normally
	if seconds <= 0 {
		seconds = rows[0].Hastily
	}
	return secondsToMinutes(seconds), nil
}

func secondsToMinutes(seconds int64) *int {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes <= 0 {
		return nil
	}
	return &minutes
}
