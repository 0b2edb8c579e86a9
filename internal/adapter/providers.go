package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// Providers bundles every outbound client the server needs.
type Providers struct {
	Model        ModelProvider
	Movies       MediaResolver
	Games        MediaResolver
	Encyclopedia MediaResolver
}

// NewProviders builds all server-side clients from cfg. Missing credentials
// are not an error here; the affected client reports ErrNotConfigured when
// called.
func NewProviders(cfg config.Providers, logger *logger.Logger) (*Providers, error) {
	model, err := NewOpenAIProvider(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("model provider: %w", err)
	}
	movies, err := NewTMDBResolver(cfg.TMDB, cfg.ResolverTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("tmdb resolver: %w", err)
	}
	games, err := NewIGDBResolver(cfg.IGDB, cfg.ResolverTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("igdb resolver: %w", err)
	}
	encyclopedia, err := NewWikipediaResolver(cfg.Encyclopedia, cfg.ResolverTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("wikipedia resolver: %w", err)
	}

	return &Providers{
		Model:        model,
		Movies:       movies,
		Games:        games,
		Encyclopedia: encyclopedia,
	}, nil
}
