// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Dispatch modes for enrichment tasks.
const (
	DispatchImmediate = "immediate"
	DispatchLog       = "log"
)

// StructuredConfig is the top-level configuration container for the
// go-memo-keeper server. It is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the capture client that talks to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Providers holds endpoints and credentials of external model and
	// metadata services.
	Providers Providers `envPrefix:"PROVIDERS_"`

	// Workers holds enrichment fan-out and queue polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DispatchMode selects how enrichment tasks run: "immediate" runs them
	// inside the capture request, "log" stores them for the queue worker.
	// Env: APP_DISPATCH_MODE
	DispatchMode string `env:"DISPATCH_MODE"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single capture request including enrichment
	// in immediate mode.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadBytes limits the request body of a capture submission.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Adapter holds the settings of the HTTP client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base URL of the capture server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one upload attempt.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxAttempts is the total number of upload attempts, first included.
	// Env: ADAPTER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// RetryDelay is the fixed pause between attempts.
	// Env: ADAPTER_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`
}

// Providers groups external service settings.
type Providers struct {
	// ResolverTimeout bounds one metadata lookup against TMDB, IGDB or the
	// encyclopedia.
	// Env: PROVIDERS_RESOLVER_TIMEOUT
	ResolverTimeout time.Duration `env:"RESOLVER_TIMEOUT"`

	LLM          LLM          `envPrefix:"LLM_"`
	TMDB         TMDB         `envPrefix:"TMDB_"`
	IGDB         IGDB         `envPrefix:"IGDB_"`
	Encyclopedia Encyclopedia `envPrefix:"ENCYCLOPEDIA_"`
}

// LLM configures the OpenAI-compatible model endpoint and the model router.
type LLM struct {
	// Env: PROVIDERS_LLM_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: PROVIDERS_LLM_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: PROVIDERS_LLM_TRANSCRIPTION_MODEL
	TranscriptionModel string `env:"TRANSCRIPTION_MODEL"`
	// Env: PROVIDERS_LLM_TRANSCRIPTION_LANGUAGE
	TranscriptionLanguage string `env:"TRANSCRIPTION_LANGUAGE"`
	// Env: PROVIDERS_LLM_TRANSCRIPTION_FORMAT
	TranscriptionFormat string `env:"TRANSCRIPTION_FORMAT"`
	// Env: PROVIDERS_LLM_VISION_MODEL
	VisionModel string `env:"VISION_MODEL"`
	// Env: PROVIDERS_LLM_VISION_FALLBACK_MODEL
	VisionFallbackModel string `env:"VISION_FALLBACK_MODEL"`
	// Env: PROVIDERS_LLM_UNDERSTANDING_MODEL
	UnderstandingModel string `env:"UNDERSTANDING_MODEL"`
	// Env: PROVIDERS_LLM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// TMDB configures the movie/TV metadata API.
type TMDB struct {
	// Env: PROVIDERS_TMDB_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: PROVIDERS_TMDB_IMAGE_BASE_URL
	ImageBaseURL string `env:"IMAGE_BASE_URL"`
	// Token is a v4 read access token.
	// Env: PROVIDERS_TMDB_TOKEN
	Token string `env:"TOKEN"`
}

// IGDB configures the game metadata API and its OAuth client credentials.
type IGDB struct {
	// Env: PROVIDERS_IGDB_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: PROVIDERS_IGDB_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`
	// Env: PROVIDERS_IGDB_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: PROVIDERS_IGDB_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Encyclopedia configures the fallback title lookup (Wikipedia API).
type Encyclopedia struct {
	// Env: PROVIDERS_ENCYCLOPEDIA_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: PROVIDERS_ENCYCLOPEDIA_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Workers holds enrichment execution settings.
type Workers struct {
	// EnrichmentConcurrency bounds how many tasks of one batch run at once.
	// Env: WORKERS_ENRICHMENT_CONCURRENCY
	EnrichmentConcurrency int `env:"ENRICHMENT_CONCURRENCY"`

	// QueuePollInterval is how often pending queue jobs are drained.
	// Env: WORKERS_QUEUE_POLL_INTERVAL
	QueuePollInterval time.Duration `env:"QUEUE_POLL_INTERVAL"`

	// QueueBatchSize caps how many pending jobs are taken per tick.
	// Env: WORKERS_QUEUE_BATCH_SIZE
	QueueBatchSize int `env:"QUEUE_BATCH_SIZE"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Later sources override non-zero fields of earlier ones:
//  1. Defaults
//  2. .env file and environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
