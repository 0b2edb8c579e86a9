// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
		DispatchMode string `json:"dispatch_mode"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxAttempts    int      `json:"max_attempts"`
		RetryDelay     Duration `json:"retry_delay"`
	} `json:"adapter,omitempty"`

	Providers struct {
		ResolverTimeout Duration `json:"resolver_timeout"`

		LLM struct {
			BaseURL               string   `json:"base_url"`
			APIKey                string   `json:"api_key"`
			TranscriptionModel    string   `json:"transcription_model"`
			TranscriptionLanguage string   `json:"transcription_language"`
			TranscriptionFormat   string   `json:"transcription_format"`
			VisionModel           string   `json:"vision_model"`
			VisionFallbackModel   string   `json:"vision_fallback_model"`
			UnderstandingModel    string   `json:"understanding_model"`
			Timeout               Duration `json:"timeout"`
		} `json:"llm,omitempty"`
		TMDB struct {
			BaseURL      string `json:"base_url"`
			ImageBaseURL string `json:"image_base_url"`
			Token        string `json:"token"`
		} `json:"tmdb,omitempty"`
		IGDB struct {
			BaseURL      string `json:"base_url"`
			TokenURL     string `json:"token_url"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"igdb,omitempty"`
		Encyclopedia struct {
			BaseURL   string `json:"base_url"`
			UserAgent string `json:"user_agent"`
		} `json:"encyclopedia,omitempty"`
	} `json:"providers,omitempty"`

	Workers struct {
		EnrichmentConcurrency int      `json:"enrichment_concurrency"`
		QueuePollInterval     Duration `json:"queue_poll_interval"`
		QueueBatchSize        int      `json:"queue_batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:      j.App.Version,
			LogLevel:     j.App.LogLevel,
			DispatchMode: j.App.DispatchMode,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			MaxUploadBytes: j.Server.MaxUploadBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			MaxAttempts:    j.Adapter.MaxAttempts,
			RetryDelay:     time.Duration(j.Adapter.RetryDelay),
		},
		Providers: Providers{
			ResolverTimeout: time.Duration(j.Providers.ResolverTimeout),
			LLM: LLM{
				BaseURL:               j.Providers.LLM.BaseURL,
				APIKey:                j.Providers.LLM.APIKey,
				TranscriptionModel:    j.Providers.LLM.TranscriptionModel,
				TranscriptionLanguage: j.Providers.LLM.TranscriptionLanguage,
				TranscriptionFormat:   j.Providers.LLM.TranscriptionFormat,
				VisionModel:           j.Providers.LLM.VisionModel,
				VisionFallbackModel:   j.Providers.LLM.VisionFallbackModel,
				UnderstandingModel:    j.Providers.LLM.UnderstandingModel,
				Timeout:               time.Duration(j.Providers.LLM.Timeout),
			},
			TMDB: TMDB{
				BaseURL:      j.Providers.TMDB.BaseURL,
				ImageBaseURL: j.Providers.TMDB.ImageBaseURL,
				Token:        j.Providers.TMDB.Token,
			},
			IGDB: IGDB{
				BaseURL:      j.Providers.IGDB.BaseURL,
				TokenURL:     j.Providers.IGDB.TokenURL,
				ClientID:     j.Providers.IGDB.ClientID,
				ClientSecret: j.Providers.IGDB.ClientSecret,
			},
			Encyclopedia: Encyclopedia{
				BaseURL:   j.Providers.Encyclopedia.BaseURL,
				UserAgent: j.Providers.Encyclopedia.UserAgent,
			},
		},
		Workers: Workers{
			EnrichmentConcurrency: j.Workers.EnrichmentConcurrency,
			QueuePollInterval:     time.Duration(j.Workers.QueuePollInterval),
			QueueBatchSize:        j.Workers.QueueBatchSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
