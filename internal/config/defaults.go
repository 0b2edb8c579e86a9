// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:      "dev",
			LogLevel:     "info",
			DispatchMode: DispatchImmediate,
		},
		Storage: Storage{
			DB: DB{DSN: "memos.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 2 * time.Minute,
			MaxUploadBytes: 25 << 20,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: time.Minute,
			MaxAttempts:    3,
			RetryDelay:     2 * time.Second,
		},
		Providers: Providers{
			ResolverTimeout: 15 * time.Second,
			LLM: LLM{
				BaseURL:             "https://api.openai.com",
				TranscriptionModel:  "whisper-1",
				TranscriptionFormat: "verbose_json",
				VisionModel:         "gpt-4o",
				VisionFallbackModel: "gpt-4o-mini",
				UnderstandingModel:  "gpt-4o-mini",
				Timeout:             90 * time.Second,
			},
			TMDB: TMDB{
				BaseURL:      "https://api.themoviedb.org/3",
				ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			},
			IGDB: IGDB{
				BaseURL:  "https://api.igdb.com/v4",
				TokenURL: "https://id.twitch.tv/oauth2/token",
			},
			Encyclopedia: Encyclopedia{
				BaseURL:   "https://en.wikipedia.org",
				UserAgent: "go-memo-keeper/1.0",
			},
		},
		Workers: Workers{
			EnrichmentConcurrency: 4,
			QueuePollInterval:     30 * time.Second,
			QueueBatchSize:        20,
		},
	}
}
