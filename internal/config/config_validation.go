// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.DispatchMode != DispatchImmediate && cfg.App.DispatchMode != DispatchLog {
		return fmt.Errorf("%w: unknown dispatch mode %q", ErrInvalidAppConfigs, cfg.App.DispatchMode)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	llm := cfg.Providers.LLM
	if llm.BaseURL == "" || llm.TranscriptionModel == "" || llm.VisionModel == "" || llm.UnderstandingModel == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.Workers.EnrichmentConcurrency <= 0 || cfg.Workers.QueueBatchSize <= 0 || cfg.Workers.QueuePollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.MaxAttempts < 1 || cfg.Adapter.RetryDelay < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
