// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the capture client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the capture server.
	HTTPAddress string
	// RequestTimeout bounds one upload attempt.
	RequestTimeout time.Duration
	// MaxAttempts is the total number of upload attempts.
	MaxAttempts int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// Adapter contains client transport settings.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view. The
// client does not parse server flags; its own CLI owns the command line.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxAttempts:    cfg.Adapter.MaxAttempts,
			RetryDelay:     cfg.Adapter.RetryDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}
