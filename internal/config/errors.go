// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown dispatch mode or log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive upload limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or zero attempts).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidProviderConfigs indicates a missing model endpoint or model name.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidWorkerConfigs indicates non-positive worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
