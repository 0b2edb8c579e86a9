// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound captures and enrichment tasks before
// they enter the pipeline.
//
// A Validator accepts a value and, optionally, the names of the fields to
// check; with no field names every rule applies.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
