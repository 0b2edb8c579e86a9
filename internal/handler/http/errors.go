// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingPayloadPart is returned for a multipart audio or image capture
	// without a "payload" file part.
	ErrMissingPayloadPart = errors.New("multipart capture has no payload part")

	// ErrInvalidFormField is returned when a multipart field cannot be parsed.
	ErrInvalidFormField = errors.New("invalid multipart field")

	ErrUnsupportedContentType = errors.New("unsupported content type")
)
