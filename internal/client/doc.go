// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line capture client.
//
// It turns command-line flags and local files into a capture request,
// submits it through an [adapter.CaptureAdapter] and prints the pipeline
// result as JSON.
package client
