// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package heuristics holds the pure text heuristics of the memo pipeline:
// garbage detection, media title sanitizing and keyword-bucket classifiers
// (media type, mood, idea category, recurrence intent), plus the shopping
// item and tarot card parsers.
//
// Keyword buckets are ordered tables of (label, keywords) pairs evaluated
// with first-match-wins semantics. Nothing in this package performs I/O.
package heuristics
