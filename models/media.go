// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MediaQuery is what resolvers search for.
type MediaQuery struct {
	Title string
	Year  *int
	Type  MediaType
}

// MediaMatch is the uniform partial draft every resolver returns. Nil fields
// mean "unknown".
type MediaMatch struct {
	Title             *string    `json:"title,omitempty"`
	MediaType         *MediaType `json:"mediaType,omitempty"`
	ReleaseYear       *int       `json:"releaseYear,omitempty"`
	AutoTitle         *string    `json:"autoTitle,omitempty"`
	AutoReleaseYear   *int       `json:"autoReleaseYear,omitempty"`
	Overview          *string    `json:"overview,omitempty"`
	PosterURL         *string    `json:"posterUrl,omitempty"`
	Genres            []string   `json:"genres,omitempty"`
	RuntimeMinutes    *int       `json:"runtimeMinutes,omitempty"`
	Rating            *float64   `json:"rating,omitempty"`
	TimeToBeatMinutes *int       `json:"timeToBeatMinutes,omitempty"`
	ExternalSource    *string    `json:"externalSource,omitempty"`
	ExternalID        *string    `json:"externalId,omitempty"`
	ExternalURL       *string    `json:"externalUrl,omitempty"`
}

// MergeMediaMatches folds partials left to right. The first non-nil value of
// each field wins, except AutoTitle and AutoReleaseYear, which take the value
// of the last partial that sets them.
func MergeMediaMatches(parts ...MediaMatch) MediaMatch {
	var out MediaMatch
	for _, p := range parts {
		out.Title = firstNonNil(out.Title, p.Title)
		out.MediaType = firstNonNil(out.MediaType, p.MediaType)
		out.ReleaseYear = firstNonNil(out.ReleaseYear, p.ReleaseYear)
		out.Overview = firstNonNil(out.Overview, p.Overview)
		out.PosterURL = firstNonNil(out.PosterURL, p.PosterURL)
		out.RuntimeMinutes = firstNonNil(out.RuntimeMinutes, p.RuntimeMinutes)
		out.Rating = firstNonNil(out.Rating, p.Rating)
		out.TimeToBeatMinutes = firstNonNil(out.TimeToBeatMinutes, p.TimeToBeatMinutes)
		out.ExternalSource = firstNonNil(out.ExternalSource, p.ExternalSource)
		out.ExternalID = firstNonNil(out.ExternalID, p.ExternalID)
		out.ExternalURL = firstNonNil(out.ExternalURL, p.ExternalURL)
		if out.Genres == nil && p.Genres != nil {
			out.Genres = p.Genres
		}

		if p.AutoTitle != nil {
			out.AutoTitle = p.AutoTitle
		}
		if p.AutoReleaseYear != nil {
			out.AutoReleaseYear = p.AutoReleaseYear
		}
	}
	return out
}

func firstNonNil[T any](current, next *T) *T {
	if current != nil {
		return current
	}
	return next
}

// ResolverAttempt records one resolver call for troubleshooting.
type ResolverAttempt struct {
	Resolver string  `json:"resolver"`
	Matched  bool    `json:"matched"`
	Score    float64 `json:"score,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// SearchDebug explains which resolver matched a media item and why.
type SearchDebug struct {
	Query     string            `json:"query"`
	Year      *int              `json:"year,omitempty"`
	Type      MediaType         `json:"type"`
	Attempts  []ResolverAttempt `json:"attempts"`
	MatchedBy string            `json:"matchedBy,omitempty"`
}
