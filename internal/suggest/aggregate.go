// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"fmt"
	"math"
)

// Aggregate combines the three scoring signals for one candidate tag into
// a single confidence value with source attribution. An unparseable URL
// yields an all-zero result with no active sources. Store failures inside
// the individual scorers degrade that signal to zero.
func (e *Engine) Aggregate(ctx context.Context, userID int64, rawURL, tag string) (ScoreResult, Evidence) {
	domain := hostnameOf(rawURL)
	if domain == "" {
		return ScoreResult{}, Evidence{}
	}

	w := e.config.Weights

	var (
		domainOut    Outcome
		activityOut  Outcome
		similarOut   Outcome
		ev           Evidence
		recentTagged int
	)

	// A zero weight disables a signal entirely, skipping its store
	// queries.
	if w.Domain > 0 {
		domainOut, ev = e.domainScore(ctx, userID, domain, tag)
	}
	if w.Activity > 0 {
		activityOut, recentTagged = e.activityScore(ctx, userID, tag, e.config.ActivityWindowDays)
		ev.RecentTagged = recentTagged
	}
	if w.Similarity > 0 {
		similarOut = e.similarityScore(ctx, userID, rawURL, tag)
	}

	aggregate := math.Min(
		domainOut.Score*w.Domain+activityOut.Score*w.Activity+similarOut.Score*w.Similarity,
		1,
	)

	return ScoreResult{
		DomainScore:     domainOut.Score,
		ActivityScore:   activityOut.Score,
		SimilarityScore: similarOut.Score,
		AggregateScore:  aggregate,
		Sources: ScoreSources{
			Domain:     domainOut.Score > attributionThreshold,
			Activity:   activityOut.Score > attributionThreshold,
			Similarity: similarOut.Score > attributionThreshold,
		},
	}, ev
}

// Signal source names used in suggestion attribution.
const (
	sourceDomain     = "domain"
	sourceActivity   = "activity"
	sourceSimilarity = "similarity"
)

// topSource picks the dominant signal. Ties break toward domain, then
// activity, then similarity.
func topSource(s ScoreResult) string {
	if s.DomainScore >= s.ActivityScore && s.DomainScore >= s.SimilarityScore {
		return sourceDomain
	}
	if s.ActivityScore >= s.SimilarityScore {
		return sourceActivity
	}
	return sourceSimilarity
}

// explain produces a human-readable justification for a suggestion based
// on its dominant signal.
func explain(tag, domain string, s ScoreResult, ev Evidence, windowDays int) string {
	switch topSource(s) {
	case sourceDomain:
		pct := 0
		if ev.DomainBookmarks > 0 {
			pct = int(math.Round(100 * float64(ev.DomainTagged) / float64(ev.DomainBookmarks)))
		}
		return fmt.Sprintf("%d%% of %s bookmarks use this tag", pct, domain)
	case sourceActivity:
		return fmt.Sprintf("Added %d bookmarks with this tag in the last %d days", ev.RecentTagged, windowDays)
	default:
		return fmt.Sprintf("Similar to other bookmarks you've tagged with %q", tag)
	}
}
