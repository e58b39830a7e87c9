// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"math"
	"strings"
	"time"
)

// Outcome is the result of one scoring signal. Neutral is set when a store
// failure degraded the result to zero, making the "errors degrade to
// neutral" contract visible in the type rather than hidden behind
// swallowed errors.
type Outcome struct {
	// Score is the signal's sub-score in [0, 1].
	Score float64

	// Neutral indicates the score was forced to zero by a store failure.
	Neutral bool
}

// neutralOutcome is the degraded result for a failed signal.
var neutralOutcome = Outcome{Score: 0, Neutral: true}

// domainScale dampens domain-affinity confidence for domains with few
// bookmarks: full confidence requires this many bookmarks on the domain.
const domainScale = 100

// domainScore computes the domain-affinity signal: the frequency of the
// tag among the user's bookmarks on the domain, scaled down when the
// domain has few bookmarks. Returns the outcome plus the raw counts.
func (e *Engine) domainScore(ctx context.Context, userID int64, domain, tag string) (Outcome, Evidence) {
	var ev Evidence

	total, err := e.store.CountBookmarksByDomain(ctx, userID, domain)
	if err != nil {
		e.logger.Warn().Err(err).Str("domain", domain).Msg("domain count failed, degrading to neutral")
		return neutralOutcome, ev
	}
	ev.DomainBookmarks = total
	if total == 0 {
		return Outcome{}, ev
	}

	tagged, err := e.store.CountBookmarksByDomainWithTag(ctx, userID, domain, tag)
	if err != nil {
		e.logger.Warn().Err(err).Str("domain", domain).Str("tag", tag).Msg("tagged domain count failed, degrading to neutral")
		return neutralOutcome, ev
	}
	ev.DomainTagged = tagged

	frequency := float64(tagged) / float64(total)
	scale := math.Min(float64(total)/domainScale, 1)

	return Outcome{Score: clamp01(frequency * scale)}, ev
}

// activityBoost returns the recency multiplier for the activity window.
// Short windows boost the signal, long windows discount it.
func activityBoost(days int) float64 {
	switch {
	case days <= 7:
		return 1.2
	case days <= 14:
		return 0.9
	default:
		return 0.5
	}
}

// activityScore computes the recent-activity signal: the frequency of the
// tag among bookmarks added within the window, with a recency boost.
// The second return is the number of recent bookmarks carrying the tag.
func (e *Engine) activityScore(ctx context.Context, userID int64, tag string, days int) (Outcome, int) {
	since := time.Now().AddDate(0, 0, -days)

	recent, err := e.store.CountBookmarksSince(ctx, userID, since)
	if err != nil {
		e.logger.Warn().Err(err).Str("tag", tag).Msg("recent count failed, degrading to neutral")
		return neutralOutcome, 0
	}
	if recent == 0 {
		return Outcome{}, 0
	}

	tagged, err := e.store.CountBookmarksSinceWithTag(ctx, userID, since, tag)
	if err != nil {
		e.logger.Warn().Err(err).Str("tag", tag).Msg("recent tagged count failed, degrading to neutral")
		return neutralOutcome, 0
	}

	frequency := float64(tagged) / float64(recent)

	return Outcome{Score: clamp01(frequency * activityBoost(days))}, tagged
}

// similarityScore computes the URL-similarity signal: the frequency of the
// tag among sampled bookmarks whose URL, title or tags overlap with the
// target URL's tokens, boosted logarithmically by the absolute match count.
func (e *Engine) similarityScore(ctx context.Context, userID int64, rawURL, tag string) Outcome {
	tokens := tokenizeURL(rawURL)
	if len(tokens) == 0 {
		return Outcome{}
	}

	sample, err := e.store.SampleBookmarks(ctx, userID, e.config.SampleSize)
	if err != nil {
		e.logger.Warn().Err(err).Msg("bookmark sample failed, degrading to neutral")
		return neutralOutcome
	}

	matches, tagged := 0, 0
	for i := range sample {
		if !bookmarkMatchesTokens(&sample[i], tokens) {
			continue
		}
		matches++
		if hasTag(sample[i].Tags, tag) {
			tagged++
		}
	}
	if matches == 0 {
		return Outcome{}
	}

	frequency := float64(tagged) / float64(matches)
	boost := math.Log(float64(tagged) + 1)

	return Outcome{Score: clamp01(frequency * boost / 10)}
}

// tokenizeURL lowercases the URL, drops the scheme, replaces characters
// outside [a-z0-9 \-/] with spaces, splits on whitespace and keeps tokens
// of length 3 through 29. The scheme is dropped because "https" would
// otherwise match nearly every bookmark.
func tokenizeURL(rawURL string) []string {
	lowered := strings.ToLower(rawURL)
	if i := strings.Index(lowered, "://"); i >= 0 {
		lowered = lowered[i+3:]
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == '/':
			return r
		default:
			return ' '
		}
	}, lowered)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 && len(f) < 30 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// bookmarkMatchesTokens reports whether any token appears as a substring
// of the bookmark's URL, title or tag text.
func bookmarkMatchesTokens(b *BookmarkRef, tokens []string) bool {
	urlText := strings.ToLower(b.URL)
	titleText := strings.ToLower(b.Title)
	tagText := strings.ToLower(strings.Join(b.Tags, " "))

	for _, tok := range tokens {
		if strings.Contains(urlText, tok) || strings.Contains(titleText, tok) || strings.Contains(tagText, tok) {
			return true
		}
	}
	return false
}

// hasTag reports exact, case-insensitive tag membership.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
