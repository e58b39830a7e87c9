// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Engine is the Smart Organization engine. It reads a single user's
// bookmark data through the Store interface and never mutates it. The
// engine is safe for concurrent use: it holds no mutable state beyond its
// configuration.
type Engine struct {
	store  Store
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a suggestion engine over the given read-only store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("store must not be nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  store,
		config: cfg,
		logger: logger.With().Str("component", "suggest").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// SuggestTags scores candidate tags for a URL and returns the best ones,
// sorted by aggregate score descending and truncated to limit. Candidates
// are the union of the domain's seed tags, the user's tag vocabulary and
// the tags already used on bookmarks from the same domain. A limit of
// zero applies the configured default. The result is never an error:
// unparseable URLs and store failures degrade to an empty list.
func (e *Engine) SuggestTags(ctx context.Context, userID int64, rawURL string, limit int) []TagSuggestion {
	if limit <= 0 {
		limit = e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		limit = e.config.MaxLimit
	}

	domain := hostnameOf(rawURL)
	if domain == "" {
		e.logger.Debug().Str("url", rawURL).Msg("unparseable url, no suggestions")
		return []TagSuggestion{}
	}

	candidates := e.enumerateCandidates(ctx, userID, rawURL, domain)
	if len(candidates) == 0 {
		return []TagSuggestion{}
	}

	suggestions := make([]TagSuggestion, 0, len(candidates))
	for _, tag := range candidates {
		scores, ev := e.Aggregate(ctx, userID, rawURL, tag)
		if scores.AggregateScore <= e.config.MinScore {
			continue
		}
		suggestions = append(suggestions, TagSuggestion{
			Tag:    tag,
			Score:  scores.AggregateScore,
			Source: topSource(scores),
			Reason: explain(tag, domain, scores, ev, e.config.ActivityWindowDays),
			Scores: scores,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	e.logger.Debug().
		Int64("user_id", userID).
		Str("domain", domain).
		Int("candidates", len(candidates)).
		Int("returned", len(suggestions)).
		Msg("tag suggestions computed")

	return suggestions
}

// enumerateCandidates builds the deduplicated candidate tag list for a
// URL: seed tags from the domain catalog, the user's vocabulary, and tags
// already present on bookmarks from the domain. Order is stable: seeds
// first, then vocabulary, then domain tags, each in their source order.
// Deduplication is case-insensitive but candidates keep the casing of
// their first occurrence, so stored tag names round-trip unchanged.
func (e *Engine) enumerateCandidates(ctx context.Context, userID int64, rawURL, domain string) []string {
	seen := make(map[string]struct{})
	candidates := make([]string, 0, 32)

	add := func(tag string) {
		name := strings.TrimSpace(tag)
		key := strings.ToLower(name)
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, name)
	}

	for _, tag := range Classify(rawURL).Tags {
		add(tag)
	}

	vocabulary, err := e.store.TagNames(ctx, userID)
	if err != nil {
		e.logger.Warn().Err(err).Msg("tag vocabulary fetch failed, continuing with partial candidates")
	}
	for _, tag := range vocabulary {
		add(tag)
	}

	domainTags, err := e.store.TagCountsForDomain(ctx, userID, domain)
	if err != nil {
		e.logger.Warn().Err(err).Str("domain", domain).Msg("domain tag fetch failed, continuing with partial candidates")
	}
	domainNames := make([]string, 0, len(domainTags))
	for tag := range domainTags {
		domainNames = append(domainNames, tag)
	}
	sort.Strings(domainNames)
	for _, tag := range domainNames {
		add(tag)
	}

	return candidates
}

// DomainInfo summarizes the user's relationship with the URL's domain:
// its classification, bookmark count and tag usage distribution. Store
// failures degrade to a zero-count summary.
func (e *Engine) DomainInfo(ctx context.Context, userID int64, rawURL string) DomainInfo {
	domain := hostnameOf(rawURL)
	if domain == "" {
		return DomainInfo{Domain: "", Category: "unknown", TagDistribution: map[string]int{}}
	}

	info := DomainInfo{
		Domain:          domain,
		Category:        Classify(rawURL).Category,
		TagDistribution: map[string]int{},
	}

	count, err := e.store.CountBookmarksByDomain(ctx, userID, domain)
	if err != nil {
		e.logger.Warn().Err(err).Str("domain", domain).Msg("domain count failed, degrading to zero")
		return info
	}
	info.BookmarkCount = count

	dist, err := e.store.TagCountsForDomain(ctx, userID, domain)
	if err != nil {
		e.logger.Warn().Err(err).Str("domain", domain).Msg("tag distribution fetch failed, degrading to empty")
		return info
	}
	if dist != nil {
		info.TagDistribution = dist
	}

	return info
}
