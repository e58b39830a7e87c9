// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"fmt"
	"time"
)

// recentWindowDays is the lookback window for the "Recent Bookmarks"
// collection and the age threshold for "Unread".
const recentWindowDays = 7

// BuildActivityCollections derives saved-view descriptors from the user's
// activity: recent additions, frequently clicked bookmarks, and unread
// bookmarks. A descriptor is only emitted when its count is positive.
// Store failures degrade to omitting the affected descriptor.
func (e *Engine) BuildActivityCollections(ctx context.Context, userID int64) []Collection {
	collections := make([]Collection, 0, 3)
	cutoff := time.Now().AddDate(0, 0, -recentWindowDays)

	if n, err := e.store.CountBookmarksSince(ctx, userID, cutoff); err != nil {
		e.logger.Warn().Err(err).Msg("recent count failed, omitting recent collection")
	} else if n > 0 {
		collections = append(collections, Collection{
			Name:          fmt.Sprintf("Recent Bookmarks (%d days)", recentWindowDays),
			Type:          CollectionActivity,
			Icon:          "clock",
			Color:         "#f59e0b",
			Filters:       CollectionFilters{AddedWithinDays: recentWindowDays},
			BookmarkCount: n,
			Reason:        fmt.Sprintf("%d bookmarks added in the last %d days", n, recentWindowDays),
		})
	}

	threshold := e.config.FrequentClickThreshold
	if n, err := e.store.CountFrequentlyUsed(ctx, userID, threshold); err != nil {
		e.logger.Warn().Err(err).Msg("frequently used count failed, omitting collection")
	} else if n > 0 {
		collections = append(collections, Collection{
			Name:          "Frequently Used",
			Type:          CollectionActivity,
			Icon:          "trending-up",
			Color:         "#10b981",
			Filters:       CollectionFilters{ClickCountMinimum: threshold},
			BookmarkCount: n,
			Reason:        fmt.Sprintf("%d bookmarks you visit often", n),
		})
	}

	if n, err := e.store.CountUnread(ctx, userID, cutoff); err != nil {
		e.logger.Warn().Err(err).Msg("unread count failed, omitting collection")
	} else if n > 0 {
		collections = append(collections, Collection{
			Name:          "Unread",
			Type:          CollectionActivity,
			Icon:          "eye-off",
			Color:         "#6b7280",
			Filters:       CollectionFilters{Unread: true},
			BookmarkCount: n,
			Reason:        fmt.Sprintf("%d bookmarks you saved but never opened", n),
		})
	}

	return collections
}

// BuildDomainCollections derives one saved-view descriptor per top domain,
// classified against the domain catalog. Store failures degrade to an
// empty list.
func (e *Engine) BuildDomainCollections(ctx context.Context, userID int64) []Collection {
	domains, err := e.store.TopDomains(ctx, userID, e.config.TopDomainLimit)
	if err != nil {
		e.logger.Warn().Err(err).Int64("user_id", userID).Msg("top domain fetch failed, no domain collections")
		return []Collection{}
	}

	collections := make([]Collection, 0, len(domains))
	for _, dc := range domains {
		if dc.Domain == "" || dc.Bookmarks == 0 {
			continue
		}
		classification := Classify("https://" + dc.Domain + "/")
		collections = append(collections, Collection{
			Name:          domainCollectionName(dc.Domain),
			Type:          CollectionDomain,
			Icon:          "globe",
			Color:         "#3b82f6",
			Category:      classification.Category,
			Filters:       CollectionFilters{Domain: dc.Domain},
			BookmarkCount: dc.Bookmarks,
			Reason:        fmt.Sprintf("%d bookmarks from %s", dc.Bookmarks, dc.Domain),
		})
	}

	return collections
}

// domainCollectionName builds the display name for a domain collection:
// "github.com" becomes "github.com Resources". The full domain keeps the
// names unambiguous when two domains share a first label.
func domainCollectionName(domain string) string {
	return domain + " Resources"
}

// SuggestCollections merges activity, domain and tag-cluster derived
// collection descriptors, deduplicating by name. Activity collections win
// over domain collections over cluster-derived ones. Everything is
// recomputed from the live store on each call.
func (e *Engine) SuggestCollections(ctx context.Context, userID int64) []Collection {
	seen := make(map[string]struct{})
	merged := make([]Collection, 0, 8)

	add := func(cols []Collection) {
		for _, c := range cols {
			if _, dup := seen[c.Name]; dup {
				continue
			}
			seen[c.Name] = struct{}{}
			merged = append(merged, c)
		}
	}

	add(e.BuildActivityCollections(ctx, userID))
	add(e.BuildDomainCollections(ctx, userID))

	clusters := e.BuildClusters(ctx, userID)
	clusterCols := make([]Collection, 0, len(clusters))
	for _, cl := range clusters {
		clusterCols = append(clusterCols, Collection{
			Name:          cl.Name,
			Type:          CollectionTagCluster,
			Icon:          "tag",
			Color:         "#8b5cf6",
			Category:      cl.Category,
			Filters:       CollectionFilters{Tags: cl.Rules.Tags},
			BookmarkCount: cl.BookmarkCount,
			Reason:        cl.Reason,
		})
	}
	add(clusterCols)

	return merged
}
