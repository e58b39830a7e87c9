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
)

// Tag cluster categories.
const (
	categoryFrontend = "frontend"
	categoryDevOps   = "devops"
	categoryLanguage = "language"
	categoryLearning = "learning"
	categoryOther    = "other"
)

// categoryKeywords maps cluster categories to the substrings that assign
// a tag to them. First match wins, in the order listed by clusterOrder.
var categoryKeywords = map[string][]string{
	categoryFrontend: {"react", "vue", "angular", "svelte", "css", "html", "frontend"},
	categoryDevOps:   {"docker", "k8s", "kubernetes", "devops", "terraform", "ansible", "cicd"},
	categoryLanguage: {"python", "javascript", "typescript", "golang", "java", "rust", "ruby"},
	categoryLearning: {"tutorial", "learning", "course", "guide", "howto"},
}

// clusterOrder fixes the categorization precedence so a tag like
// "react-tutorial" lands deterministically in frontend.
var clusterOrder = []string{categoryFrontend, categoryDevOps, categoryLanguage, categoryLearning}

// categorizeTag assigns a tag name to a cluster category via substring
// keyword matching.
func categorizeTag(name string) string {
	lowered := strings.ToLower(name)
	for _, category := range clusterOrder {
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lowered, kw) {
				return category
			}
		}
	}
	return categoryOther
}

// clusterName produces the display name for a category, e.g. "frontend"
// becomes "Frontend Topics".
func clusterName(category string) string {
	if category == "" {
		return "Topics"
	}
	return strings.ToUpper(category[:1]) + category[1:] + " Topics"
}

// BuildClusters groups the user's most-used tags into thematic clusters.
// Categories with fewer than two distinct tags are dropped entirely: a
// singleton is not a cluster. Output is sorted by bookmark count
// descending. Store failures degrade to an empty list.
func (e *Engine) BuildClusters(ctx context.Context, userID int64) []TagCluster {
	topTags, err := e.store.TopTags(ctx, userID, e.config.TopTagLimit)
	if err != nil {
		e.logger.Warn().Err(err).Int64("user_id", userID).Msg("top tag fetch failed, no clusters")
		return []TagCluster{}
	}

	groups := make(map[string][]string)
	for _, tc := range topTags {
		category := categorizeTag(tc.Name)
		groups[category] = append(groups[category], tc.Name)
	}

	clusters := make([]TagCluster, 0, len(groups))
	for category, tags := range groups {
		if len(tags) < 2 {
			continue
		}

		count, err := e.store.CountBookmarksWithAnyTag(ctx, userID, tags)
		if err != nil {
			e.logger.Warn().Err(err).Str("category", category).Msg("cluster bookmark count failed, degrading to zero")
			count = 0
		}

		clusters = append(clusters, TagCluster{
			Name:          clusterName(category),
			Category:      category,
			Tags:          tags,
			BookmarkCount: count,
			Reason:        fmt.Sprintf("%d related tags used across %d bookmarks", len(tags), count),
			Rules:         ClusterRules{Tags: tags},
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].BookmarkCount != clusters[j].BookmarkCount {
			return clusters[i].BookmarkCount > clusters[j].BookmarkCount
		}
		return clusters[i].Category < clusters[j].Category
	})

	return clusters
}
