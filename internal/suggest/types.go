// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

// ScoreSources records which signals contributed materially to a score.
// A source is active when its sub-score exceeds the attribution threshold.
type ScoreSources struct {
	// Domain indicates the domain-affinity signal was material.
	Domain bool `json:"domain"`

	// Activity indicates the recent-activity signal was material.
	Activity bool `json:"activity"`

	// Similarity indicates the URL-similarity signal was material.
	Similarity bool `json:"similarity"`
}

// attributionThreshold is the minimum sub-score for a signal to count as
// an active source.
const attributionThreshold = 0.1

// ScoreResult is the outcome of aggregating the three scoring signals for
// one candidate tag. All scores are clamped to [0, 1].
type ScoreResult struct {
	// DomainScore is the domain-affinity sub-score.
	DomainScore float64 `json:"domain_score"`

	// ActivityScore is the recent-activity sub-score.
	ActivityScore float64 `json:"activity_score"`

	// SimilarityScore is the URL-similarity sub-score.
	SimilarityScore float64 `json:"similarity_score"`

	// AggregateScore is the weighted combination of the sub-scores.
	AggregateScore float64 `json:"aggregate_score"`

	// Sources attributes the score to the signals that contributed.
	Sources ScoreSources `json:"sources"`
}

// Evidence carries the raw counts behind a ScoreResult. It feeds the
// human-readable reason strings and is not part of the wire format.
type Evidence struct {
	// DomainBookmarks is the number of the user's bookmarks on the domain.
	DomainBookmarks int

	// DomainTagged is how many of those carry the candidate tag.
	DomainTagged int

	// RecentTagged is how many recently added bookmarks carry the tag.
	RecentTagged int
}

// TagSuggestion is one suggested tag with its confidence and justification.
type TagSuggestion struct {
	// Tag is the suggested tag name.
	Tag string `json:"tag"`

	// Score is the aggregate confidence in [0, 1].
	Score float64 `json:"score"`

	// Source names the dominant signal (domain, activity or similarity).
	Source string `json:"source"`

	// Reason is a human-readable justification for the suggestion.
	Reason string `json:"reason"`

	// Scores is the full sub-score breakdown.
	Scores ScoreResult `json:"scores"`
}

// ClusterRules describes the membership rule of a tag cluster: a bookmark
// belongs to the cluster when it carries any of the listed tags.
type ClusterRules struct {
	// Tags is the list of tag names defining the cluster.
	Tags []string `json:"tags"`
}

// TagCluster groups co-occurring tags into a coarse thematic cluster.
// A cluster always has at least two distinct member tags.
type TagCluster struct {
	// Name is the display name, e.g. "Frontend Topics".
	Name string `json:"name"`

	// Category is the cluster category (frontend, devops, language,
	// learning or other).
	Category string `json:"category"`

	// Tags is the set of member tag names.
	Tags []string `json:"tags"`

	// BookmarkCount is the number of distinct bookmarks carrying any
	// member tag.
	BookmarkCount int `json:"bookmark_count"`

	// Reason explains why the cluster was formed.
	Reason string `json:"reason"`

	// Rules is the saved-view membership rule derived from the cluster.
	Rules ClusterRules `json:"rules"`
}

// Collection types distinguish how a smart collection was derived.
const (
	// CollectionActivity marks collections derived from recent activity
	// or click statistics.
	CollectionActivity = "activity"

	// CollectionDomain marks collections derived from top domains.
	CollectionDomain = "domain"

	// CollectionTagCluster marks collections derived from tag clusters.
	CollectionTagCluster = "tag_cluster"
)

// CollectionFilters is the saved-view filter configuration. Zero-valued
// fields are omitted from the wire format.
type CollectionFilters struct {
	// AddedWithinDays restricts to bookmarks created within the window.
	AddedWithinDays int `json:"added_within_days,omitempty"`

	// ClickCountMinimum restricts to bookmarks clicked more than this
	// many times.
	ClickCountMinimum int `json:"click_count_minimum,omitempty"`

	// Unread restricts to never-clicked bookmarks older than a week.
	Unread bool `json:"unread,omitempty"`

	// Domain restricts to bookmarks from one domain.
	Domain string `json:"domain,omitempty"`

	// Tags restricts to bookmarks carrying any of the listed tags.
	Tags []string `json:"tags,omitempty"`
}

// Collection is a suggested smart collection: a named, filterable saved
// view over bookmarks derived from statistics rather than manual curation.
type Collection struct {
	// Name is the display name.
	Name string `json:"name"`

	// Type is one of the Collection* constants.
	Type string `json:"type"`

	// Icon is the suggested UI icon identifier.
	Icon string `json:"icon,omitempty"`

	// Color is the suggested UI accent color.
	Color string `json:"color,omitempty"`

	// Category is the topical category for domain collections.
	Category string `json:"category,omitempty"`

	// Filters is the saved-view filter configuration.
	Filters CollectionFilters `json:"filters"`

	// BookmarkCount is the number of bookmarks the collection would hold.
	BookmarkCount int `json:"bookmark_count"`

	// Reason explains why the collection was suggested.
	Reason string `json:"reason"`
}

// DomainInfo summarizes a user's relationship with one domain.
type DomainInfo struct {
	// Domain is the hostname with a leading "www." stripped.
	Domain string `json:"domain"`

	// Category is the classified topical category.
	Category string `json:"category"`

	// BookmarkCount is the number of the user's bookmarks on the domain.
	BookmarkCount int `json:"bookmark_count"`

	// TagDistribution maps tag names to their usage count on the domain.
	TagDistribution map[string]int `json:"tag_distribution"`
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
