// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"net/url"
	"strings"
)

// Classification is the result of classifying a URL against the domain
// catalog.
type Classification struct {
	// Category is the topical category, e.g. "development".
	Category string `json:"category"`

	// Tags is the list of seed tags for the domain.
	Tags []string `json:"tags"`

	// Priority is the classification confidence in [0, 1].
	Priority float64 `json:"priority"`
}

// catalogEntry is one row of the static domain catalog.
type catalogEntry struct {
	category string
	tags     []string
	priority float64
}

// domainCatalog maps well-known domains to categories and seed tags.
// Loaded once at process start and never mutated; safe for unsynchronized
// concurrent reads.
var domainCatalog = map[string]catalogEntry{
	// Development
	"github.com":        {category: "development", tags: []string{"github", "development", "code", "opensource", "repository"}, priority: 0.95},
	"gitlab.com":        {category: "development", tags: []string{"gitlab", "development", "code", "repository"}, priority: 0.9},
	"bitbucket.org":     {category: "development", tags: []string{"bitbucket", "development", "code", "repository"}, priority: 0.85},
	"stackoverflow.com": {category: "development", tags: []string{"stackoverflow", "programming", "qa", "development"}, priority: 0.95},
	"npmjs.com":         {category: "development", tags: []string{"npm", "javascript", "package", "development"}, priority: 0.85},
	"pypi.org":          {category: "development", tags: []string{"pypi", "python", "package", "development"}, priority: 0.85},

	// Reference
	"mdn.mozilla.org":       {category: "reference", tags: []string{"mdn", "documentation", "web", "reference"}, priority: 0.95},
	"developer.mozilla.org": {category: "reference", tags: []string{"mdn", "documentation", "web", "reference"}, priority: 0.95},
	"python.org":            {category: "reference", tags: []string{"python", "documentation", "reference"}, priority: 0.9},
	"go.dev":                {category: "reference", tags: []string{"golang", "go", "documentation", "reference"}, priority: 0.9},
	"rust-lang.org":         {category: "reference", tags: []string{"rust", "documentation", "reference"}, priority: 0.9},
	"wikipedia.org":         {category: "reference", tags: []string{"wikipedia", "encyclopedia", "reference"}, priority: 0.9},

	// Learning
	"coursera.org":     {category: "learning", tags: []string{"coursera", "course", "learning", "education"}, priority: 0.9},
	"udemy.com":        {category: "learning", tags: []string{"udemy", "course", "learning", "tutorial"}, priority: 0.85},
	"freecodecamp.org": {category: "learning", tags: []string{"freecodecamp", "tutorial", "learning", "programming"}, priority: 0.9},

	// DevOps
	"docker.com":    {category: "devops", tags: []string{"docker", "container", "devops"}, priority: 0.9},
	"kubernetes.io": {category: "devops", tags: []string{"kubernetes", "k8s", "container", "devops"}, priority: 0.9},

	// Cloud
	"aws.amazon.com":      {category: "cloud", tags: []string{"aws", "cloud", "infrastructure"}, priority: 0.9},
	"cloud.google.com":    {category: "cloud", tags: []string{"gcp", "cloud", "infrastructure"}, priority: 0.9},
	"azure.microsoft.com": {category: "cloud", tags: []string{"azure", "cloud", "infrastructure"}, priority: 0.9},

	// Social
	"reddit.com":           {category: "social", tags: []string{"reddit", "community", "discussion"}, priority: 0.85},
	"twitter.com":          {category: "social", tags: []string{"twitter", "social"}, priority: 0.8},
	"news.ycombinator.com": {category: "social", tags: []string{"hackernews", "news", "technology"}, priority: 0.9},

	// Content
	"youtube.com": {category: "content", tags: []string{"youtube", "video", "content"}, priority: 0.85},
	"medium.com":  {category: "content", tags: []string{"medium", "article", "blog"}, priority: 0.8},
	"dev.to":      {category: "content", tags: []string{"devto", "article", "blog", "development"}, priority: 0.85},
}

// Classify maps a URL to a topical category and seed tags.
//
// The hostname (with a leading "www." stripped) is looked up verbatim in
// the catalog. On a miss, the leftmost label is dropped and the lookup is
// retried, so "docs.python.org" matches the "python.org" entry. Unmatched
// hostnames fall back to a generic web classification seeded with the
// hostname's first label; unparseable URLs classify as unknown.
func Classify(rawURL string) Classification {
	host := hostnameOf(rawURL)
	if host == "" {
		return Classification{Category: "unknown", Tags: []string{}, Priority: 0.3}
	}

	labels := strings.Split(host, ".")
	for i := range labels {
		candidate := strings.Join(labels[i:], ".")
		if entry, ok := domainCatalog[candidate]; ok {
			tags := make([]string, len(entry.tags))
			copy(tags, entry.tags)
			return Classification{Category: entry.category, Tags: tags, Priority: entry.priority}
		}
	}

	return Classification{Category: "web", Tags: []string{labels[0]}, Priority: 0.6}
}

// Hostname extracts the normalized hostname from a URL with a leading
// "www." stripped. Returns "" when the URL cannot be parsed into a host.
// The storage layer uses this to derive the domain column, so stored
// domains and classification agree.
func Hostname(rawURL string) string {
	return hostnameOf(rawURL)
}

// hostnameOf extracts the hostname from a URL with a leading "www."
// stripped. Returns "" when the URL cannot be parsed into a host.
func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
