// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"time"
)

// BookmarkRef is the read-only bookmark projection the engine consumes.
type BookmarkRef struct {
	// ID is the bookmark identifier.
	ID int64

	// URL is the bookmarked URL.
	URL string

	// Title is the bookmark title.
	Title string

	// Tags is the list of tag names attached to the bookmark.
	Tags []string
}

// TagCount is a tag with its bookmark association count.
type TagCount struct {
	// ID is the tag identifier.
	ID int64

	// Name is the tag name.
	Name string

	// Bookmarks is the number of bookmarks carrying the tag.
	Bookmarks int
}

// DomainCount is a domain with its bookmark count.
type DomainCount struct {
	// Domain is the hostname with a leading "www." stripped.
	Domain string

	// Bookmarks is the number of the user's bookmarks on the domain.
	Bookmarks int
}

// Store is the read-only query surface the engine needs from the bookmark
// store. It is intentionally narrow so the engine can be tested against an
// in-memory fake. Implementations must never mutate the underlying data.
type Store interface {
	// CountBookmarksByDomain counts the user's bookmarks whose URL
	// contains the domain.
	CountBookmarksByDomain(ctx context.Context, userID int64, domain string) (int, error)

	// CountBookmarksByDomainWithTag counts the user's bookmarks whose URL
	// contains the domain and which carry the tag (exact membership over
	// the normalized association table, case-insensitive name match).
	CountBookmarksByDomainWithTag(ctx context.Context, userID int64, domain, tag string) (int, error)

	// CountBookmarksSince counts bookmarks created at or after since.
	CountBookmarksSince(ctx context.Context, userID int64, since time.Time) (int, error)

	// CountBookmarksSinceWithTag counts bookmarks created at or after
	// since which carry the tag.
	CountBookmarksSinceWithTag(ctx context.Context, userID int64, since time.Time, tag string) (int, error)

	// SampleBookmarks returns up to limit of the user's bookmarks with
	// their tags, newest first.
	SampleBookmarks(ctx context.Context, userID int64, limit int) ([]BookmarkRef, error)

	// TagNames returns the user's full tag vocabulary.
	TagNames(ctx context.Context, userID int64) ([]string, error)

	// TopTags returns the user's most-used tags by association count,
	// descending, up to limit.
	TopTags(ctx context.Context, userID int64, limit int) ([]TagCount, error)

	// CountBookmarksWithAnyTag counts distinct bookmarks carrying any of
	// the given tags.
	CountBookmarksWithAnyTag(ctx context.Context, userID int64, tags []string) (int, error)

	// TagCountsForDomain maps tag names to usage counts over the user's
	// bookmarks whose URL contains the domain.
	TagCountsForDomain(ctx context.Context, userID int64, domain string) (map[string]int, error)

	// CountFrequentlyUsed counts bookmarks with click_count above
	// minClicks.
	CountFrequentlyUsed(ctx context.Context, userID int64, minClicks int) (int, error)

	// CountUnread counts never-clicked bookmarks created before olderThan.
	CountUnread(ctx context.Context, userID int64, olderThan time.Time) (int, error)

	// TopDomains returns the user's top domains by bookmark count,
	// descending, up to limit.
	TopDomains(ctx context.Context, userID int64, limit int) ([]DomainCount, error)
}
