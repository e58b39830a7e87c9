// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/linkmark/internal/metrics"
	"github.com/tomtom215/linkmark/internal/suggest"
)

// SuggestionStore implements suggest.Store over the bookmarks schema.
// All methods are read-only statistics queries; the engine never writes.
type SuggestionStore struct {
	db *DB
}

// NewSuggestionStore wraps the database for the suggestion engine.
func NewSuggestionStore(db *DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

// compile-time interface check
var _ suggest.Store = (*SuggestionStore)(nil)

// CountBookmarksByDomain counts the user's bookmarks whose URL contains
// the domain as a substring, case-insensitively. Substring matching means
// subdomains count toward the parent domain's affinity: a docs.github.com
// bookmark counts for "github.com".
func (s *SuggestionStore) CountBookmarksByDomain(ctx context.Context, userID int64, domain string) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = ? AND lower(url) LIKE '%' || lower(?) || '%'`,
		userID, domain)
}

// CountBookmarksByDomainWithTag counts the user's bookmarks whose URL
// contains the domain and which carry the tag.
func (s *SuggestionStore) CountBookmarksByDomainWithTag(ctx context.Context, userID int64, domain, tag string) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(DISTINCT b.id)
		 FROM bookmarks b
		 JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		 JOIN tags t ON t.id = bt.tag_id
		 WHERE b.user_id = ? AND lower(b.url) LIKE '%' || lower(?) || '%' AND lower(t.name) = lower(?)`,
		userID, domain, tag)
}

// CountBookmarksSince counts bookmarks created at or after since.
func (s *SuggestionStore) CountBookmarksSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = ? AND created_at >= ?`,
		userID, since)
}

// CountBookmarksSinceWithTag counts bookmarks created at or after since
// that carry the tag.
func (s *SuggestionStore) CountBookmarksSinceWithTag(ctx context.Context, userID int64, since time.Time, tag string) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(DISTINCT b.id)
		 FROM bookmarks b
		 JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		 JOIN tags t ON t.id = bt.tag_id
		 WHERE b.user_id = ? AND b.created_at >= ? AND lower(t.name) = lower(?)`,
		userID, since, tag)
}

// SampleBookmarks returns up to limit of the user's bookmarks with tags,
// newest first. Tags are loaded in a second query over the sampled IDs to
// keep both statements simple.
func (s *SuggestionStore) SampleBookmarks(ctx context.Context, userID int64, limit int) ([]suggest.BookmarkRef, error) {
	start := time.Now()

	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT id, url, title FROM bookmarks
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("sample bookmarks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	refs := make([]suggest.BookmarkRef, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var ref suggest.BookmarkRef
		if err := rows.Scan(&ref.ID, &ref.URL, &ref.Title); err != nil {
			metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
			return nil, fmt.Errorf("scan bookmark sample: %w", err)
		}
		ref.Tags = []string{}
		refs = append(refs, ref)
		ids = append(ids, ref.ID)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("iterate bookmark sample: %w", err)
	}

	tagsByID, err := s.db.tagsForBookmarks(ctx, ids)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, err
	}
	for i := range refs {
		if tags, ok := tagsByID[refs[i].ID]; ok {
			refs[i].Tags = tags
		}
	}

	metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
	return refs, nil
}

// TagNames returns the user's full tag vocabulary, alphabetical.
func (s *SuggestionStore) TagNames(ctx context.Context, userID int64) ([]string, error) {
	start := time.Now()

	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT name FROM tags WHERE user_id = ? ORDER BY name`,
		userID,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("tag names: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	names := make([]string, 0, 64)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			metrics.RecordDBQuery("select", "tags", time.Since(start), err)
			return nil, fmt.Errorf("scan tag name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("iterate tag names: %w", err)
	}

	metrics.RecordDBQuery("select", "tags", time.Since(start), nil)
	return names, nil
}

// TopTags returns the user's most-used tags by association count.
func (s *SuggestionStore) TopTags(ctx context.Context, userID int64, limit int) ([]suggest.TagCount, error) {
	start := time.Now()

	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT t.id, t.name, COUNT(bt.bookmark_id) AS bookmarks
		 FROM tags t
		 JOIN bookmark_tags bt ON bt.tag_id = t.id
		 WHERE t.user_id = ?
		 GROUP BY t.id, t.name
		 ORDER BY bookmarks DESC, t.name ASC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("top tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make([]suggest.TagCount, 0, limit)
	for rows.Next() {
		var tc suggest.TagCount
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Bookmarks); err != nil {
			metrics.RecordDBQuery("select", "tags", time.Since(start), err)
			return nil, fmt.Errorf("scan top tag: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("iterate top tags: %w", err)
	}

	metrics.RecordDBQuery("select", "tags", time.Since(start), nil)
	return counts, nil
}

// CountBookmarksWithAnyTag counts distinct bookmarks carrying any of the
// given tags.
func (s *SuggestionStore) CountBookmarksWithAnyTag(ctx context.Context, userID int64, tags []string) (int, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(
		`SELECT COUNT(DISTINCT b.id)
		 FROM bookmarks b
		 JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		 JOIN tags t ON t.id = bt.tag_id
		 WHERE b.user_id = ? AND lower(t.name) IN (%s)`,
		placeholders(len(tags)),
	)
	args := make([]interface{}, 0, len(tags)+1)
	args = append(args, userID)
	for _, tag := range tags {
		args = append(args, strings.ToLower(tag))
	}

	return s.countQuery(ctx, "bookmarks", query, args...)
}

// TagCountsForDomain maps tag names to usage counts over the user's
// bookmarks whose URL contains the domain.
func (s *SuggestionStore) TagCountsForDomain(ctx context.Context, userID int64, domain string) (map[string]int, error) {
	start := time.Now()

	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT t.name, COUNT(DISTINCT b.id)
		 FROM bookmarks b
		 JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		 JOIN tags t ON t.id = bt.tag_id
		 WHERE b.user_id = ? AND lower(b.url) LIKE '%' || lower(?) || '%'
		 GROUP BY t.name`,
		userID, domain,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("tag counts for domain: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
			return nil, fmt.Errorf("scan domain tag count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("iterate domain tag counts: %w", err)
	}

	metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
	return counts, nil
}

// CountFrequentlyUsed counts bookmarks with click_count above minClicks.
func (s *SuggestionStore) CountFrequentlyUsed(ctx context.Context, userID int64, minClicks int) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = ? AND click_count > ?`,
		userID, minClicks)
}

// CountUnread counts never-clicked bookmarks created before olderThan.
func (s *SuggestionStore) CountUnread(ctx context.Context, userID int64, olderThan time.Time) (int, error) {
	return s.countQuery(ctx, "bookmarks",
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = ? AND click_count = 0 AND created_at < ?`,
		userID, olderThan)
}

// TopDomains returns the user's top domains by bookmark count. Bookmarks
// whose URL had no parseable host (empty stored domain) are excluded.
func (s *SuggestionStore) TopDomains(ctx context.Context, userID int64, limit int) ([]suggest.DomainCount, error) {
	start := time.Now()

	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT domain, COUNT(*) AS bookmarks
		 FROM bookmarks
		 WHERE user_id = ? AND domain <> ''
		 GROUP BY domain
		 ORDER BY bookmarks DESC, domain ASC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("top domains: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make([]suggest.DomainCount, 0, limit)
	for rows.Next() {
		var dc suggest.DomainCount
		if err := rows.Scan(&dc.Domain, &dc.Bookmarks); err != nil {
			metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
			return nil, fmt.Errorf("scan top domain: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("iterate top domains: %w", err)
	}

	metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
	return counts, nil
}

// countQuery runs a single-value COUNT query with metrics recording.
func (s *SuggestionStore) countQuery(ctx context.Context, table, query string, args ...interface{}) (int, error) {
	start := time.Now()

	var count int
	err := s.db.conn.QueryRowContext(ctx, query, args...).Scan(&count)
	metrics.RecordDBQuery("select", table, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return count, nil
}
