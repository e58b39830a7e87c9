// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/linkmark/internal/metrics"
	"github.com/tomtom215/linkmark/internal/models"
	"github.com/tomtom215/linkmark/internal/suggest"
)

// InsertBookmark stores a bookmark and its tags in one transaction. The
// bookmark's ID, CreatedAt and derived domain are filled in on success.
// Tag names are normalized to lowercase and deduplicated.
func (db *DB) InsertBookmark(ctx context.Context, b *models.Bookmark) error {
	start := time.Now()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	domain := suggest.Hostname(b.URL)
	b.Tags = normalizeTags(b.Tags)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), err)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	row := tx.QueryRowContext(ctx,
		`INSERT INTO bookmarks (user_id, url, title, domain, click_count, created_at)
		 VALUES (?, ?, ?, ?, 0, ?) RETURNING id`,
		b.UserID, b.URL, b.Title, domain, b.CreatedAt,
	)
	if err := row.Scan(&b.ID); err != nil {
		metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), err)
		return fmt.Errorf("insert bookmark: %w", err)
	}

	for _, name := range b.Tags {
		tagID, err := ensureTagTx(ctx, tx, b.UserID, name)
		if err != nil {
			metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), err)
			return fmt.Errorf("ensure tag %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bookmark_tags (bookmark_id, tag_id) VALUES (?, ?)`,
			b.ID, tagID,
		); err != nil {
			metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), err)
			return fmt.Errorf("attach tag %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), err)
		return fmt.Errorf("commit bookmark: %w", err)
	}

	metrics.RecordDBQuery("insert", "bookmarks", time.Since(start), nil)
	return nil
}

// ensureTagTx finds or creates a tag inside a transaction.
func ensureTagTx(ctx context.Context, tx *sql.Tx, userID int64, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM tags WHERE user_id = ? AND name = ?`, userID, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO tags (user_id, name) VALUES (?, ?) RETURNING id`, userID, name,
	).Scan(&id)
	return id, err
}

// GetBookmark fetches one bookmark with its tags. Returns ErrNotFound
// when the bookmark does not exist or belongs to another user.
func (db *DB) GetBookmark(ctx context.Context, userID, id int64) (*models.Bookmark, error) {
	start := time.Now()

	b := &models.Bookmark{}
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, url, title, click_count, created_at
		 FROM bookmarks WHERE user_id = ? AND id = ?`,
		userID, id,
	).Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.ClickCount, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("select bookmark: %w", err)
	}

	tags, err := db.tagsForBookmarks(ctx, []int64{b.ID})
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, err
	}
	b.Tags = tags[b.ID]
	if b.Tags == nil {
		b.Tags = []string{}
	}

	metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
	return b, nil
}

// ListBookmarks returns a page of the user's bookmarks, newest first.
func (db *DB) ListBookmarks(ctx context.Context, userID int64, limit, offset int) ([]models.Bookmark, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, url, title, click_count, created_at
		 FROM bookmarks WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	bookmarks := make([]models.Bookmark, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.ClickCount, &b.CreatedAt); err != nil {
			metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		b.Tags = []string{}
		bookmarks = append(bookmarks, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}

	tagsByID, err := db.tagsForBookmarks(ctx, ids)
	if err != nil {
		metrics.RecordDBQuery("select", "bookmarks", time.Since(start), err)
		return nil, err
	}
	for i := range bookmarks {
		if tags, ok := tagsByID[bookmarks[i].ID]; ok {
			bookmarks[i].Tags = tags
		}
	}

	metrics.RecordDBQuery("select", "bookmarks", time.Since(start), nil)
	return bookmarks, nil
}

// tagsForBookmarks loads tag names for a set of bookmark IDs.
func (db *DB) tagsForBookmarks(ctx context.Context, ids []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(
		`SELECT bt.bookmark_id, t.name
		 FROM bookmark_tags bt
		 JOIN tags t ON t.id = bt.tag_id
		 WHERE bt.bookmark_id IN (%s)
		 ORDER BY t.name`,
		placeholders(len(ids)),
	)
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select bookmark tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var bookmarkID int64
		var name string
		if err := rows.Scan(&bookmarkID, &name); err != nil {
			return nil, fmt.Errorf("scan bookmark tag: %w", err)
		}
		result[bookmarkID] = append(result[bookmarkID], name)
	}
	return result, rows.Err()
}

// IncrementClickCount records a click on a bookmark. Returns ErrNotFound
// when the bookmark does not exist or belongs to another user.
func (db *DB) IncrementClickCount(ctx context.Context, userID, id int64) error {
	start := time.Now()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE bookmarks SET click_count = click_count + 1 WHERE user_id = ? AND id = ?`,
		userID, id,
	)
	if err != nil {
		metrics.RecordDBQuery("update", "bookmarks", time.Since(start), err)
		return fmt.Errorf("increment click count: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		metrics.RecordDBQuery("update", "bookmarks", time.Since(start), err)
		return fmt.Errorf("click count rows affected: %w", err)
	}
	metrics.RecordDBQuery("update", "bookmarks", time.Since(start), nil)
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTags returns the user's tags with usage counts, most used first.
func (db *DB) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT t.id, t.name, COUNT(bt.bookmark_id)
		 FROM tags t
		 LEFT JOIN bookmark_tags bt ON bt.tag_id = t.id
		 WHERE t.user_id = ?
		 GROUP BY t.id, t.name
		 ORDER BY COUNT(bt.bookmark_id) DESC, t.name ASC`,
		userID,
	)
	if err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tags := make([]models.Tag, 0, 32)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.BookmarkCount); err != nil {
			metrics.RecordDBQuery("select", "tags", time.Since(start), err)
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("select", "tags", time.Since(start), err)
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	metrics.RecordDBQuery("select", "tags", time.Since(start), nil)
	return tags, nil
}

// normalizeTags lowercases, trims and deduplicates tag names, preserving
// first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		name := strings.ToLower(strings.TrimSpace(tag))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// placeholders builds a "?, ?, ?" list of the given length.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
