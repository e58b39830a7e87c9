// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaStatements defines the Linkmark schema. Statements are idempotent
// so startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS seq_bookmark_id START 1`,
	`CREATE SEQUENCE IF NOT EXISTS seq_tag_id START 1`,

	`CREATE TABLE IF NOT EXISTS bookmarks (
		id          BIGINT PRIMARY KEY DEFAULT nextval('seq_bookmark_id'),
		user_id     BIGINT NOT NULL,
		url         VARCHAR NOT NULL,
		title       VARCHAR NOT NULL DEFAULT '',
		domain      VARCHAR NOT NULL DEFAULT '',
		click_count INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id      BIGINT PRIMARY KEY DEFAULT nextval('seq_tag_id'),
		user_id BIGINT NOT NULL,
		name    VARCHAR NOT NULL,
		UNIQUE (user_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS bookmark_tags (
		bookmark_id BIGINT NOT NULL,
		tag_id      BIGINT NOT NULL,
		PRIMARY KEY (bookmark_id, tag_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookmarks_user ON bookmarks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_user_domain ON bookmarks(user_id, domain)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_user_created ON bookmarks(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmark_tags_tag ON bookmark_tags(tag_id)`,
}

// createSchema creates the tables, sequences and indexes.
func (db *DB) createSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
