// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

/*
Package database provides DuckDB-backed persistence for Linkmark.

# Architecture

The package wraps a single DuckDB connection pool behind the DB type.
Bookmark and tag CRUD lives on DB directly; the read-only statistics
queries the suggestion engine needs are exposed through SuggestionStore,
which implements the suggest.Store interface.

Schema:

  - bookmarks: saved URLs with a derived domain column, click count and
    creation timestamp
  - tags: per-user normalized tag names
  - bookmark_tags: many-to-many join between the two

The domain column is derived from the URL at insert time with
suggest.Hostname and backs the TopDomains grouping. The domain affinity
queries (CountBookmarksByDomain and friends) instead substring-match the
URL itself, so a docs.github.com bookmark still counts toward the
github.com affinity.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	store := database.NewSuggestionStore(db)
	engine, err := suggest.NewEngine(store, &cfg.Suggest, logger)

# Thread Safety

DB and SuggestionStore are safe for concurrent use; all access goes
through database/sql's connection pool.
*/
package database
