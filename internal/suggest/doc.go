// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

// Package suggest implements the Smart Organization engine for bookmarks.
//
// # Architecture
//
// The engine combines three independent scoring signals to suggest tags
// for a URL:
//
//   - Domain Affinity: how often a tag appears on the user's bookmarks
//     from the same domain
//   - Activity: recency-weighted tag frequency among recently added bookmarks
//   - Similarity: tag frequency among bookmarks whose URL or tags overlap
//     with the target URL's tokens
//
// A weighted aggregation of the three sub-scores produces a single
// confidence value in [0, 1] together with source attribution (which
// signals contributed materially). On top of the scorers the engine
// derives tag clusters from co-occurring tags and "smart collection"
// descriptors from activity and domain statistics.
//
// # Design Principles
//
//   - Stateless: every call recomputes from the live store; no cached or
//     persisted scores
//   - Scoped: all computation reads a single user's data
//   - Degrading: store failures yield neutral results (zero scores, empty
//     lists), never errors - a broken suggestion must not break the page
//   - Deterministic: identical store state produces identical output
//
// # Usage
//
//	engine, err := suggest.NewEngine(store, suggest.DefaultConfig(), logger)
//	tags := engine.SuggestTags(ctx, userID, "https://github.com/x/y", 10)
//	cols := engine.SuggestCollections(ctx, userID)
//
// # Thread Safety
//
// The engine holds no mutable state beyond its configuration and is safe
// for concurrent use. The static domain catalog is immutable after process
// start and shared without synchronization.
package suggest
