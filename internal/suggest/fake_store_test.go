// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// testLogger returns a no-op logger for engine tests.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// errStore is the injected failure for fake store error modes.
var errStore = errors.New("store unavailable")

// fakeBookmark is the in-memory bookmark record backing fakeStore.
type fakeBookmark struct {
	id        int64
	url       string
	title     string
	tags      []string
	createdAt time.Time
	clicks    int
}

// fakeStore is an in-memory Store implementation for engine tests. It
// derives every query from a flat bookmark list, mirroring the semantics
// the real store implements in SQL. Setting fail forces every method to
// return an error.
type fakeStore struct {
	bookmarks []fakeBookmark
	fail      bool
}

func (f *fakeStore) CountBookmarksByDomain(_ context.Context, _ int64, domain string) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if strings.Contains(b.url, domain) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountBookmarksByDomainWithTag(_ context.Context, _ int64, domain, tag string) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if strings.Contains(b.url, domain) && hasTag(b.tags, tag) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountBookmarksSince(_ context.Context, _ int64, since time.Time) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if !b.createdAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountBookmarksSinceWithTag(_ context.Context, _ int64, since time.Time, tag string) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if !b.createdAt.Before(since) && hasTag(b.tags, tag) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) SampleBookmarks(_ context.Context, _ int64, limit int) ([]BookmarkRef, error) {
	if f.fail {
		return nil, errStore
	}
	refs := make([]BookmarkRef, 0, len(f.bookmarks))
	for _, b := range f.bookmarks {
		if len(refs) >= limit {
			break
		}
		refs = append(refs, BookmarkRef{ID: b.id, URL: b.url, Title: b.title, Tags: b.tags})
	}
	return refs, nil
}

func (f *fakeStore) TagNames(_ context.Context, _ int64) ([]string, error) {
	if f.fail {
		return nil, errStore
	}
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, b := range f.bookmarks {
		for _, t := range b.tags {
			key := strings.ToLower(t)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				names = append(names, t)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) TopTags(_ context.Context, _ int64, limit int) ([]TagCount, error) {
	if f.fail {
		return nil, errStore
	}
	counts := make(map[string]int)
	for _, b := range f.bookmarks {
		for _, t := range b.tags {
			counts[strings.ToLower(t)]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	var id int64
	for name, n := range counts {
		id++
		out = append(out, TagCount{ID: id, Name: name, Bookmarks: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bookmarks != out[j].Bookmarks {
			return out[i].Bookmarks > out[j].Bookmarks
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CountBookmarksWithAnyTag(_ context.Context, _ int64, tags []string) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		for _, t := range tags {
			if hasTag(b.tags, t) {
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeStore) TagCountsForDomain(_ context.Context, _ int64, domain string) (map[string]int, error) {
	if f.fail {
		return nil, errStore
	}
	dist := make(map[string]int)
	for _, b := range f.bookmarks {
		if !strings.Contains(b.url, domain) {
			continue
		}
		for _, t := range b.tags {
			dist[strings.ToLower(t)]++
		}
	}
	return dist, nil
}

func (f *fakeStore) CountFrequentlyUsed(_ context.Context, _ int64, minClicks int) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if b.clicks > minClicks {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountUnread(_ context.Context, _ int64, olderThan time.Time) (int, error) {
	if f.fail {
		return 0, errStore
	}
	n := 0
	for _, b := range f.bookmarks {
		if b.clicks == 0 && b.createdAt.Before(olderThan) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) TopDomains(_ context.Context, _ int64, limit int) ([]DomainCount, error) {
	if f.fail {
		return nil, errStore
	}
	counts := make(map[string]int)
	for _, b := range f.bookmarks {
		if host := hostnameOf(b.url); host != "" {
			counts[host]++
		}
	}
	out := make([]DomainCount, 0, len(counts))
	for domain, n := range counts {
		out = append(out, DomainCount{Domain: domain, Bookmarks: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bookmarks != out[j].Bookmarks {
			return out[i].Bookmarks > out[j].Bookmarks
		}
		return out[i].Domain < out[j].Domain
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// newTestEngine builds an engine over the fake store with default config
// and a silenced logger.
func newTestEngine(t interface{ Fatalf(string, ...interface{}) }, store Store) *Engine {
	engine, err := NewEngine(store, DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}
