// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package database

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/linkmark/internal/config"
	"github.com/tomtom215/linkmark/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func mustInsert(t *testing.T, db *DB, b *models.Bookmark) {
	t.Helper()
	if err := db.InsertBookmark(context.Background(), b); err != nil {
		t.Fatalf("InsertBookmark(%q) error = %v", b.URL, err)
	}
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n)
}

func TestNewNilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) expected error, got nil")
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestInsertAndGetBookmark(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := &models.Bookmark{
		UserID: 1,
		URL:    "https://www.github.com/golang/go",
		Title:  "The Go repository",
		Tags:   []string{"Golang", "  github ", "golang", ""},
	}
	mustInsert(t, db, b)

	if b.ID == 0 {
		t.Error("InsertBookmark() did not set ID")
	}
	if b.CreatedAt.IsZero() {
		t.Error("InsertBookmark() did not set CreatedAt")
	}
	wantTags := []string{"golang", "github"}
	if !reflect.DeepEqual(b.Tags, wantTags) {
		t.Errorf("normalized tags = %v, want %v", b.Tags, wantTags)
	}

	got, err := db.GetBookmark(ctx, 1, b.ID)
	if err != nil {
		t.Fatalf("GetBookmark() error = %v", err)
	}
	if got.URL != b.URL || got.Title != b.Title {
		t.Errorf("GetBookmark() = %+v, want url %q title %q", got, b.URL, b.Title)
	}
	if got.ClickCount != 0 {
		t.Errorf("ClickCount = %d, want 0", got.ClickCount)
	}
	// Tags come back alphabetical from the join.
	if !reflect.DeepEqual(got.Tags, []string{"github", "golang"}) {
		t.Errorf("GetBookmark() tags = %v, want [github golang]", got.Tags)
	}

	store := NewSuggestionStore(db)
	count, err := store.CountBookmarksByDomain(ctx, 1, "github.com")
	if err != nil {
		t.Fatalf("CountBookmarksByDomain() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountBookmarksByDomain(github.com) = %d, want 1", count)
	}
}

func TestGetBookmarkNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := &models.Bookmark{UserID: 1, URL: "https://example.com"}
	mustInsert(t, db, b)

	if _, err := db.GetBookmark(ctx, 1, b.ID+999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBookmark(missing) error = %v, want ErrNotFound", err)
	}
	// Bookmarks are scoped per user.
	if _, err := db.GetBookmark(ctx, 2, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBookmark(other user) error = %v, want ErrNotFound", err)
	}
}

func TestListBookmarks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	urls := []struct {
		url  string
		tags []string
		age  int
	}{
		{"https://example.com/oldest", []string{"web"}, 3},
		{"https://example.com/middle", nil, 2},
		{"https://example.com/newest", []string{"web", "blog"}, 1},
	}
	for _, u := range urls {
		mustInsert(t, db, &models.Bookmark{
			UserID:    1,
			URL:       u.url,
			Tags:      u.tags,
			CreatedAt: daysAgo(u.age),
		})
	}
	mustInsert(t, db, &models.Bookmark{UserID: 2, URL: "https://other-user.example.com"})

	got, err := db.ListBookmarks(ctx, 1, 10, 0)
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListBookmarks() returned %d bookmarks, want 3", len(got))
	}
	wantOrder := []string{
		"https://example.com/newest",
		"https://example.com/middle",
		"https://example.com/oldest",
	}
	for i, want := range wantOrder {
		if got[i].URL != want {
			t.Errorf("ListBookmarks()[%d].URL = %q, want %q", i, got[i].URL, want)
		}
	}
	if !reflect.DeepEqual(got[0].Tags, []string{"blog", "web"}) {
		t.Errorf("newest tags = %v, want [blog web]", got[0].Tags)
	}
	if !reflect.DeepEqual(got[1].Tags, []string{}) {
		t.Errorf("untagged bookmark tags = %v, want []", got[1].Tags)
	}

	page, err := db.ListBookmarks(ctx, 1, 1, 1)
	if err != nil {
		t.Fatalf("ListBookmarks(limit 1, offset 1) error = %v", err)
	}
	if len(page) != 1 || page[0].URL != "https://example.com/middle" {
		t.Errorf("ListBookmarks(limit 1, offset 1) = %+v, want the middle bookmark", page)
	}
}

func TestIncrementClickCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := &models.Bookmark{UserID: 1, URL: "https://example.com"}
	mustInsert(t, db, b)

	for i := 0; i < 3; i++ {
		if err := db.IncrementClickCount(ctx, 1, b.ID); err != nil {
			t.Fatalf("IncrementClickCount() error = %v", err)
		}
	}

	got, err := db.GetBookmark(ctx, 1, b.ID)
	if err != nil {
		t.Fatalf("GetBookmark() error = %v", err)
	}
	if got.ClickCount != 3 {
		t.Errorf("ClickCount = %d, want 3", got.ClickCount)
	}

	if err := db.IncrementClickCount(ctx, 1, b.ID+999); !errors.Is(err, ErrNotFound) {
		t.Errorf("IncrementClickCount(missing) error = %v, want ErrNotFound", err)
	}
	if err := db.IncrementClickCount(ctx, 2, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("IncrementClickCount(other user) error = %v, want ErrNotFound", err)
	}
}

func TestListTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	mustInsert(t, db, &models.Bookmark{UserID: 1, URL: "https://a.example.com", Tags: []string{"web", "golang"}})
	mustInsert(t, db, &models.Bookmark{UserID: 1, URL: "https://b.example.com", Tags: []string{"web"}})
	mustInsert(t, db, &models.Bookmark{UserID: 2, URL: "https://c.example.com", Tags: []string{"other"}})

	got, err := db.ListTags(ctx, 1)
	if err != nil {
		t.Fatalf("ListTags() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListTags() returned %d tags, want 2", len(got))
	}
	if got[0].Name != "web" || got[0].BookmarkCount != 2 {
		t.Errorf("ListTags()[0] = %+v, want web with 2 bookmarks", got[0])
	}
	if got[1].Name != "golang" || got[1].BookmarkCount != 1 {
		t.Errorf("ListTags()[1] = %+v, want golang with 1 bookmark", got[1])
	}
}

// seedSuggestionFixture inserts the bookmarks the suggestion store tests
// share: two recent github bookmarks, one old example.com bookmark and one
// bookmark belonging to another user.
func seedSuggestionFixture(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	clicked := &models.Bookmark{
		UserID:    1,
		URL:       "https://github.com/golang/go",
		Title:     "Go",
		Tags:      []string{"golang", "github"},
		CreatedAt: daysAgo(2),
	}
	mustInsert(t, db, clicked)
	for i := 0; i < 10; i++ {
		if err := db.IncrementClickCount(ctx, 1, clicked.ID); err != nil {
			t.Fatalf("IncrementClickCount() error = %v", err)
		}
	}

	mustInsert(t, db, &models.Bookmark{
		UserID:    1,
		URL:       "https://github.com/rust-lang/rust",
		Title:     "Rust",
		Tags:      []string{"rust", "github"},
		CreatedAt: daysAgo(3),
	})
	mustInsert(t, db, &models.Bookmark{
		UserID:    1,
		URL:       "https://www.example.com/post",
		Title:     "A post",
		Tags:      []string{"web"},
		CreatedAt: daysAgo(30),
	})
	mustInsert(t, db, &models.Bookmark{
		UserID:    2,
		URL:       "https://github.com/torvalds/linux",
		Tags:      []string{"golang"},
		CreatedAt: daysAgo(1),
	})
}

func TestSuggestionStoreDomainCounts(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		domain string
		want   int
	}{
		{"github", "github.com", 2},
		{"example with www stripped", "example.com", 1},
		{"unknown domain", "nothing.invalid", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.CountBookmarksByDomain(ctx, 1, tt.domain)
			if err != nil {
				t.Fatalf("CountBookmarksByDomain() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CountBookmarksByDomain(%q) = %d, want %d", tt.domain, got, tt.want)
			}
		})
	}

	got, err := store.CountBookmarksByDomainWithTag(ctx, 1, "github.com", "GitHub")
	if err != nil {
		t.Fatalf("CountBookmarksByDomainWithTag() error = %v", err)
	}
	if got != 2 {
		t.Errorf("CountBookmarksByDomainWithTag(github.com, GitHub) = %d, want 2", got)
	}
}

func TestSuggestionStoreDomainSubstringMatch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	mustInsert(t, db, &models.Bookmark{
		UserID: 1,
		URL:    "https://github.com/golang/go",
		Tags:   []string{"golang"},
	})
	mustInsert(t, db, &models.Bookmark{
		UserID: 1,
		URL:    "https://docs.github.com/en/actions",
		Tags:   []string{"ci"},
	})
	store := NewSuggestionStore(db)

	// Domain matching is a substring match over the URL, so a subdomain
	// bookmark counts toward the parent domain's affinity.
	count, err := store.CountBookmarksByDomain(ctx, 1, "github.com")
	if err != nil {
		t.Fatalf("CountBookmarksByDomain() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountBookmarksByDomain(github.com) = %d, want 2 (subdomain included)", count)
	}

	count, err = store.CountBookmarksByDomain(ctx, 1, "docs.github.com")
	if err != nil {
		t.Fatalf("CountBookmarksByDomain() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountBookmarksByDomain(docs.github.com) = %d, want 1", count)
	}

	tagged, err := store.CountBookmarksByDomainWithTag(ctx, 1, "github.com", "ci")
	if err != nil {
		t.Fatalf("CountBookmarksByDomainWithTag() error = %v", err)
	}
	if tagged != 1 {
		t.Errorf("CountBookmarksByDomainWithTag(github.com, ci) = %d, want 1", tagged)
	}

	dist, err := store.TagCountsForDomain(ctx, 1, "github.com")
	if err != nil {
		t.Fatalf("TagCountsForDomain() error = %v", err)
	}
	want := map[string]int{"golang": 1, "ci": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("TagCountsForDomain(github.com) = %v, want %v", dist, want)
	}
}

func TestSuggestionStoreRecency(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)
	ctx := context.Background()

	since := daysAgo(7)
	total, err := store.CountBookmarksSince(ctx, 1, since)
	if err != nil {
		t.Fatalf("CountBookmarksSince() error = %v", err)
	}
	if total != 2 {
		t.Errorf("CountBookmarksSince(7d) = %d, want 2", total)
	}

	tagged, err := store.CountBookmarksSinceWithTag(ctx, 1, since, "golang")
	if err != nil {
		t.Fatalf("CountBookmarksSinceWithTag() error = %v", err)
	}
	if tagged != 1 {
		t.Errorf("CountBookmarksSinceWithTag(7d, golang) = %d, want 1", tagged)
	}
}

func TestSuggestionStoreSampleBookmarks(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)

	refs, err := store.SampleBookmarks(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("SampleBookmarks() error = %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("SampleBookmarks() returned %d refs, want 2", len(refs))
	}
	if refs[0].URL != "https://github.com/golang/go" {
		t.Errorf("SampleBookmarks()[0].URL = %q, want the newest bookmark", refs[0].URL)
	}
	if !reflect.DeepEqual(refs[0].Tags, []string{"github", "golang"}) {
		t.Errorf("SampleBookmarks()[0].Tags = %v, want [github golang]", refs[0].Tags)
	}
	if !reflect.DeepEqual(refs[1].Tags, []string{"github", "rust"}) {
		t.Errorf("SampleBookmarks()[1].Tags = %v, want [github rust]", refs[1].Tags)
	}
}

func TestSuggestionStoreVocabulary(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)
	ctx := context.Background()

	names, err := store.TagNames(ctx, 1)
	if err != nil {
		t.Fatalf("TagNames() error = %v", err)
	}
	want := []string{"github", "golang", "rust", "web"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("TagNames() = %v, want %v", names, want)
	}

	top, err := store.TopTags(ctx, 1, 10)
	if err != nil {
		t.Fatalf("TopTags() error = %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("TopTags() returned %d tags, want 4", len(top))
	}
	if top[0].Name != "github" || top[0].Bookmarks != 2 {
		t.Errorf("TopTags()[0] = %+v, want github with 2 bookmarks", top[0])
	}
	// Ties break alphabetically.
	for i, name := range []string{"golang", "rust", "web"} {
		if top[i+1].Name != name || top[i+1].Bookmarks != 1 {
			t.Errorf("TopTags()[%d] = %+v, want %s with 1 bookmark", i+1, top[i+1], name)
		}
	}
}

func TestSuggestionStoreCountBookmarksWithAnyTag(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)
	ctx := context.Background()

	got, err := store.CountBookmarksWithAnyTag(ctx, 1, []string{"Golang", "rust"})
	if err != nil {
		t.Fatalf("CountBookmarksWithAnyTag() error = %v", err)
	}
	if got != 2 {
		t.Errorf("CountBookmarksWithAnyTag(golang, rust) = %d, want 2", got)
	}

	// Overlapping tags count distinct bookmarks once.
	got, err = store.CountBookmarksWithAnyTag(ctx, 1, []string{"golang", "github"})
	if err != nil {
		t.Fatalf("CountBookmarksWithAnyTag() error = %v", err)
	}
	if got != 2 {
		t.Errorf("CountBookmarksWithAnyTag(golang, github) = %d, want 2", got)
	}

	got, err = store.CountBookmarksWithAnyTag(ctx, 1, nil)
	if err != nil {
		t.Fatalf("CountBookmarksWithAnyTag(nil) error = %v", err)
	}
	if got != 0 {
		t.Errorf("CountBookmarksWithAnyTag(nil) = %d, want 0", got)
	}
}

func TestSuggestionStoreTagCountsForDomain(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)

	got, err := store.TagCountsForDomain(context.Background(), 1, "github.com")
	if err != nil {
		t.Fatalf("TagCountsForDomain() error = %v", err)
	}
	want := map[string]int{"github": 2, "golang": 1, "rust": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagCountsForDomain(github.com) = %v, want %v", got, want)
	}
}

func TestSuggestionStoreActivityCounts(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)
	ctx := context.Background()

	frequent, err := store.CountFrequentlyUsed(ctx, 1, 5)
	if err != nil {
		t.Fatalf("CountFrequentlyUsed() error = %v", err)
	}
	if frequent != 1 {
		t.Errorf("CountFrequentlyUsed(5) = %d, want 1", frequent)
	}

	unread, err := store.CountUnread(ctx, 1, daysAgo(7))
	if err != nil {
		t.Fatalf("CountUnread() error = %v", err)
	}
	if unread != 1 {
		t.Errorf("CountUnread(7d) = %d, want 1 (only the old example.com bookmark)", unread)
	}
}

func TestSuggestionStoreTopDomains(t *testing.T) {
	db := newTestDB(t)
	seedSuggestionFixture(t, db)
	store := NewSuggestionStore(db)

	got, err := store.TopDomains(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("TopDomains() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("TopDomains() returned %d domains, want 2", len(got))
	}
	if got[0].Domain != "github.com" || got[0].Bookmarks != 2 {
		t.Errorf("TopDomains()[0] = %+v, want github.com with 2 bookmarks", got[0])
	}
	if got[1].Domain != "example.com" || got[1].Bookmarks != 1 {
		t.Errorf("TopDomains()[1] = %+v, want example.com with 1 bookmark", got[1])
	}
}
