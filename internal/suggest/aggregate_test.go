// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"context"
	"math"
	"testing"
)

func aggregateFixture() *fakeStore {
	return &fakeStore{bookmarks: []fakeBookmark{
		{id: 1, url: "https://example.com/a", title: "Go intro", tags: []string{"golang"}, createdAt: daysAgo(2)},
		{id: 2, url: "https://example.com/b", title: "Go web", tags: []string{"golang", "web"}, createdAt: daysAgo(3)},
		{id: 3, url: "https://example.com/c", title: "CSS tricks", tags: []string{"web"}, createdAt: daysAgo(30)},
	}}
}

func TestAggregate(t *testing.T) {
	engine := newTestEngine(t, aggregateFixture())
	scores, ev := engine.Aggregate(context.Background(), 1, "https://example.com/intro-to-golang", "golang")

	wantDomain := (2.0 / 3.0) * (3.0 / 100.0)
	if !almostEqual(scores.DomainScore, wantDomain) {
		t.Errorf("DomainScore = %g, want %g", scores.DomainScore, wantDomain)
	}

	// Both bookmarks inside the 7-day window carry the tag, so the boosted
	// frequency clamps at 1.
	if !almostEqual(scores.ActivityScore, 1) {
		t.Errorf("ActivityScore = %g, want 1", scores.ActivityScore)
	}

	// The "example" token matches all three bookmarks, two carry the tag.
	wantSimilarity := (2.0 / 3.0) * math.Log(3) / 10
	if !almostEqual(scores.SimilarityScore, wantSimilarity) {
		t.Errorf("SimilarityScore = %g, want %g", scores.SimilarityScore, wantSimilarity)
	}

	w := engine.Config().Weights
	wantAggregate := math.Min(wantDomain*w.Domain+1*w.Activity+wantSimilarity*w.Similarity, 1)
	if !almostEqual(scores.AggregateScore, wantAggregate) {
		t.Errorf("AggregateScore = %g, want %g", scores.AggregateScore, wantAggregate)
	}

	wantSources := ScoreSources{Domain: false, Activity: true, Similarity: false}
	if scores.Sources != wantSources {
		t.Errorf("Sources = %+v, want %+v", scores.Sources, wantSources)
	}

	wantEv := Evidence{DomainBookmarks: 3, DomainTagged: 2, RecentTagged: 2}
	if ev != wantEv {
		t.Errorf("Evidence = %+v, want %+v", ev, wantEv)
	}
}

func TestAggregateUnparseableURL(t *testing.T) {
	engine := newTestEngine(t, aggregateFixture())
	scores, ev := engine.Aggregate(context.Background(), 1, "not-a-url", "golang")

	if scores != (ScoreResult{}) {
		t.Errorf("Aggregate() on unparseable URL = %+v, want zero result", scores)
	}
	if ev != (Evidence{}) {
		t.Errorf("Aggregate() on unparseable URL evidence = %+v, want zero", ev)
	}
}

func TestAggregateZeroWeightSkipsSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Domain: 1, Activity: 0, Similarity: 0}

	engine, err := NewEngine(aggregateFixture(), cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	scores, ev := engine.Aggregate(context.Background(), 1, "https://example.com/x", "golang")
	if scores.ActivityScore != 0 || scores.SimilarityScore != 0 {
		t.Errorf("disabled signals scored: activity %g, similarity %g", scores.ActivityScore, scores.SimilarityScore)
	}
	if ev.RecentTagged != 0 {
		t.Errorf("disabled activity signal produced evidence: %d", ev.RecentTagged)
	}

	wantAggregate := (2.0 / 3.0) * (3.0 / 100.0)
	if !almostEqual(scores.AggregateScore, wantAggregate) {
		t.Errorf("AggregateScore = %g, want %g", scores.AggregateScore, wantAggregate)
	}
}

func TestAggregateStoreFailureDegradesToZero(t *testing.T) {
	engine := newTestEngine(t, &fakeStore{fail: true})
	scores, _ := engine.Aggregate(context.Background(), 1, "https://example.com/x", "golang")

	if scores.AggregateScore != 0 {
		t.Errorf("AggregateScore on failing store = %g, want 0", scores.AggregateScore)
	}
	if scores.Sources != (ScoreSources{}) {
		t.Errorf("Sources on failing store = %+v, want none", scores.Sources)
	}
}

func TestTopSource(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreResult
		want   string
	}{
		{
			name:   "domain dominates",
			scores: ScoreResult{DomainScore: 0.9, ActivityScore: 0.5, SimilarityScore: 0.1},
			want:   sourceDomain,
		},
		{
			name:   "activity dominates",
			scores: ScoreResult{DomainScore: 0.1, ActivityScore: 0.8, SimilarityScore: 0.3},
			want:   sourceActivity,
		},
		{
			name:   "similarity dominates",
			scores: ScoreResult{DomainScore: 0.1, ActivityScore: 0.2, SimilarityScore: 0.7},
			want:   sourceSimilarity,
		},
		{
			name:   "three-way tie goes to domain",
			scores: ScoreResult{DomainScore: 0.5, ActivityScore: 0.5, SimilarityScore: 0.5},
			want:   sourceDomain,
		},
		{
			name:   "activity similarity tie goes to activity",
			scores: ScoreResult{DomainScore: 0.1, ActivityScore: 0.5, SimilarityScore: 0.5},
			want:   sourceActivity,
		},
		{
			name:   "all zero goes to domain",
			scores: ScoreResult{},
			want:   sourceDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topSource(tt.scores); got != tt.want {
				t.Errorf("topSource(%+v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreResult
		ev     Evidence
		want   string
	}{
		{
			name:   "domain reason with rounded percentage",
			scores: ScoreResult{DomainScore: 0.9},
			ev:     Evidence{DomainBookmarks: 3, DomainTagged: 2},
			want:   "67% of example.com bookmarks use this tag",
		},
		{
			name:   "domain reason with zero bookmarks",
			scores: ScoreResult{DomainScore: 0.2},
			ev:     Evidence{},
			want:   "0% of example.com bookmarks use this tag",
		},
		{
			name:   "activity reason",
			scores: ScoreResult{ActivityScore: 0.9},
			ev:     Evidence{RecentTagged: 4},
			want:   "Added 4 bookmarks with this tag in the last 7 days",
		},
		{
			name:   "similarity reason",
			scores: ScoreResult{SimilarityScore: 0.9},
			ev:     Evidence{},
			want:   `Similar to other bookmarks you've tagged with "golang"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := explain("golang", "example.com", tt.scores, tt.ev, 7); got != tt.want {
				t.Errorf("explain() = %q, want %q", got, tt.want)
			}
		})
	}
}
