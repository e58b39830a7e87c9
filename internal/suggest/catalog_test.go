// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantCategory string
		wantTags     []string
		wantPriority float64
	}{
		{
			name:         "known development domain",
			url:          "https://github.com/rs/zerolog",
			wantCategory: "development",
			wantTags:     []string{"github", "development", "code", "opensource", "repository"},
			wantPriority: 0.95,
		},
		{
			name:         "www prefix stripped",
			url:          "https://www.github.com/some/repo",
			wantCategory: "development",
			wantTags:     []string{"github", "development", "code", "opensource", "repository"},
			wantPriority: 0.95,
		},
		{
			name:         "subdomain falls back to parent entry",
			url:          "https://docs.python.org/3/library/",
			wantCategory: "reference",
			wantTags:     []string{"python", "documentation", "reference"},
			wantPriority: 0.9,
		},
		{
			name:         "deep subdomain of wikipedia",
			url:          "https://en.m.wikipedia.org/wiki/Go",
			wantCategory: "reference",
			wantTags:     []string{"wikipedia", "encyclopedia", "reference"},
			wantPriority: 0.9,
		},
		{
			name:         "unknown domain falls back to web with first label",
			url:          "https://sub.example.co.uk/page",
			wantCategory: "web",
			wantTags:     []string{"sub"},
			wantPriority: 0.6,
		},
		{
			name:         "unparseable url is unknown",
			url:          "not-a-url",
			wantCategory: "unknown",
			wantTags:     []string{},
			wantPriority: 0.3,
		},
		{
			name:         "empty url is unknown",
			url:          "",
			wantCategory: "unknown",
			wantTags:     []string{},
			wantPriority: 0.3,
		},
		{
			name:         "hacker news",
			url:          "https://news.ycombinator.com/item?id=1",
			wantCategory: "social",
			wantTags:     []string{"hackernews", "news", "technology"},
			wantPriority: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url)
			if got.Category != tt.wantCategory {
				t.Errorf("Classify(%q).Category = %q, want %q", tt.url, got.Category, tt.wantCategory)
			}
			if !reflect.DeepEqual(got.Tags, tt.wantTags) {
				t.Errorf("Classify(%q).Tags = %v, want %v", tt.url, got.Tags, tt.wantTags)
			}
			if got.Priority != tt.wantPriority {
				t.Errorf("Classify(%q).Priority = %g, want %g", tt.url, got.Priority, tt.wantPriority)
			}
		})
	}
}

func TestClassifyReturnsCopy(t *testing.T) {
	first := Classify("https://github.com/a")
	first.Tags[0] = "mutated"

	second := Classify("https://github.com/b")
	if second.Tags[0] != "github" {
		t.Errorf("catalog entry mutated through returned slice: got %q", second.Tags[0])
	}
}

func TestHostnameOf(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain host", url: "https://example.com/path", want: "example.com"},
		{name: "www stripped", url: "https://www.example.com", want: "example.com"},
		{name: "uppercase lowered", url: "https://GitHub.COM/x", want: "github.com"},
		{name: "port ignored", url: "http://localhost:8080/x", want: "localhost"},
		{name: "no scheme has no host", url: "example.com/path", want: ""},
		{name: "empty", url: "", want: ""},
		{name: "garbage", url: "://///", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hostnameOf(tt.url); got != tt.want {
				t.Errorf("hostnameOf(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
