// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import "fmt"

// Weights defines the relative contribution of each scoring signal.
// Weights are not required to sum to 1; setting a weight to zero disables
// its signal entirely.
type Weights struct {
	// Domain is the weight of the domain-affinity signal.
	Domain float64 `json:"domain" koanf:"domain"`

	// Activity is the weight of the recent-activity signal.
	Activity float64 `json:"activity" koanf:"activity"`

	// Similarity is the weight of the URL-similarity signal.
	Similarity float64 `json:"similarity" koanf:"similarity"`
}

// Config contains all configuration for the suggestion engine.
type Config struct {
	// Weights defines the signal mix for tag scoring.
	Weights Weights `json:"weights" koanf:"weights"`

	// ActivityWindowDays is the lookback window for the activity signal.
	// Default: 7.
	ActivityWindowDays int `json:"activity_window_days" koanf:"activity_window_days"`

	// SampleSize is the maximum number of bookmarks the similarity
	// scorer inspects. Default: 100.
	SampleSize int `json:"sample_size" koanf:"sample_size"`

	// MinScore filters out candidates at or below this aggregate score.
	// Default: 0.1.
	MinScore float64 `json:"min_score" koanf:"min_score"`

	// DefaultLimit is the number of tag suggestions returned when the
	// caller does not specify one. Default: 10.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps the number of tag suggestions per request.
	// Default: 50.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`

	// TopTagLimit is how many of the user's most-used tags the cluster
	// builder considers. Default: 100.
	TopTagLimit int `json:"top_tag_limit" koanf:"top_tag_limit"`

	// TopDomainLimit is how many domains the domain collection builder
	// emits. Default: 5.
	TopDomainLimit int `json:"top_domain_limit" koanf:"top_domain_limit"`

	// FrequentClickThreshold is the click_count above which a bookmark
	// counts as frequently used. Default: 5.
	FrequentClickThreshold int `json:"frequent_click_threshold" koanf:"frequent_click_threshold"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Domain:     0.35,
			Activity:   0.40,
			Similarity: 0.25,
		},
		ActivityWindowDays:     7,
		SampleSize:             100,
		MinScore:               0.1,
		DefaultLimit:           10,
		MaxLimit:               50,
		TopTagLimit:            100,
		TopDomainLimit:         5,
		FrequentClickThreshold: 5,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Weights.Domain < 0 || c.Weights.Activity < 0 || c.Weights.Similarity < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", c.Weights)
	}
	if c.Weights.Domain == 0 && c.Weights.Activity == 0 && c.Weights.Similarity == 0 {
		return fmt.Errorf("at least one signal weight must be positive")
	}
	if c.ActivityWindowDays <= 0 {
		return fmt.Errorf("activity_window_days must be positive, got %d", c.ActivityWindowDays)
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	if c.MinScore < 0 || c.MinScore >= 1 {
		return fmt.Errorf("min_score must be in [0, 1), got %g", c.MinScore)
	}
	if c.DefaultLimit <= 0 || c.MaxLimit <= 0 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("invalid limits: default %d, max %d", c.DefaultLimit, c.MaxLimit)
	}
	if c.TopTagLimit <= 0 {
		return fmt.Errorf("top_tag_limit must be positive, got %d", c.TopTagLimit)
	}
	if c.TopDomainLimit <= 0 {
		return fmt.Errorf("top_domain_limit must be positive, got %d", c.TopDomainLimit)
	}
	if c.FrequentClickThreshold < 0 {
		return fmt.Errorf("frequent_click_threshold must be non-negative, got %d", c.FrequentClickThreshold)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
