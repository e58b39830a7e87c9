// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package suggest

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}

	sum := cfg.Weights.Domain + cfg.Weights.Activity + cfg.Weights.Similarity
	if !almostEqual(sum, 1) {
		t.Errorf("default weights sum = %g, want 1", sum)
	}
	if cfg.ActivityWindowDays != 7 {
		t.Errorf("ActivityWindowDays = %d, want 7", cfg.ActivityWindowDays)
	}
	if cfg.MinScore != 0.1 {
		t.Errorf("MinScore = %g, want 0.1", cfg.MinScore)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}, wantErr: false},
		{name: "negative weight", mutate: func(c *Config) { c.Weights.Domain = -0.1 }, wantErr: true},
		{name: "all weights zero", mutate: func(c *Config) { c.Weights = Weights{} }, wantErr: true},
		{name: "single positive weight", mutate: func(c *Config) { c.Weights = Weights{Activity: 1} }, wantErr: false},
		{name: "zero window", mutate: func(c *Config) { c.ActivityWindowDays = 0 }, wantErr: true},
		{name: "zero sample size", mutate: func(c *Config) { c.SampleSize = 0 }, wantErr: true},
		{name: "min score at one", mutate: func(c *Config) { c.MinScore = 1 }, wantErr: true},
		{name: "min score zero", mutate: func(c *Config) { c.MinScore = 0 }, wantErr: false},
		{name: "default limit above max", mutate: func(c *Config) { c.DefaultLimit = 100 }, wantErr: true},
		{name: "zero top tag limit", mutate: func(c *Config) { c.TopTagLimit = 0 }, wantErr: true},
		{name: "zero top domain limit", mutate: func(c *Config) { c.TopDomainLimit = 0 }, wantErr: true},
		{name: "negative click threshold", mutate: func(c *Config) { c.FrequentClickThreshold = -1 }, wantErr: true},
		{name: "zero click threshold", mutate: func(c *Config) { c.FrequentClickThreshold = 0 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Weights.Domain = 0.9
	clone.SampleSize = 5

	if cfg.Weights.Domain == 0.9 || cfg.SampleSize == 5 {
		t.Error("Clone() shares state with the original")
	}
}
