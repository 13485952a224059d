package domain

import "testing"

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Directories.Create != CreateAsk {
		t.Fatalf("expected interactive directory creation by default, got %q", cfg.Directories.Create)
	}
	if cfg.Progress.Steps != 100 {
		t.Fatalf("expected 100 progress steps, got %d", cfg.Progress.Steps)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"size too small":   func(c *Config) { c.Image.Size = 10 },
		"size too large":   func(c *Config) { c.Image.Size = 5000 },
		"quality zero":     func(c *Config) { c.Image.JPEGQuality = 0 },
		"quality too high": func(c *Config) { c.Image.JPEGQuality = 101 },
		"steps zero":       func(c *Config) { c.Progress.Steps = 0 },
		"bad recovery":     func(c *Config) { c.Image.Recovery = "max" },
		"bad policy":       func(c *Config) { c.Directories.Create = "never" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
