package common

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Pipeline.DefaultLanguage != "no" {
		t.Errorf("default language: got %q", cfg.Pipeline.DefaultLanguage)
	}
	if cfg.Pipeline.TotalTolerance != "0.01" {
		t.Errorf("default tolerance: got %q", cfg.Pipeline.TotalTolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"english default", func(c *Config) { c.Pipeline.DefaultLanguage = "en" }, false},
		{"bad language", func(c *Config) { c.Pipeline.DefaultLanguage = "sv" }, true},
		{"threshold too high", func(c *Config) { c.Pipeline.LanguageThreshold = 1.5 }, true},
		{"threshold negative", func(c *Config) { c.Pipeline.LanguageThreshold = -0.1 }, true},
		{"bad tolerance", func(c *Config) { c.Pipeline.TotalTolerance = "cheap" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(): err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
