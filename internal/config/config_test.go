package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Key != "" {
		t.Errorf("default API key = %q, want empty", cfg.API.Key)
	}
	if cfg.API.Endpoint != "" {
		t.Errorf("default endpoint = %q, want empty (public API)", cfg.API.Endpoint)
	}
	if !cfg.UI.ShowTitles {
		t.Error("default show_titles = false, want true")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("default log level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.Logging.File == "" {
		t.Error("default log file path is empty")
	}
}

func TestIsConfigured(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsConfigured() {
		t.Error("IsConfigured() = true with no API key")
	}

	cfg.API.Key = "abc123"
	if !cfg.IsConfigured() {
		t.Error("IsConfigured() = false with API key set")
	}
}
