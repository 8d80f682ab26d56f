package logger

import (
	"testing"
)

func TestNew(t *testing.T) {
	// Test with text format
	cfg := Config{
		Level:  "info",
		Format: "text",
	}
	logger := New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	// Test with json format
	cfg.Format = "json"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	// Test with invalid level (should default to info)
	cfg.Level = "invalid"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}
}

func TestWithComponent(t *testing.T) {
	logger := Default()
	componentLogger := logger.WithComponent("test-component")

	if componentLogger == nil {
		t.Error("Expected component logger to not be nil")
	}

	// Test chaining
	componentLogger2 := componentLogger.WithCatalog("VocaDB")
	if componentLogger2 == nil {
		t.Error("Expected chained logger to not be nil")
	}
}

func TestWithJob(t *testing.T) {
	logger := Default()
	jobLogger := logger.WithJob("job-123", "tag_album")

	if jobLogger == nil {
		t.Error("Expected job logger to not be nil")
	}
}

func TestWithAlbum(t *testing.T) {
	logger := Default()
	albumLogger := logger.WithAlbum("12345")

	if albumLogger == nil {
		t.Error("Expected album logger to not be nil")
	}
}

func TestLogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		cfg := Config{
			Level:  level,
			Format: "text",
		}
		logger := New(cfg)
		if logger == nil {
			t.Errorf("Expected logger to not be nil for level %s", level)
		}
	}
}
