package config

import (
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.RandEnabled {
		t.Errorf("New() should default RandEnabled to false")
	}
	if c.MaxDepth != defaultMaxDepth {
		t.Errorf("New() should default MaxDepth to %d, got %d", defaultMaxDepth, c.MaxDepth)
	}
}

func TestOptions(t *testing.T) {
	c := New(WithRandEnabled(true), WithMaxDepth(100))
	if !c.RandEnabled {
		t.Errorf("WithRandEnabled(true) should set RandEnabled")
	}
	if c.MaxDepth != 100 {
		t.Errorf("WithMaxDepth(100) should set MaxDepth, got %d", c.MaxDepth)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalx.yaml")
	original := New(WithRandEnabled(true), WithMaxDepth(512))
	if err := Save(path, original); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.RandEnabled != original.RandEnabled {
		t.Errorf("RandEnabled = %v, want %v", loaded.RandEnabled, original.RandEnabled)
	}
	if loaded.MaxDepth != original.MaxDepth {
		t.Errorf("MaxDepth = %v, want %v", loaded.MaxDepth, original.MaxDepth)
	}
}
