package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		APIKey:         "key-123",
		Model:          "gemini-2.5-flash",
		Temperature:    0.4,
		HTTPTimeoutSec: 30,
		ListenAddr:     "127.0.0.1:9000",
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.APIKey != in.APIKey || out.Model != in.Model || out.ListenAddr != in.ListenAddr {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.HTTPTimeoutSec != 30 || out.Temperature != 0.4 {
		t.Fatalf("numeric fields mismatch: %+v", out)
	}
}

func TestLoadDefaults(t *testing.T) {
	// nonexistent file: defaults apply
	path := filepath.Join(t.TempDir(), "missing.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Model != "gemini-2.5-flash" {
		t.Fatalf("default model = %q", c.Model)
	}
	if c.HTTPTimeoutSec != 60 || c.ListenAddr == "" {
		t.Fatalf("defaults not applied: %+v", c)
	}
}
