package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	t.Run("dedupes sources", func(t *testing.T) {
		cfg := Default()
		cfg.Ingest.Enabled = true
		cfg.Ingest.Sources = []Source{
			{Name: " wu-menu ", URL: "https://dining.campus.edu/wu", Place: "West Union Commons"},
			{Name: "WU-MENU", URL: "https://dining.campus.edu/wu2", Place: "West Union Commons"},
			{Name: "", URL: "", Place: ""},
		}
		out, vr := NormalizeAndValidate(cfg)
		if !vr.OK() {
			t.Fatalf("errors: %v", vr.Errors)
		}
		if len(out.Ingest.Sources) != 1 {
			t.Fatalf("sources = %+v, want 1 after dedupe", out.Ingest.Sources)
		}
		if out.Ingest.Sources[0].Name != "wu-menu" {
			t.Fatalf("name = %q, want trimmed", out.Ingest.Sources[0].Name)
		}
		if len(vr.Warnings) == 0 {
			t.Fatal("expected a duplicate warning")
		}
	})

	t.Run("rejects bad port", func(t *testing.T) {
		cfg := Default()
		cfg.App.Port = 0
		_, vr := NormalizeAndValidate(cfg)
		if vr.OK() {
			t.Fatal("expected error for port 0")
		}
	})

	t.Run("rejects non-http source url", func(t *testing.T) {
		cfg := Default()
		cfg.Ingest.Sources = []Source{{Name: "x", URL: "ftp://menu", Place: "Marketplace"}}
		_, vr := NormalizeAndValidate(cfg)
		if vr.OK() {
			t.Fatal("expected error for ftp url")
		}
	})

	t.Run("interval required when enabled", func(t *testing.T) {
		cfg := Default()
		cfg.Ingest.Enabled = true
		cfg.Ingest.IntervalSeconds = 0
		_, vr := NormalizeAndValidate(cfg)
		if vr.OK() {
			t.Fatal("expected error for zero interval")
		}
	})
}

func TestEnsureUserConfigWritesDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != Default().App.Port {
		t.Fatalf("port = %d", cfg.App.Port)
	}

	// Second call leaves the existing file alone.
	again, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if again != path {
		t.Fatalf("path changed: %q vs %q", again, path)
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := Default()
	cfg.App.Port = 4242
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Port != 4242 {
		t.Fatalf("port = %d", got.App.Port)
	}

	// A second save keeps a .bak of the previous version.
	cfg.App.Port = 4243
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("missing backup: %v", err)
	}

	cfg.App.Port = -1
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("invalid config should not save")
	}
}

func TestOverlaySources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yml")
	content := "sources:\n  - name: wu\n    url: https://dining.campus.edu/wu\n    place: West Union Commons\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := OverlaySources(&cfg, path); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Ingest.Sources) != 1 || cfg.Ingest.Sources[0].Name != "wu" {
		t.Fatalf("sources = %+v", cfg.Ingest.Sources)
	}

	// Missing overlay file is fine.
	cfg2 := Default()
	if err := OverlaySources(&cfg2, filepath.Join(dir, "nope.yml")); err != nil {
		t.Fatal(err)
	}
	if len(cfg2.Ingest.Sources) != 0 {
		t.Fatalf("sources = %+v", cfg2.Ingest.Sources)
	}
}
