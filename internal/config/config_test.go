package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.Watch.AlertSeconds != 5 || cfg.Watch.InsightSeconds != 15 {
		t.Fatalf("watch intervals = %d/%d, want 5/15", cfg.Watch.AlertSeconds, cfg.Watch.InsightSeconds)
	}
	if cfg.Baseline.BankBalance != 5000000 {
		t.Fatalf("bank balance = %v", cfg.Baseline.BankBalance)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Baseline.MonthlyRevenue = 900000
	cfg.Appearance.Theme = "flexoki-light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not written")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "$" || got.Baseline.MonthlyRevenue != 900000 || got.Appearance.Theme != "flexoki-light" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg", "finsaver") {
		t.Fatalf("default data dir = %q", got)
	}
	cfg.General.DataDir = "/var/lib/finsaver"
	if got := DataDir(cfg); got != "/var/lib/finsaver" {
		t.Fatalf("override data dir = %q", got)
	}
}
