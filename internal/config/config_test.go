package config

import (
	"testing"
	"time"

	"github.com/dgallion1/mdsort/internal/sorter"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MDSORT_API_KEY", "CASE_MODE", "WORKER_COUNT", "MAX_UPLOAD_BYTES", "STATS_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.CaseMode != sorter.ModeLower {
		t.Errorf("expected case mode %q, got %q", sorter.ModeLower, cfg.CaseMode)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("expected 10MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected 1h stats window, got %s", cfg.StatsWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MDSORT_API_KEY", "secret")
	t.Setenv("CASE_MODE", "fold")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("STATS_WINDOW", "5m")

	cfg := Load()
	if cfg.Port != "9000" || cfg.APIKey != "secret" || cfg.CaseMode != sorter.ModeFold {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.WorkerCount != 8 || cfg.MaxUploadBytes != 1024 || cfg.StatsWindow != 5*time.Minute {
		t.Errorf("unexpected limits %+v", cfg)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("STATS_WINDOW", "forever")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected fallback of 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("expected fallback upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected fallback stats window, got %s", cfg.StatsWindow)
	}
}

func TestValidate_RejectsUnknownCaseMode(t *testing.T) {
	t.Setenv("CASE_MODE", "upper")
	if err := Load().Validate(); err == nil {
		t.Error("expected error for unknown case mode")
	}
}
