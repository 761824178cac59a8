package config

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestValidate_RejectsBrokenApprovalWeights(t *testing.T) {
	cfg := Default()
	cfg.ApprovalDisuse.Pending = 0.5 // sum now 1.25
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for approval weights not summing to 1")
	}
}

func TestValidate_RejectsWindowReachingReferenceYear(t *testing.T) {
	cfg := Default()
	cfg.AcquisitionYearTo = cfg.Today.Year()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error when acquisition window reaches the reference year")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEED", "7")
	t.Setenv("REFERENCE_DATE", "2026-02-10")
	t.Setenv("CAMPUS", "SEOUL")
	t.Setenv("ACQ_YEAR_FROM", "2016")
	t.Setenv("ACQ_YEAR_TO", "2018")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("EXCEL_PATH", "/tmp/out.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}
	if !cfg.Today.Equal(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected reference date %v", cfg.Today)
	}
	if cfg.Campus != "SEOUL" || cfg.AcquisitionYearFrom != 2016 || cfg.AcquisitionYearTo != 2018 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.ExcelPath != "/tmp/out.xlsx" {
		t.Fatalf("output overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsMalformedSeed(t *testing.T) {
	t.Setenv("SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed SEED")
	}
}
