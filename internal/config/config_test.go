package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BANK_LOG_LEVEL", "")
	t.Setenv("BANK_CHART_OUTPUT", "")
	t.Setenv("BANK_NUMBER_SEED", "")

	cfg := Load()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ChartOutput != "balance.html" {
		t.Errorf("ChartOutput = %q, want balance.html", cfg.ChartOutput)
	}
	if cfg.NumberSeed != 999 {
		t.Errorf("NumberSeed = %d, want 999", cfg.NumberSeed)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BANK_LOG_LEVEL", "debug")
	t.Setenv("BANK_CHART_OUTPUT", "/tmp/out.html")
	t.Setenv("BANK_NUMBER_SEED", "5000")

	cfg := Load()
	if cfg.LogLevel != "debug" || cfg.ChartOutput != "/tmp/out.html" || cfg.NumberSeed != 5000 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_BadSeedFallsBack(t *testing.T) {
	t.Setenv("BANK_NUMBER_SEED", "not-a-number")

	if got := Load().NumberSeed; got != 999 {
		t.Errorf("NumberSeed = %d, want fallback 999", got)
	}
}
