// Package config reads process configuration from the environment.
// cmd mains load a .env file first (godotenv), so local overrides work
// without exporting anything.
package config

import (
	"os"
	"strconv"
)

// Config holds all tunables of the bank CLI.
type Config struct {
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string

	// ChartOutput is where the visualizer writes its HTML chart.
	ChartOutput string

	// NumberSeed is the floor for generated account numbers.
	NumberSeed int
}

// Load reads the configuration with sensible defaults.
func Load() Config {
	return Config{
		LogLevel:    getEnv("BANK_LOG_LEVEL", "info"),
		ChartOutput: getEnv("BANK_CHART_OUTPUT", "balance.html"),
		NumberSeed:  getEnvInt("BANK_NUMBER_SEED", 999),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
