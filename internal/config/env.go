package config

import (
	"os"
	"strconv"
)

// applyEnv overlays environment variables on a loaded config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("OMINGARD_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("WEB_DIST"); v != "" {
		cfg.WebDist = v
	}
}
