package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string `yaml:"addr" json:"addr"`
	Seed    int64  `yaml:"seed" json:"seed"`
	WebDist string `yaml:"web_dist" json:"web_dist"`
}

func Default() Config {
	return Config{
		Addr:    ":8080",
		Seed:    0, // time-derived
		WebDist: "web/dist",
	}
}

// Load reads a YAML config file, falling back to defaults when the
// file does not exist. Env overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}
