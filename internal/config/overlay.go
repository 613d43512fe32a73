package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// OverlaySources applies an optional sources.yml sitting next to the main
// config, so menu source lists can be managed separately from settings.
func OverlaySources(cfg *Config, sourcesPath string) error {
	b, err := os.ReadFile(sourcesPath)
	if err != nil {
		// Missing sources file should not kill startup
		return nil
	}

	var sf sourcesFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return err
	}

	if len(sf.Sources) > 0 {
		cfg.Ingest.Sources = sf.Sources
	}
	return nil
}
