package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one campus menu page the ingest importer pulls specials from.
type Source struct {
	Name  string `yaml:"name" json:"name"`
	URL   string `yaml:"url" json:"url"`
	Place string `yaml:"place" json:"place"` // display name of the dining location
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Users struct {
		// DefaultEmail identifies the current user when a request carries
		// no ?user= parameter.
		DefaultEmail string `yaml:"default_email" json:"default_email"`
	} `yaml:"users" json:"users"`

	Ingest struct {
		Enabled         bool     `yaml:"enabled" json:"enabled"`
		IntervalSeconds int      `yaml:"interval_seconds" json:"interval_seconds"`
		Sources         []Source `yaml:"sources" json:"sources"`
	} `yaml:"ingest" json:"ingest"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"limits" json:"limits"`
}

// Default is the config written on first run when no default file ships
// alongside the binary.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38475
	cfg.App.DataDir = "."
	cfg.Users.DefaultEmail = "alex.j@campus.edu"
	cfg.Ingest.Enabled = false
	cfg.Ingest.IntervalSeconds = 3600
	cfg.Limits.RequestsPerSecond = 25
	cfg.Limits.Burst = 50
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
