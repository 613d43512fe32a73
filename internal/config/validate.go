package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes, then checks the config the UI is
// about to save. Errors block the save, warnings don't.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// Normalize sources: drop blanks, dedupe by name.
	seen := map[string]bool{}
	var sources []Source
	for _, s := range out.Ingest.Sources {
		s.Name = strings.TrimSpace(s.Name)
		s.URL = strings.TrimSpace(s.URL)
		s.Place = strings.TrimSpace(s.Place)
		if s.Name == "" && s.URL == "" && s.Place == "" {
			continue
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			res.addWarn("duplicate ingest source %q dropped", s.Name)
			continue
		}
		seen[key] = true
		sources = append(sources, s)
	}
	out.Ingest.Sources = sources
	out.Users.DefaultEmail = strings.TrimSpace(out.Users.DefaultEmail)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Ingest.Enabled {
		if out.Ingest.IntervalSeconds <= 0 {
			res.addErr("ingest.interval_seconds must be > 0 when ingest is enabled")
		} else if out.Ingest.IntervalSeconds < 300 {
			res.addWarn("ingest.interval_seconds is very low (%d); menu pages rarely change that often.", out.Ingest.IntervalSeconds)
		}
		if len(out.Ingest.Sources) == 0 {
			res.addWarn("ingest is enabled but has no sources; runs will import nothing.")
		}
	}
	for i, s := range out.Ingest.Sources {
		if s.Name == "" {
			res.addErr("ingest.sources[%d].name is required", i)
		}
		if s.URL == "" {
			res.addErr("ingest.sources[%d].url is required", i)
		} else if !strings.HasPrefix(s.URL, "http://") && !strings.HasPrefix(s.URL, "https://") {
			res.addErr("ingest.sources[%d].url must be http(s)", i)
		}
		if s.Place == "" {
			res.addErr("ingest.sources[%d].place is required", i)
		}
	}

	if out.Limits.RequestsPerSecond <= 0 {
		res.addErr("limits.requests_per_second must be > 0")
	}
	if out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0")
	}

	if out.Users.DefaultEmail == "" {
		res.addWarn("users.default_email is empty; requests without ?user= will be rejected.")
	}

	return out, res
}
