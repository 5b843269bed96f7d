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

func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("config validation failed:\n- %s", strings.Join(v.Errors, "\n- "))
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// NormalizeAndValidate returns a normalized copy of cfg together with every
// problem found.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string, lower bool) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			if lower {
				x = strings.ToLower(x)
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	tlds := make([]string, 0, len(out.Discovery.TLDs))
	for _, tld := range out.Discovery.TLDs {
		tlds = append(tlds, strings.TrimPrefix(strings.TrimSpace(tld), "."))
	}
	out.Discovery.TLDs = trimList(tlds, true)
	out.Discovery.CareerKeywords = trimList(out.Discovery.CareerKeywords, true)
	// "" is a valid prefix (bare domain), so prefixes are only deduped
	out.Discovery.Prefixes = dedupe(out.Discovery.Prefixes)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))

	// ---- Validation rules ----

	if out.HTTP.TimeoutSeconds <= 0 {
		res.addErr("http.timeout_seconds must be > 0")
	} else if out.HTTP.TimeoutSeconds > 30 {
		res.addWarn("http.timeout_seconds is high (%g); slow hosts will hold a worker that long per request.", out.HTTP.TimeoutSeconds)
	}
	if out.HTTP.RatePerHost < 0 {
		res.addErr("http.rate_per_host must be >= 0 (0 disables limiting)")
	}
	if out.HTTP.RatePerHost > 0 && out.HTTP.Burst <= 0 {
		res.addErr("http.burst must be > 0 when http.rate_per_host is set")
	}
	if out.HTTP.MaxBodyBytes < 0 {
		res.addErr("http.max_body_bytes must be >= 0")
	}

	if len(out.Discovery.TLDs) == 0 {
		res.addErr("discovery.tlds must list at least one TLD")
	}
	if len(out.Discovery.Prefixes) == 0 {
		res.addErr("discovery.prefixes must list at least one prefix (use \"\" for the bare domain)")
	}
	if len(out.Discovery.CareerKeywords) == 0 {
		res.addErr("discovery.career_keywords must list at least one keyword")
	}
	if out.Discovery.MaxJobs <= 0 {
		res.addErr("discovery.max_jobs must be > 0")
	} else if out.Discovery.MaxJobs > 20 {
		res.addWarn("discovery.max_jobs is %d; the report gets three columns per job.", out.Discovery.MaxJobs)
	}

	if out.Dispatch.Workers <= 0 {
		res.addErr("dispatch.workers must be > 0")
	} else if out.Dispatch.Workers > 100 {
		res.addWarn("dispatch.workers is very high (%d) and may trip rate limits.", out.Dispatch.Workers)
	}

	if strings.TrimSpace(out.Report.DataSheet) == "" {
		res.addErr("report.data_sheet is required")
	}
	if strings.TrimSpace(out.Report.MethodologySheet) == "" {
		res.addErr("report.methodology_sheet is required")
	}
	if strings.EqualFold(strings.TrimSpace(out.Report.DataSheet), strings.TrimSpace(out.Report.MethodologySheet)) {
		res.addErr("report.data_sheet and report.methodology_sheet must differ")
	}

	if out.Store.Enabled && strings.TrimSpace(out.Store.Path) == "" {
		res.addErr("store.path is required when store.enabled=true")
	}
	if out.Store.CacheDomains && !out.Store.Enabled {
		res.addWarn("store.cache_domains has no effect while store.enabled=false")
	}

	if !logLevels[out.Log.Level] {
		res.addErr("log.level must be one of debug, info, warn, error (got %q)", out.Log.Level)
	}

	return out, res
}

func dedupe(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.ToLower(strings.TrimSpace(x))
		if seen[x] {
			continue
		}
		seen[x] = true
		ys = append(ys, x)
	}
	return ys
}
