// Package rulepack loads and compiles the curated pattern tables from the
// embedded rules.json. The pack is versioned configuration data: rules can be
// added or retired without touching the scoring code that consumes them
package rulepack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
)

//go:embed rules.json
var embedded []byte

type rawRule struct {
	ID            string `json:"id"`
	Pattern       string `json:"pattern"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
}

type rawPack struct {
	Version    int            `json:"version"`
	Meta       map[string]any `json:"meta"`
	Suspicious []rawRule      `json:"suspicious"`
	Credible   []rawRule      `json:"credible"`
}

// Rule is one compiled matcher with a stable id
type Rule struct {
	ID string
	Re *regexp.Regexp
}

// Pack is the compiled rule pack. Immutable after Load; safe to share across
// concurrent requests
type Pack struct {
	Version int
	Meta    map[string]any

	// Suspicious rules flag sensational, absolute or fabricated language
	Suspicious []Rule
	// Credible rules flag attributed, institutional or measured language
	Credible []Rule
}

// Load parses and compiles the embedded rules.json.
// Rules compile case-insensitively unless flagged case_sensitive (structural
// rules like capital runs need the original casing)
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version <= 0 {
		return nil, fmt.Errorf("rulepack: missing or invalid version")
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
	}

	seen := make(map[string]struct{}, len(rp.Suspicious)+len(rp.Credible))
	compile := func(set string, raw []rawRule) ([]Rule, error) {
		out := make([]Rule, 0, len(raw))
		for _, r := range raw {
			if r.ID == "" {
				return nil, fmt.Errorf("rulepack: %s rule with empty id", set)
			}
			if _, dup := seen[r.ID]; dup {
				return nil, fmt.Errorf("rulepack: duplicate rule id %q", r.ID)
			}
			seen[r.ID] = struct{}{}

			pat := r.Pattern
			if !r.CaseSensitive {
				pat = "(?i)" + pat
			}
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("rulepack: compile %q: %w", r.ID, err)
			}
			out = append(out, Rule{ID: r.ID, Re: re})
		}
		return out, nil
	}

	var err error
	if p.Suspicious, err = compile("suspicious", rp.Suspicious); err != nil {
		return nil, err
	}
	if p.Credible, err = compile("credible", rp.Credible); err != nil {
		return nil, err
	}

	if len(p.Suspicious) == 0 || len(p.Credible) == 0 {
		return nil, fmt.Errorf("rulepack: both rule sets must be non-empty")
	}
	return p, nil
}
