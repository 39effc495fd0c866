// Package patterns evaluates the rule pack plus structural format checks
// against one normalized text. Pure rule evaluation: no learned parameters,
// no state, no side effects
package patterns

import (
	"strings"
	"unicode"

	"clariflo/internal/core/normalize"
	"clariflo/internal/core/rulepack"
)

// Structural thresholds. The minimum-letter gate keeps short shouty inputs
// like "OK GO" from flagging as excessive capitals
const (
	// CapitalRatioThreshold flags text whose capital-letter share exceeds it
	CapitalRatioThreshold = 0.3
	// CapitalMinLetters is the minimum letter count before the ratio applies
	CapitalMinLetters = 20

	// PunctRunLength flags any run of this many terminal marks ("!!!", "???")
	PunctRunLength = 3
	// PunctRatioThreshold flags text whose punctuation share exceeds it
	PunctRatioThreshold = 0.2
)

// Findings is the rule-evaluation half of the analysis details
type Findings struct {
	// Suspicious and Credible count distinct rules that matched, not raw
	// occurrences: repeating one phrase ten times still counts once
	Suspicious int
	Credible   int

	// SuspiciousRules and CredibleRules carry the matched rule ids, in pack
	// order, for the explanation layer
	SuspiciousRules []string
	CredibleRules   []string

	ExcessiveCapitals    bool
	ExcessivePunctuation bool
}

// Detector scans normalized text against a compiled rule pack
type Detector struct {
	pack *rulepack.Pack
}

// New constructs a Detector over a loaded pack
func New(p *rulepack.Pack) *Detector {
	if p == nil {
		panic("patterns.Detector requires a non nil rulepack")
	}
	return &Detector{pack: p}
}

// Scan evaluates every rule and the structural checks against t.Clean.
// Rules read the original-case view so casing-sensitive rules keep working
func (d *Detector) Scan(t normalize.Text) Findings {
	var f Findings

	for _, r := range d.pack.Suspicious {
		if r.Re.MatchString(t.Clean) {
			f.Suspicious++
			f.SuspiciousRules = append(f.SuspiciousRules, r.ID)
		}
	}
	for _, r := range d.pack.Credible {
		if r.Re.MatchString(t.Clean) {
			f.Credible++
			f.CredibleRules = append(f.CredibleRules, r.ID)
		}
	}

	f.ExcessiveCapitals = excessiveCapitals(t.Clean)
	f.ExcessivePunctuation = excessivePunctuation(t.Clean)
	return f
}

func excessiveCapitals(s string) bool {
	letters, uppers := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			uppers++
		}
	}
	if letters < CapitalMinLetters {
		return false
	}
	return float64(uppers)/float64(letters) > CapitalRatioThreshold
}

func excessivePunctuation(s string) bool {
	total, punct, run := 0, 0, 0
	for _, r := range s {
		total++
		if strings.ContainsRune(`.,!?;:`, r) {
			punct++
		} else {
			run = 0
			continue
		}
		if r == '!' || r == '?' {
			run++
			if run >= PunctRunLength {
				return true
			}
		} else {
			run = 0
		}
	}
	if total == 0 {
		return false
	}
	return float64(punct)/float64(total) > PunctRatioThreshold
}
