// Package fusion combines the statistical probability and the rule findings
// into the final score, confidence and classification. Pure arithmetic: the
// only failure mode is a malformed upstream value, which is a programming
// contract violation, never user input
package fusion

import (
	"errors"
	"fmt"
	"math"

	"clariflo/internal/core/patterns"
)

// Classification is the discrete verdict
type Classification string

// Verdict labels, fixed by the service contract
const (
	True      Classification = "True"
	False     Classification = "False"
	Uncertain Classification = "Uncertain"
)

// Score thresholds. 65 and 35 are inclusive of their classes; the open
// interval between them is Uncertain
const (
	TrueThreshold  = 65
	FalseThreshold = 35
)

// ErrContract marks malformed upstream output reaching the fusion stage
var ErrContract = errors.New("fusion: upstream contract violation")

// Weights are the named tunable constants of the fusion formula.
// Calibration changes values here, never the algorithm
type Weights struct {
	// Probability is the share of the statistical signal in the final score;
	// the rule signal carries the remainder
	Probability float64

	// Per-distinct-match adjustments to the rule signal
	CredibleBonus     float64
	SuspiciousPenalty float64

	// Flat penalties for the structural format flags
	CapitalsPenalty    float64
	PunctuationPenalty float64

	// Confidence bounds
	ConfidenceFloor   int
	ConfidenceCeiling int
}

// DefaultWeights returns the calibrated defaults
func DefaultWeights() Weights {
	return Weights{
		Probability:        0.6,
		CredibleBonus:      8,
		SuspiciousPenalty:  12,
		CapitalsPenalty:    10,
		PunctuationPenalty: 10,
		ConfidenceFloor:    50,
		ConfidenceCeiling:  98,
	}
}

// Outcome is the fused verdict
type Outcome struct {
	Score          int
	Confidence     int
	Classification Classification
}

// Fuse combines prob with the findings under w.
// The rule signal starts neutral at 50, moves by the per-match weights and
// the structural penalties, and both signals are blended by w.Probability.
// Confidence grows with the agreement between the two signals and never
// drops below the floor
func Fuse(prob float64, f patterns.Findings, w Weights) (Outcome, error) {
	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return Outcome{}, fmt.Errorf("%w: probability %v outside [0,1]", ErrContract, prob)
	}
	if f.Suspicious < 0 || f.Credible < 0 {
		return Outcome{}, fmt.Errorf("%w: negative pattern count %d/%d", ErrContract, f.Suspicious, f.Credible)
	}
	if w.Probability < 0 || w.Probability > 1 {
		return Outcome{}, fmt.Errorf("%w: probability weight %v outside [0,1]", ErrContract, w.Probability)
	}

	statistical := prob * 100

	rule := 50.0
	rule += float64(f.Credible) * w.CredibleBonus
	rule -= float64(f.Suspicious) * w.SuspiciousPenalty
	if f.ExcessiveCapitals {
		rule -= w.CapitalsPenalty
	}
	if f.ExcessivePunctuation {
		rule -= w.PunctuationPenalty
	}
	rule = clamp(rule)

	score := clamp(w.Probability*statistical + (1-w.Probability)*rule)

	return Outcome{
		Score:          int(math.Round(score)),
		Confidence:     confidence(statistical, rule, w),
		Classification: classify(int(math.Round(score))),
	}, nil
}

// classify maps a fused score to its label; boundary values belong to the
// definite classes
func classify(score int) Classification {
	switch {
	case score >= TrueThreshold:
		return True
	case score <= FalseThreshold:
		return False
	default:
		return Uncertain
	}
}

// confidence measures agreement between the two signals around the neutral
// midpoint. Signals pointing the same way stack; disagreement collapses to
// the floor
func confidence(statistical, rule float64, w Weights) int {
	statDelta := statistical - 50
	ruleDelta := rule - 50

	if statDelta*ruleDelta < 0 {
		return w.ConfidenceFloor
	}
	c := float64(w.ConfidenceFloor) + (math.Abs(statDelta)+math.Abs(ruleDelta))/2
	if c > float64(w.ConfidenceCeiling) {
		return w.ConfidenceCeiling
	}
	return int(math.Round(c))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
