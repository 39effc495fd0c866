// Package explain renders the fused verdict into the human-readable summary.
// Every explanation cites at least one concrete factor: either a detected
// pattern signal or the statistical probability itself
package explain

import (
	"fmt"
	"strings"

	"clariflo/internal/core/fusion"
	"clariflo/internal/core/normalize"
	"clariflo/internal/core/patterns"
)

// Score bands for the lead sentence; intentionally wider than the
// classification thresholds so borderline verdicts read as mixed
const (
	reliableBand    = 70
	misinformedBand = 30
)

// shortTextWords is the word count under which accuracy is called out
const shortTextWords = 10

// Lexical factor thresholds. Both only fire above shortTextWords, where the
// ratios become meaningful
const (
	lowDiversityRatio = 0.5
	longWordAvg       = 9.0
)

// Build assembles the explanation for one analysis
func Build(out fusion.Outcome, f patterns.Findings, txt normalize.Text, prob float64) string {
	var factors []string

	if f.Suspicious > 0 {
		factors = append(factors, fmt.Sprintf("Found %d suspicious language %s", f.Suspicious, plural("pattern", f.Suspicious)))
	}
	if f.Credible > 0 {
		factors = append(factors, fmt.Sprintf("Found %d credibility %s", f.Credible, plural("indicator", f.Credible)))
	}
	if f.ExcessiveCapitals {
		factors = append(factors, "Excessive use of capital letters detected")
	}
	if f.ExcessivePunctuation {
		factors = append(factors, "Excessive punctuation usage detected")
	}
	if txt.WordCount < shortTextWords {
		factors = append(factors, "Text is very short, limiting analysis accuracy")
	} else {
		if txt.UniqueRatio > 0 && txt.UniqueRatio < lowDiversityRatio {
			factors = append(factors, "Highly repetitive wording detected")
		}
		if txt.AvgWordLen > longWordAvg {
			factors = append(factors, "Unusually complex vocabulary detected")
		}
	}

	var lead string
	switch {
	case out.Score >= reliableBand:
		lead = "The text shows characteristics of reliable information."
	case out.Score <= misinformedBand:
		lead = "The text shows characteristics commonly associated with misinformation."
	default:
		lead = "The text has mixed characteristics, making classification uncertain."
	}

	if len(factors) == 0 {
		// no pattern signal fired; cite the statistical one so the
		// explanation is never generic
		factors = append(factors, fmt.Sprintf("The statistical model estimates a %d%% probability of truthful content", int(prob*100)))
	}

	return lead + " " + strings.Join(factors, ". ") + "."
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
