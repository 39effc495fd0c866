// Package domain holds DTOs and contracts for the analysis module
package domain

import "context"

// AnalyzeInput is the analyze request payload.
// Length bounds are enforced here at the edge and again inside the pipeline
type AnalyzeInput struct {
	Text string `json:"text" validate:"required,min=10,max=5000" example:"According to a university study, officials confirmed the findings on Monday."`
}

// Details is the per-request indicator breakdown
type Details struct {
	WordCount               int  `json:"word_count" example:"14"`
	SuspiciousPatternsFound int  `json:"suspicious_patterns_found" example:"0"`
	CrediblePatternsFound   int  `json:"credible_patterns_found" example:"4"`
	ExcessiveCapitals       bool `json:"excessive_capitals" example:"false"`
	ReadabilityScore        int  `json:"readability_score" example:"86"`
	ExcessivePunctuation    bool `json:"excessive_punctuation" example:"false"`
}

// Result is the analysis verdict
type Result struct {
	Classification    string  `json:"classification" example:"True"`
	Confidence        int     `json:"confidence" example:"88"`
	TruthfulnessScore int     `json:"truthfulness_score" example:"84"`
	AnalysisDetails   Details `json:"analysis_details"`
	Explanation       string  `json:"explanation" example:"The text shows characteristics of reliable information. Found 4 credibility indicators."`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Result, error)
}
