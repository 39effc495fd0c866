// Package service orchestrates the analysis pipeline:
// validate -> normalize -> {patterns, classifier} -> fusion -> explanation.
// Stateless per request; the rule pack and the model are shared read-only
package service

import (
	"context"

	"github.com/google/uuid"

	"clariflo/internal/core/classifier"
	"clariflo/internal/core/explain"
	"clariflo/internal/core/fusion"
	"clariflo/internal/core/normalize"
	"clariflo/internal/core/patterns"
	"clariflo/internal/core/rulepack"
	perr "clariflo/internal/platform/errors"
	"clariflo/internal/platform/logger"
	pnet "clariflo/internal/platform/net"
	"clariflo/internal/services/analysis/domain"
)

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Config carries the tunables; zero value means calibrated defaults
type Config struct {
	Weights fusion.Weights
}

// Svc implements the analysis service
type Svc struct {
	norm    *normalize.Normalizer
	det     *patterns.Detector
	model   *classifier.Model
	weights fusion.Weights
}

// New constructs an analysis service over a loaded pack and model.
// A nil model is tolerated so the process can come up and report unavailable
// instead of crash-looping; every analyze call then fails as a service error
func New(pack *rulepack.Pack, model *classifier.Model, cfg Config) *Svc {
	if pack == nil {
		panic("analysis.Service requires a non nil rulepack")
	}
	w := cfg.Weights
	if w == (fusion.Weights{}) {
		w = fusion.DefaultWeights()
	}
	return &Svc{
		norm:    normalize.New(),
		det:     patterns.New(pack),
		model:   model,
		weights: w,
	}
}

// Analyze runs the full pipeline over one input
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Result, error) {
	// per-analysis correlation id threaded through the request-scoped logger
	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uuid.NewString())
	log := logger.C(ctx)

	txt, err := s.norm.Normalize(in.Text)
	if err != nil {
		return domain.Result{}, domain.WrapInput(err)
	}

	if s.model == nil {
		log.Warn().Msg("analyze called with no model loaded")
		return domain.Result{}, domain.ErrModelUnavailable()
	}

	findings := s.det.Scan(txt)
	prob := s.model.Predict(txt)

	out, err := fusion.Fuse(prob, findings, s.weights)
	if err != nil {
		// unreachable in a correct pipeline; log loudly, surface generically
		log.Error().Err(err).Msg("fusion rejected upstream output")
		return domain.Result{}, perr.Contractf("analysis pipeline produced malformed data")
	}

	log.Debug().
		Int("score", out.Score).
		Int("confidence", out.Confidence).
		Str("classification", string(out.Classification)).
		Int("suspicious", findings.Suspicious).
		Int("credible", findings.Credible).
		Msg("analysis complete")

	return domain.Result{
		Classification:    string(out.Classification),
		Confidence:        out.Confidence,
		TruthfulnessScore: out.Score,
		AnalysisDetails: domain.Details{
			WordCount:               txt.WordCount,
			SuspiciousPatternsFound: findings.Suspicious,
			CrediblePatternsFound:   findings.Credible,
			ExcessiveCapitals:       findings.ExcessiveCapitals,
			ReadabilityScore:        txt.Readability(),
			ExcessivePunctuation:    findings.ExcessivePunctuation,
		},
		Explanation: explain.Build(out, findings, txt, prob),
	}, nil
}
