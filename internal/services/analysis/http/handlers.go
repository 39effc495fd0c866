// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"

	"clariflo/internal/modkit/httpkit"
	"clariflo/internal/services/analysis/domain"
)

// Register mounts the analysis endpoint on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/", h.analyze)
}

// RegisterFlat mounts the original flat route for callers that predate the
// versioned API
func RegisterFlat(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /analyze Analysis analyzePost
// @Summary Analyze the truthfulness of a post
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Post text"
// @Success 200 type domain.Result "ok"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}
