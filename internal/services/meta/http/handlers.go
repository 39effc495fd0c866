// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"clariflo/internal/core/classifier"
	"clariflo/internal/core/rulepack"
	"clariflo/internal/core/version"
	"clariflo/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Pack        *rulepack.Pack
	Model       *classifier.Model
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/detector", h.detector)
}

// RegisterFlat mounts the original flat health route
func RegisterFlat(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
}

//
// DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	Status  string `json:"status"   example:"healthy"`
	Service string `json:"service"  example:"clariflo-api"`
	Started string `json:"started"  example:"2026-08-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"rulepack"`
	Status string `json:"status" example:"ok"` // ok fail
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"clariflo-api"`
	Started string `json:"started" example:"2026-08-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DetectorResponse reports the loaded rule pack and model versions
type DetectorResponse struct {
	RulesVersion int               `json:"rules_version" example:"1"`
	ModelVersion int               `json:"model_version" example:"1"`
	ModelLoaded  bool              `json:"model_loaded"  example:"true"`
	Build        version.BuildInfo `json:"build"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		Status:  "healthy",
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := func(name string, loaded bool) ReadyCheck {
		st := "ok"
		if !loaded {
			st = "fail"
		}
		return ReadyCheck{Name: name, Status: st}
	}

	rules := check("rulepack", h.deps.Pack != nil)
	model := check("model", h.deps.Model != nil)

	overall := "ok"
	if rules.Status != "ok" || model.Status != "ok" {
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{rules, model},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Loaded detector configuration
// @Tags Meta
// @Produce json
// @Success 200 type DetectorResponse ok
// @Router /meta/detector [get]
func (h *handlers) detector(_ *http.Request) (any, error) {
	resp := DetectorResponse{Build: version.Info()}
	if h.deps.Pack != nil {
		resp.RulesVersion = h.deps.Pack.Version
	}
	if h.deps.Model != nil {
		resp.ModelVersion = h.deps.Model.Version()
		resp.ModelLoaded = true
	}
	return resp, nil
}
