// Package module wires the analysis pipeline into the API
package module

import (
	"net/http"

	"clariflo/internal/core/classifier"
	"clariflo/internal/core/rulepack"
	modkit "clariflo/internal/modkit"
	"clariflo/internal/modkit/httpkit"
	str "clariflo/internal/platform/strings"
	analysishttp "clariflo/internal/services/analysis/http"
	"clariflo/internal/services/analysis/service"
)

// Ports exposed by the analysis module
type Ports struct {
	Analyzer service.Service
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc service.Service
}

// New constructs the analysis module over a loaded pack and model
func New(deps modkit.Deps, pack *rulepack.Pack, model *classifier.Model, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analysis"),
		modkit.WithPrefix("/analyze"),
	}, opts...)...)

	svc := service.New(pack, model, service.Config{})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analysishttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}

	return m
}

// Service returns the analyzer port for cross-module wiring
func (m *Module) Service() service.Service { return m.svc }

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "analysis") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Analyzer: m.svc} }
