// Package api provides the HTTP API for the application
package api

import (
	"time"

	"clariflo/internal/core/classifier"
	"clariflo/internal/core/rulepack"
	"clariflo/internal/platform/config"
	"clariflo/internal/platform/logger"
	phttp "clariflo/internal/platform/net/http"
	pnetmw "clariflo/internal/platform/net/middleware"

	"clariflo/internal/modkit"
	"clariflo/internal/modkit/httpkit"

	analysishttp "clariflo/internal/services/analysis/http"
	analysismod "clariflo/internal/services/analysis/module"
	metahttp "clariflo/internal/services/meta/http"
	metamod "clariflo/internal/services/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	// Pack must be loaded; Model may be nil if startup loading failed, in
	// which case analyze calls report the service unavailable
	Pack  *rulepack.Pack
	Model *classifier.Model
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	analysis := analysismod.New(deps, opt.Pack, opt.Model)
	meta := metamod.New(deps, opt.Pack, opt.Model)

	mods := []modkit.Module{meta, analysis}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	// flat aliases for the original routes: POST /analyze and GET /health
	// kept for callers that predate the versioned API
	r.Group(func(g phttp.Router) {
		g.Use(
			pnetmw.RequestID(),
			pnetmw.RealIP(),
			pnetmw.RecoverJSON,
			pnetmw.Logger(),
			pnetmw.CORS(pnetmw.CORSOptions{}),
		)
		analysishttp.RegisterFlat(g, analysis.Service())
		metahttp.RegisterFlat(g, metahttp.Deps{
			ServiceName: "clariflo-api",
			StartedAt:   time.Now(),
			Pack:        opt.Pack,
			Model:       opt.Model,
		})
	})
}
