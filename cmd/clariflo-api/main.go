// @title         Clariflo API
// @version       0.1.0
// @description   Truthfulness analysis for social media posts

package main

import (
	"context"

	"clariflo/internal/core/classifier"
	"clariflo/internal/core/rulepack"
	"clariflo/internal/platform/config"
	"clariflo/internal/platform/logger"
	phttp "clariflo/internal/platform/net/http"

	"clariflo/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CLARIFLO_API_*)
	root := config.New()
	apiCfg := root.Prefix("CLARIFLO_API_")

	// bring up logging early
	l := logger.Get()

	// compile the rule pack; without it there is nothing to serve
	pack, err := rulepack.Load()
	if err != nil {
		l.Panic().Err(err).Msg("rulepack.Load failed")
	}

	// load the classifier model once; a broken model keeps the process up
	// and analyze calls report unavailable instead
	model, err := classifier.Load()
	if err != nil {
		l.Error().Err(err).Msg("classifier.Load failed; serving degraded")
		model = nil
	}

	// http server (reads CLARIFLO_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Logger: l,
			Pack:   pack,
			Model:  model,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
