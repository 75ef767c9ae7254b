// Package api exposes the classifier over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uaparse/pkg/cache"
	"github.com/dmitrymomot/uaparse/pkg/httpserver"
	"github.com/dmitrymomot/uaparse/pkg/logger"
	"github.com/dmitrymomot/uaparse/pkg/requestid"
	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Deps are the collaborators of the router. Cache is required.
type Deps struct {
	Cache  *cache.Cache
	Logger *slog.Logger
	Config Config
	// Ready checks run by /health/ready, e.g. the redis healthcheck.
	Ready []httpserver.Check
}

type handler struct {
	cache *cache.Cache
	log   *slog.Logger
	cfg   Config
}

// NewRouter mounts the classify, stats and health endpoints.
func NewRouter(deps Deps) http.Handler {
	if deps.Cache == nil {
		panic("api: nil cache")
	}
	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}
	h := &handler{cache: deps.Cache, log: log.With(logger.Component("api")), cfg: deps.Config}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(useragent.NewMiddleware(func(ua string) useragent.Result {
		return h.classify(context.Background(), ua)
	}))
	r.Use(requestLogger(h.log))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllow, "method not allowed")
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/classify", h.classifyOne)
		r.Post("/classify", h.classifyBatch)
		r.Get("/stats", h.stats)
	})
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LiveHandler())
		r.Get("/ready", httpserver.ReadyHandler(h.log, deps.Ready...))
	})

	return r
}

func (h *handler) classify(ctx context.Context, ua string) useragent.Result {
	return h.cache.Parse(ctx, truncate(ua, h.cfg.MaxLength))
}
