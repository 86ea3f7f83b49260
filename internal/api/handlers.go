package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"webhooks-api/internal/auth"
	"webhooks-api/internal/httperr"
	"webhooks-api/internal/storage"
)

func (a *API) Router() http.Handler {
	a.Routers.Use(RequestID, a.RequestLogger, a.Metrics.Middleware, a.Recoverer)
	a.Routers.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperr.Write(w, httperr.New(http.StatusNotFound, "Not Found"))
	})
	a.Routers.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperr.Write(w, httperr.New(http.StatusMethodNotAllowed, "Method Not Allowed"))
	})

	// Public
	a.Routers.Get("/healthz", a.Health)
	a.Routers.Handle("/metrics", a.Metrics.Handler())
	a.Routers.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Secured
	webhooksPath := a.Cfg.Server.APIPrefix + "/webhooks"
	webhooks := func(r chi.Router) {
		r.Use(
			RedirectTrailingSlash(webhooksPath),
			storage.SessionMiddleware(a.Store, a.Logger),
			auth.JWTAuthMiddleware(a.Store, a.Logger),
		)

		r.Get("/", a.ListWebhooks)
		r.Post("/", a.CreateWebhook)
		r.Get("/{id}", a.GetWebhook)
		r.Put("/{id}", a.UpdateWebhook)
		r.Delete("/{id}", a.DeleteWebhook)
	}

	if prefix := a.Cfg.Server.APIPrefix; prefix != "" {
		a.Routers.Route(prefix, func(r chi.Router) {
			r.Route("/webhooks", webhooks)
		})
	} else {
		a.Routers.Route("/webhooks", webhooks)
	}

	return a.Routers
}

// @Summary Liveness and database readiness
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.Store.Ping(ctx); err != nil {
		a.Logger.Warn("health check failed", zap.Error(err))
		httperr.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httperr.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
