package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/admpub/product-analyzer/pkg/config"
)

type handlerFunc func(http.ResponseWriter, *http.Request, *config.Config)

func withConfig(cfg *config.Config, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, cfg)
	}
}

func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	r.Get(`/`, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, `/dashboard`, http.StatusFound)
	})
	r.Get(`/dashboard`, withConfig(cfg, handleDashboard))
	r.Get(`/chart`, withConfig(cfg, handleChart))
	r.Route(`/api`, func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get(`/chart`, withConfig(cfg, handleAPIChart))
		r.Get(`/stats`, withConfig(cfg, handleAPIStats))
		r.Get(`/products`, withConfig(cfg, handleAPIProducts))
		r.Post(`/reload`, withConfig(cfg, handleAPIReload))
	})
	return r
}

// Start serves the dashboard until ctx is cancelled.
func Start(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof(`listening on %s (env: %s)`, cfg.Listen, cfg.Env)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Infof(`shutting down`)
	return srv.Shutdown(shutdownCtx)
}
