package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartOpsServer serves /healthz and /metrics on addr until ctx is canceled.
// healthCheck may be nil; when set, a non-nil error turns /healthz into a 503.
func (o *Observability) StartOpsServer(ctx context.Context, addr string, healthCheck func(ctx context.Context) error) {
	if addr == "" {
		return
	}

	logger := o.Provider.Logger

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(req.Context()); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(o.Registry.Prometheus, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("Ops server listening", attr.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ops server stopped", attr.Error(err))
		}
	}()
}
