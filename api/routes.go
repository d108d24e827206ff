package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/mpesa-sync/internal/handlers/v1/status"
	"github.com/carson-networks/mpesa-sync/internal/handlers/v1/transactionsync"
	"github.com/carson-networks/mpesa-sync/internal/logging"
	"github.com/carson-networks/mpesa-sync/internal/service"
	"github.com/carson-networks/mpesa-sync/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the router: /status plus the huma-managed /v1 routes.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	useErrorBody()
	humaConfig := huma.DefaultConfig("M-Pesa Sync API", "1.0.0")
	// Responses carry only success or error; no $schema link.
	humaConfig.CreateHooks = nil
	api := humago.New(mux, humaConfig)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	transactionsync.NewSyncTransactionsHandler(r.Service.Sync).Register(api)

	return mux
}

// Serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
