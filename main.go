package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/mpesa-sync/api"
	"github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/internal/logging"
	"github.com/carson-networks/mpesa-sync/internal/provider/mpesa"
	"github.com/carson-networks/mpesa-sync/internal/service"
	"github.com/carson-networks/mpesa-sync/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("mpesa-sync starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	provider := mpesa.NewClient(envConfig.MpesaAPIURL, envConfig.MpesaTimeout, envConfig.MpesaLocation)
	svc := service.NewService(store, provider, envConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Storage: store,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}
}
