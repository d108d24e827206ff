package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/carson-networks/mpesa-sync/internal/config"
	lambdahandler "github.com/carson-networks/mpesa-sync/internal/handlers/lambda"
	"github.com/carson-networks/mpesa-sync/internal/logging"
	"github.com/carson-networks/mpesa-sync/internal/provider/mpesa"
	"github.com/carson-networks/mpesa-sync/internal/service"
	"github.com/carson-networks/mpesa-sync/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

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

	provider := mpesa.NewClient(envConfig.MpesaAPIURL, envConfig.MpesaTimeout, envConfig.MpesaLocation)
	svc := service.NewService(store, provider, envConfig, logger)

	lambda.Start(lambdahandler.NewSyncHandler(svc.Sync, logger).Handle)
}
