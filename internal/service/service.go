package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/internal/provider/mpesa"
	"github.com/carson-networks/mpesa-sync/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Sync *SyncService
}

// NewService creates a new Service with the given storage and provider client.
func NewService(store *storage.Storage, provider mpesa.IClient, env *config.Config, logger logrus.FieldLogger) *Service {
	return &Service{
		Sync: NewSyncService(store, provider, env.DefaultCategoryID(), logger),
	}
}
