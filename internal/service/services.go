package service

import (
	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/store"
)

// Services groups the server-side services.
type Services struct {
	VaultService VaultService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) *Services {
	vaultSvc := NewVaultService(storages.VaultRepository, cfg.App, logger)

	return &Services{
		VaultService: NewVaultValidationService().Wrap(vaultSvc),
	}
}
