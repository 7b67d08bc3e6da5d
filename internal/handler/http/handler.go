package http

import (
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/internal/utils"
)

type Handler struct {
	vaultService service.VaultService
	traceIDs     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		vaultService: services.VaultService,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
