package service

import (
	"github.com/MKhiriev/go-vaultage/internal/adapter"
	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/crypto"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/passwords"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
)

type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(storages *store.ClientStorages, transport adapter.VaultTransport, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(
			transport,
			storages.OfflineProvider,
			storages.ConfigCache,
			NewKeyChainFactory(cfg.Crypto),
			passwords.NewClassifier(),
			logger,
		),
	}
}

// NewKeyChainFactory returns a [KeyChainFactory] applying the configured
// iteration counts. Zero counts keep the defaults.
func NewKeyChainFactory(cfg config.ClientCrypto) KeyChainFactory {
	return func(salts models.Salts) crypto.KeyChainService {
		return crypto.NewKeyChainService(salts,
			crypto.WithIterations(cfg.Iterations),
			crypto.WithOfflineIterations(cfg.OfflineIterations),
		)
	}
}
