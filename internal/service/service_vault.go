package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
)

// ServerProtocolVersion is the version reported by /config.
const ServerProtocolVersion = 1

type vaultService struct {
	vaultRepository store.VaultRepository
	cfg             models.ServerConfig

	logger *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, app config.App, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		cfg: models.ServerConfig{
			Version: ServerProtocolVersion,
			Demo:    app.Demo,
			Salts: models.Salts{
				LocalKeySalt:  app.LocalKeySalt,
				RemoteKeySalt: app.RemoteKeySalt,
			},
		},
		logger: logger,
	}
}

func (s *vaultService) Config(ctx context.Context) models.ServerConfig {
	return s.cfg
}

func (s *vaultService) Pull(ctx context.Context, ref models.VaultRef) (string, error) {
	stored, err := s.vaultRepository.GetVault(ctx, ref.Username)
	if errors.Is(err, store.ErrVaultNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if !sameKey(stored.RemoteKey, ref.RemoteKey) {
		s.logger.Warn().Str("func", "vaultService.Pull").Str("username", ref.Username).Msg("remote key rejected")
		return "", ErrBadCredentials
	}
	return stored.Cipher, nil
}

func (s *vaultService) Push(ctx context.Context, ref models.VaultRef, req models.UpdateCipherRequest) error {
	if s.cfg.Demo {
		return ErrDemoModeRejected
	}

	return s.vaultRepository.UpdateVault(ctx, ref.Username, func(current models.StoredVault, found bool) (models.StoredVault, error) {
		if found {
			if !sameKey(current.RemoteKey, ref.RemoteKey) {
				s.logger.Warn().Str("func", "vaultService.Push").Str("username", ref.Username).Msg("remote key rejected")
				return models.StoredVault{}, ErrBadCredentials
			}
			if !req.Force && current.Hash != req.OldHash {
				s.logger.Info().Str("func", "vaultService.Push").Str("username", ref.Username).Msg("not fast-forward")
				return models.StoredVault{}, ErrStaleWrite
			}
		}

		remoteKey := ref.RemoteKey
		if req.NewPassword != "" {
			remoteKey = req.NewPassword
		}
		return models.StoredVault{
			RemoteKey: remoteKey,
			Cipher:    req.NewData,
			Hash:      req.NewHash,
		}, nil
	})
}

func sameKey(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
