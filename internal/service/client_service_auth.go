package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vaultage/internal/adapter"
	"github.com/MKhiriev/go-vaultage/internal/crypto"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/passwords"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
	"golang.org/x/sync/errgroup"
)

// offlineConfigVersion is the config version reported for offline logins.
const offlineConfigVersion = 1

// KeyChainFactory builds the key chain of a server from its salts.
type KeyChainFactory func(salts models.Salts) crypto.KeyChainService

type clientAuthService struct {
	transport   adapter.VaultTransport
	offline     store.OfflineProvider
	configCache store.ConfigCache
	classifier  passwords.Classifier
	newKeyChain KeyChainFactory
	logger      *logger.Logger
}

// NewClientAuthService returns the login service. Nil offline and
// configCache fall back to the no-op implementations.
func NewClientAuthService(
	transport adapter.VaultTransport,
	offline store.OfflineProvider,
	configCache store.ConfigCache,
	newKeyChain KeyChainFactory,
	classifier passwords.Classifier,
	logger *logger.Logger,
) ClientAuthService {
	if offline == nil {
		offline = store.NoOpOfflineProvider{}
	}
	if configCache == nil {
		configCache = store.NoOpConfigCache{}
	}
	if classifier == nil {
		classifier = passwords.NewClassifier()
	}

	return &clientAuthService{
		transport:   transport,
		offline:     offline,
		configCache: configCache,
		classifier:  classifier,
		newKeyChain: newKeyChain,
		logger:      logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, serverURL, username, masterPassword string) (*Vault, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if masterPassword == "" {
		return nil, ErrEmptyMasterPassword
	}

	runningOffline, err := a.offline.IsRunningOffline(ctx)
	if err != nil {
		return nil, fmt.Errorf("check offline mode: %w", err)
	}
	if runningOffline {
		return a.loginOffline(ctx, username, masterPassword)
	}

	serverURL, err = adapter.NormalizeServerURL(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	cfg, err := a.serverConfig(ctx, serverURL)
	if err != nil {
		return nil, err
	}

	keyChain := a.newKeyChain(cfg.Salts)
	creds, err := deriveCredentials(ctx, keyChain, a.offline, masterPassword,
		Credentials{ServerURL: serverURL, Username: username}, true)
	if err != nil {
		return nil, err
	}

	cipher, err := a.transport.PullCipher(ctx, serverURL, username, creds.RemoteKey)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("server_url", serverURL).
			Msg("error pulling vault")
		return nil, mapAdapterError(err)
	}

	vault, err := NewVault(ctx, creds, cfg.Demo, cipher, a.vaultDeps(keyChain))
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	a.logger.Info().Str("func", "*clientAuthService.Login").Str("server_url", serverURL).
		Str("username", username).Bool("demo", cfg.Demo).Int("entries", vault.NbEntries()).
		Msg("logged in")
	return vault, nil
}

// loginOffline opens the local snapshot. The offline salt plays the part of
// the local key salt.
func (a *clientAuthService) loginOffline(ctx context.Context, username, masterPassword string) (*Vault, error) {
	salt, err := a.offline.OfflineSalt(ctx)
	if err != nil {
		return nil, fmt.Errorf("offline salt: %w", err)
	}

	cfg := models.ServerConfig{
		Version: offlineConfigVersion,
		Salts:   models.Salts{LocalKeySalt: salt},
	}
	keyChain := a.newKeyChain(cfg.Salts)

	localKey, err := keyChain.DeriveOfflineKey(masterPassword, salt)
	if err != nil {
		return nil, fmt.Errorf("derive offline key: %w", err)
	}

	cipher, err := a.offline.OfflineCipher(ctx)
	if err != nil {
		return nil, fmt.Errorf("offline vault: %w", err)
	}

	creds := Credentials{ServerURL: OfflineURL, Username: username, LocalKey: localKey}
	vault, err := NewVault(ctx, creds, false, cipher, a.vaultDeps(keyChain))
	if err != nil {
		return nil, fmt.Errorf("open offline vault: %w", err)
	}

	a.logger.Info().Str("func", "*clientAuthService.loginOffline").Str("username", username).
		Int("entries", vault.NbEntries()).Msg("logged in offline")
	return vault, nil
}

// serverConfig returns the cached configuration of serverURL, fetching and
// caching it on a miss. Demo configurations are never cached.
func (a *clientAuthService) serverConfig(ctx context.Context, serverURL string) (models.ServerConfig, error) {
	cfg, found, err := a.configCache.LoadConfig(ctx, serverURL)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.serverConfig").Msg("config cache unavailable")
	}
	if found {
		return cfg, nil
	}

	cfg, err = a.transport.PullConfig(ctx, serverURL)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.serverConfig").Str("server_url", serverURL).
			Msg("error pulling server config")
		return models.ServerConfig{}, mapAdapterError(err)
	}

	if !cfg.Demo {
		if err = a.configCache.SaveConfig(ctx, serverURL, cfg); err != nil {
			a.logger.Warn().Err(err).Str("func", "*clientAuthService.serverConfig").Msg("error caching server config")
		}
	}
	return cfg, nil
}

func (a *clientAuthService) vaultDeps(keyChain crypto.KeyChainService) VaultDeps {
	return VaultDeps{
		KeyChain:   keyChain,
		Transport:  a.transport,
		Offline:    a.offline,
		Classifier: a.classifier,
		Logger:     a.logger,
	}
}

// deriveCredentials derives the local and remote keys of password
// concurrently. With withOffline set it also derives the offline key, unless
// the provider reports offline mode as disabled.
func deriveCredentials(
	ctx context.Context,
	keyChain crypto.KeyChainService,
	offline store.OfflineProvider,
	password string,
	base Credentials,
	withOffline bool,
) (Credentials, error) {
	next := base

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		key, err := keyChain.DeriveLocalKey(password)
		next.LocalKey = key
		return err
	})
	g.Go(func() error {
		key, err := keyChain.DeriveRemoteKey(password)
		next.RemoteKey = key
		return err
	})
	if withOffline {
		g.Go(func() error {
			salt, err := offline.OfflineSalt(gctx)
			if errors.Is(err, store.ErrOfflineDisabled) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("offline salt: %w", err)
			}
			key, err := keyChain.DeriveOfflineKey(password, salt)
			next.OfflineKey = key
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Credentials{}, fmt.Errorf("derive keys: %w", err)
	}
	return next, nil
}
