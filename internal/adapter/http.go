package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/utils"
	"github.com/MKhiriev/go-vaultage/models"
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the client to the vault server.
const userAgent = "vaultage-go"

// cipherNoise matches everything a well-formed SJCL record cannot contain.
// Padding "=" is dropped too; the cipher decoder accepts unpadded base64.
var cipherNoise = regexp.MustCompile(`(?i)[^a-z0-9+/:"{},]`)

type httpVaultTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVaultTransport constructs the HTTP/JSON implementation of
// [VaultTransport]. Every request uses adapterCfg.RequestTimeout and, when
// both basic auth fields are set, HTTP basic auth for deployments behind an
// authenticating proxy.
//
// The server URL is passed per call because it is only known after login.
func NewHTTPVaultTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) VaultTransport {
	client := utils.NewHTTPClient(
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithBasicAuth(adapterCfg.BasicAuthUser, adapterCfg.BasicAuthPassword),
		utils.WithUserAgent(userAgent),
	)

	return &httpVaultTransport{client: client, logger: logger}
}

// NormalizeServerURL trims whitespace and trailing slashes, adds http:// when
// no scheme is given and rejects URLs without a host.
func NormalizeServerURL(raw string) (string, error) {
	return normalizeBaseURL(raw)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PullConfig implements [VaultTransport]. It GETs {serverURL}/config.
func (h *httpVaultTransport) PullConfig(ctx context.Context, serverURL string) (models.ServerConfig, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("invalid server url: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(base + "/config")
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: pull config request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerConfig{}, err
	}

	var cfg models.ServerConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: bad server response: %v", ErrTransport, err)
	}

	h.logger.Debug().Str("func", "*httpVaultTransport.PullConfig").
		Str("server", base).Bool("demo", cfg.Demo).Msg("server config fetched")
	return cfg, nil
}

// PullCipher implements [VaultTransport]. It GETs the vault_api endpoint and
// strips every character a cipher record cannot contain from the payload.
func (h *httpVaultTransport) PullCipher(ctx context.Context, serverURL, username, remoteKey string) (string, error) {
	endpoint, err := vaultURL(serverURL, username, remoteKey)
	if err != nil {
		return "", err
	}

	var body models.VaultAPIResponse
	resp, err := h.client.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: pull request: %v", ErrTransport, err)
	}
	if body, err = decodeEnvelope(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("func", "*httpVaultTransport.PullCipher").
		Int("bytes", len(body.Data)).Msg("cipher pulled")
	return cipherNoise.ReplaceAllString(body.Data, ""), nil
}

// PushCipher implements [VaultTransport]. It POSTs req to the vault_api
// endpoint. Force is always sent as false.
func (h *httpVaultTransport) PushCipher(ctx context.Context, serverURL, username, remoteKey string, req models.UpdateCipherRequest) error {
	endpoint, err := vaultURL(serverURL, username, remoteKey)
	if err != nil {
		return err
	}

	req.Force = false
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("%w: push request: %v", ErrTransport, err)
	}
	if _, err = decodeEnvelope(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("func", "*httpVaultTransport.PushCipher").
		Bool("rotation", req.NewPassword != "").Msg("cipher pushed")
	return nil
}

func vaultURL(serverURL, username, remoteKey string) (string, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}
	return base + "/" + url.PathEscape(username) + "/" + remoteKey + "/vaultage_api", nil
}

func decodeEnvelope(resp *resty.Response) (models.VaultAPIResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.VaultAPIResponse{}, err
	}

	var body models.VaultAPIResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.VaultAPIResponse{}, fmt.Errorf("%w: bad server response: %v", ErrTransport, err)
	}

	return body, mapProtocolError(body)
}
