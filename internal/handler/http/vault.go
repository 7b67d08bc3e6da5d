package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-vaultage/internal/app"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/internal/utils"
	"github.com/MKhiriev/go-vaultage/models"
	"github.com/go-chi/chi/v5"
)

// maxPushBodySize bounds the body of a push.
const maxPushBodySize = 16 << 20

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.vaultService.Config(r.Context()), http.StatusOK)
}

func (h *Handler) pullVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ref, err := vaultRefFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cipher, err := h.vaultService.Pull(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("func", "*Handler.pullVault").Str("username", ref.Username).
		Int("bytes", len(cipher)).Msg("vault pulled")
	utils.WriteJSON(w, models.VaultAPIResponse{Data: cipher}, http.StatusOK)
}

func (h *Handler) pushVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ref, err := vaultRefFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateCipherRequest
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPushBodySize)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: decode push: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.vaultService.Push(r.Context(), ref, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.pushVault").Str("username", ref.Username).
		Bool("rotation", req.NewPassword != "").Msg("vault pushed")
	utils.WriteJSON(w, models.VaultAPIResponse{}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VaultAPIResponse{Error: true, Description: app.MsgNotFound}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VaultAPIResponse{Error: true, Description: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}

func vaultRefFromRequest(r *http.Request) (models.VaultRef, error) {
	username, err := url.PathUnescape(chi.URLParam(r, "username"))
	if err != nil {
		return models.VaultRef{}, fmt.Errorf("%w: username: %w", service.ErrInvalidDataProvided, err)
	}

	return models.VaultRef{
		Username:  username,
		RemoteKey: chi.URLParam(r, "remoteKey"),
	}, nil
}
