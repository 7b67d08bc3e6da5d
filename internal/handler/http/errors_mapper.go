package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vaultage/internal/app"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/internal/utils"
	"github.com/MKhiriev/go-vaultage/models"
)

// protocolError is how a service error is written on the wire.
type protocolError struct {
	status      int
	code        string
	description string
}

var errorProtocolMap = []struct {
	target error
	protocolError
}{
	{service.ErrStaleWrite, protocolError{http.StatusOK, models.CodeNotFastForward, app.MsgNotFastForward}},
	{service.ErrBadCredentials, protocolError{http.StatusOK, models.CodeAuthentication, app.MsgAuthenticationFailed}},
	{service.ErrDemoModeRejected, protocolError{http.StatusOK, models.CodeDemoMode, app.MsgDemoMode}},
	{service.ErrInvalidDataProvided, protocolError{http.StatusBadRequest, "", app.MsgInvalidDataProvided}},
}

func protocolErrorFrom(err error) protocolError {
	for _, e := range errorProtocolMap {
		if errors.Is(err, e.target) {
			return e.protocolError
		}
	}
	return protocolError{status: http.StatusInternalServerError, description: app.MsgInternalServerError}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	pe := protocolErrorFrom(err)

	log := logger.FromRequest(r)
	if pe.status == http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "*Handler.writeError").Str("code", pe.code).Msg("request rejected")
	}

	utils.WriteJSON(w, models.VaultAPIResponse{
		Error:       true,
		Code:        pe.code,
		Description: pe.description,
	}, pe.status)
}
