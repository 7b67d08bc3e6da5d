package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-vaultage/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthentication, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnknownServerError, resp.StatusCode(), body)
	}
}

// mapProtocolError turns an error envelope into a sentinel. A nil return
// means the envelope reports success.
func mapProtocolError(body models.VaultAPIResponse) error {
	if !body.Error {
		return nil
	}

	switch body.Code {
	case models.CodeNotFastForward:
		return ErrNotFastForward
	case models.CodeAuthentication:
		return ErrAuthentication
	case models.CodeDemoMode:
		return ErrDemoMode
	default:
		return fmt.Errorf("%w: code %q: %s", ErrUnknownServerError, body.Code, body.Description)
	}
}
