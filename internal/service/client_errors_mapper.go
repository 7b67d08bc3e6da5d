// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vaultage/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFastForward):
		return fmt.Errorf("%w: %w", ErrStaleWrite, err)
	case errors.Is(err, adapter.ErrAuthentication):
		return fmt.Errorf("%w: %w", ErrBadCredentials, err)
	case errors.Is(err, adapter.ErrDemoMode):
		return fmt.Errorf("%w: %w", ErrDemoModeRejected, err)
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, adapter.ErrUnknownServerError):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return err
}
