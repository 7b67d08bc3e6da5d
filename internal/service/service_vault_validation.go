package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vaultage/internal/validators"
	"github.com/MKhiriev/go-vaultage/models"
)

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// VaultValidationService rejects malformed vault references and pushes
// with [ErrInvalidDataProvided] before they reach the wrapped service.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultRequestValidator(),
	}
}

func (v *VaultValidationService) Config(ctx context.Context) models.ServerConfig {
	return v.inner.Config(ctx)
}

func (v *VaultValidationService) Pull(ctx context.Context, ref models.VaultRef) (string, error) {
	if err := v.validator.Validate(ctx, ref); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Pull(ctx, ref)
}

func (v *VaultValidationService) Push(ctx context.Context, ref models.VaultRef, req models.UpdateCipherRequest) error {
	if err := v.validator.Validate(ctx, ref); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Push(ctx, ref, req)
}

func (v *VaultValidationService) Wrap(wrapper VaultService) VaultService {
	v.inner = wrapper
	return v
}
