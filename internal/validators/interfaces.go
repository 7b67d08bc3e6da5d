// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault protocol input on the server before it
// reaches the vault service.
//
// Validation is shape only: a remote key or hash that is well formed may
// still be wrong, and that is decided by the service.
package validators

import "context"

// Validator validates obj. When fields are given, only those named checks
// run; otherwise every check for the type runs.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
