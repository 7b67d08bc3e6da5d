// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers and middleware.
//
// All Msg* constants are human-readable descriptions written into the
// description field of vault_api error envelopes. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing new_data).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFastForward is returned with EFAST: old_hash no longer matches
	// the stored vault. The client should pull before pushing again.
	MsgNotFastForward = "the server has a newer version of the vault, please pull first"

	// MsgAuthenticationFailed is returned with EAUTH when the username and
	// remote key do not match.
	MsgAuthenticationFailed = "authentication failed"

	// MsgDemoMode is returned with EDEMO when a demo server refuses a push.
	MsgDemoMode = "the server is in demo mode, changes are not saved"

	// MsgNotFound is returned for paths outside the vault protocol.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when a protocol path is called with an
	// unsupported method.
	MsgMethodNotAllowed = "method not allowed"
)
