// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the vault server process and of the HTTP
// listener it owns.
type Server interface {
	// RunServer serves vault requests until SIGINT/SIGTERM, then shuts down.
	RunServer()

	// Shutdown drains in-flight requests within the shutdown timeout.
	Shutdown()
}
