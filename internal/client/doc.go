// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It logs into the configured vault, runs one command against it and, for
// the watch command, keeps the vault fresh with the background sync job
// until the process is stopped.
package client
