// Package server runs the HTTP server of the reference vault server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
