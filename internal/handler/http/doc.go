// Package http implements the HTTP side of the reference vault server.
//
// It serves the vaultage protocol: GET /config for the public configuration
// and GET|POST /{username}/{remoteKey}/vaultage_api to pull and push the
// encrypted vault. Every vault_api answer is a [models.VaultAPIResponse]
// envelope; protocol errors (EFAST, EAUTH, EDEMO) travel inside it with
// HTTP 200. Request tracing and access logging are handled by middleware
// before requests are delegated to [service.VaultService].
package http
