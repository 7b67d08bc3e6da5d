// Package config provides configuration loading, merging, and validation
// facilities for the vault client and the reference vault server.
//
// Configuration is assembled from multiple sources in the following order
// (a field keeps the first non-zero value found):
//  1. Environment variables, all prefixed with [EnvPrefix]
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the client and
// [GetServerConfig] for the server; both start from [GetStructuredConfig].
package config
