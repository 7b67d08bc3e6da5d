package models

// Error codes returned by the vault server in [VaultAPIResponse.Code].
const (
	// CodeNotFastForward means the stored cipher moved since the client's
	// last pull: the request carried a stale old_hash.
	CodeNotFastForward = "EFAST"

	// CodeAuthentication means the username/remote key pair was rejected.
	CodeAuthentication = "EAUTH"

	// CodeDemoMode means the server is a demo deployment and refuses writes.
	CodeDemoMode = "EDEMO"
)

// ServerConfig is the public configuration exposed by GET {server}/config.
type ServerConfig struct {
	Version int   `json:"version"`
	Demo    bool  `json:"demo"`
	Salts   Salts `json:"salts"`
}

// Salts are the server-provided salts used to derive the local and remote
// keys from the master password.
type Salts struct {
	LocalKeySalt  string `json:"local_key_salt"`
	RemoteKeySalt string `json:"remote_key_salt"`
}

// UpdateCipherRequest is the body of a push.
type UpdateCipherRequest struct {
	// NewPassword asks the server to authenticate subsequent requests with
	// this remote key. Empty when the remote key does not change.
	NewPassword string `json:"new_password,omitempty"`

	// NewData is the SJCL JSON cipher of the serialized database.
	NewData string `json:"new_data"`

	// OldHash is the fingerprint of the cipher this push replaces. Empty on
	// the very first push.
	OldHash string `json:"old_hash,omitempty"`

	// NewHash is the fingerprint of NewData's plaintext.
	NewHash string `json:"new_hash"`

	// Force skips the fast-forward check. Clients never set it.
	Force bool `json:"force"`
}

// VaultAPIResponse is the envelope of every vault_api response.
type VaultAPIResponse struct {
	Error       bool   `json:"error"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Data        string `json:"data,omitempty"`
}

// StoredVault is the server-side record of one user's vault.
type StoredVault struct {
	Username  string
	RemoteKey string
	Cipher    string
	Hash      string
}

// VaultRef addresses one vault on the server: the path parameters of
// /{username}/{remoteKey}/vaultage_api.
type VaultRef struct {
	Username  string
	RemoteKey string
}
