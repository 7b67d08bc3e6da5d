package crypto

import "fmt"

// Selector dispatches every operation to the first backend, in preference
// order, that declares it can serve the request.
type Selector struct {
	backends []Backend
}

// NewSelector returns a selector over backends, most preferred first.
func NewSelector(backends ...Backend) *Selector {
	return &Selector{backends: backends}
}

// DefaultBackends returns the accelerated backend followed by the portable
// fallback.
func DefaultBackends() []Backend {
	return []Backend{NewNativeBackend(), NewPortableBackend()}
}

// ForDerive returns the backend used for key derivation.
func (s *Selector) ForDerive() (Backend, error) {
	for _, b := range s.backends {
		if b.CanDerive() {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: derive", ErrBackendUnavailable)
}

// ForEncrypt returns the backend used to encrypt with p.
func (s *Selector) ForEncrypt(p *Params) (Backend, error) {
	for _, b := range s.backends {
		if b.CanEncrypt(p) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: encrypt", ErrBackendUnavailable)
}

// ForDecrypt returns the backend used to decrypt p.
func (s *Selector) ForDecrypt(p Params) (Backend, error) {
	for _, b := range s.backends {
		if b.CanDecrypt(p) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: decrypt mode=%q ks=%d ts=%d", ErrBackendUnavailable, p.Mode, p.KS, p.TS)
}

// DeriveKey derives a hex key with the preferred derive backend.
func (s *Selector) DeriveKey(secret, salt string, iterations int, prehash bool) (string, error) {
	b, err := s.ForDerive()
	if err != nil {
		return "", err
	}
	return b.DeriveKey(secret, salt, iterations, prehash)
}

// Encrypt encrypts with the preferred capable backend and checks that every
// field set in p survived unchanged.
func (s *Selector) Encrypt(plaintext, key string, p *Params) (Params, error) {
	b, err := s.ForEncrypt(p)
	if err != nil {
		return Params{}, err
	}

	used, err := b.Encrypt(plaintext, key, p)
	if err != nil {
		return Params{}, fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	if err = verifyRoundTrip(p, used); err != nil {
		return Params{}, fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	return used, nil
}

// Decrypt validates p locally, then decrypts with the preferred capable
// backend. Missing fields never reach a backend.
func (s *Selector) Decrypt(key string, p Params) (string, error) {
	if err := p.validateForDecrypt(); err != nil {
		return "", err
	}

	b, err := s.ForDecrypt(p)
	if err != nil {
		return "", err
	}
	return b.Decrypt(key, p)
}
