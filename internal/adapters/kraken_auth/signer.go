package kraken_auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
)

// Signer implements Kraken private endpoint signing:
//
//	API-Sign = base64(HMAC-SHA512(base64decode(secret), path + SHA256(nonce + body)))
//
// The decoded secret is held for the lifetime of the signer.
type Signer struct {
	apiKey string
	secret []byte
}

// NewSigner decodes the base64 API secret and returns a Signer.
func NewSigner(apiKey, secret string) (*Signer, error) {
	if apiKey == "" {
		return nil, errors.New("api key is empty")
	}
	if secret == "" {
		return nil, errors.New("api secret is empty")
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("decode api secret: %w", err)
	}
	return &Signer{apiKey: apiKey, secret: key}, nil
}

// Enabled reports whether this signer has credentials loaded.
func (s *Signer) Enabled() bool {
	return s != nil && s.apiKey != "" && len(s.secret) > 0
}

// Sign returns the API-Sign value for a request to path whose url-encoded
// body is encodedParams. The body must already contain nonce.
func (s *Signer) Sign(path, nonce, encodedParams string) string {
	digest := sha256.Sum256([]byte(nonce + encodedParams))

	message := make([]byte, 0, len(path)+len(digest))
	message = append(message, path...)
	message = append(message, digest[:]...)

	mac := hmac.New(sha512.New, s.secret)
	mac.Write(message)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignRequest sets API-Key and API-Sign on req. No-op when s is nil.
func (s *Signer) SignRequest(req *http.Request, nonce, encodedParams string) error {
	if s == nil {
		return nil
	}
	if !s.Enabled() {
		return errors.New("signer has no credentials")
	}

	req.Header.Set("API-Key", s.apiKey)
	req.Header.Set("API-Sign", s.Sign(req.URL.Path, nonce, encodedParams))
	return nil
}
