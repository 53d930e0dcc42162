// Package security issues the nonces that guard state-changing requests and
// verifies admin bearer tokens.
package security

import (
	"fmt"
	"time"

	"github.com/gorilla/securecookie"

	"banner-rotator/internal/core/port"
)

// Nonce actions.
const (
	ActionBannerClick  = "banner_click"
	ActionExportSingle = "export_single_banner_stats"
)

type noncePayload struct {
	Action  string `json:"a"`
	Subject string `json:"s,omitempty"`
}

// Nonces issues and verifies short-lived tokens bound to an action and, for
// authenticated callers, to a subject. Anonymous visitors use an empty
// subject.
type Nonces struct {
	codec *securecookie.SecureCookie
}

// NewNonces creates a nonce issuer authenticating with key. Nonces expire
// after lifetime, rounded up to whole seconds.
func NewNonces(key []byte, lifetime time.Duration) *Nonces {
	maxAge := int((lifetime + time.Second - 1) / time.Second)
	if maxAge < 1 {
		maxAge = 1
	}
	codec := securecookie.New(key, nil).MaxAge(maxAge)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Nonces{codec: codec}
}

// Issue returns a nonce for action and subject.
func (n *Nonces) Issue(action, subject string) (string, error) {
	token, err := n.codec.Encode(action, noncePayload{Action: action, Subject: subject})
	if err != nil {
		return "", fmt.Errorf("issue nonce: %w", err)
	}
	return token, nil
}

// Verify checks token against action and subject. Every failure, including
// expiry, is reported as port.ErrInvalidNonce.
func (n *Nonces) Verify(action, subject, token string) error {
	if token == "" {
		return port.ErrInvalidNonce
	}
	var p noncePayload
	if err := n.codec.Decode(action, token, &p); err != nil {
		return fmt.Errorf("%w: %v", port.ErrInvalidNonce, err)
	}
	if p.Action != action || p.Subject != subject {
		return port.ErrInvalidNonce
	}
	return nil
}
