package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager reads and writes cookies with shared defaults. Signed values are
// authenticated with HMAC-SHA256 over every configured secret, so older
// secrets keep verifying during a rotation.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a Manager. The first secret signs, all of them verify.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	return &Manager{secrets: secrets, defaults: defaults}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	o := applyOptions(m.defaults, opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie in the browser.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	m.Set(w, name, m.sign(value), opts...)
}

// GetSigned returns the value of a signed cookie, or ErrInvalidSignature
// when it was tampered with.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

func mac(secret string, value []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(value)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func (m *Manager) sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + mac(m.secrets[0], []byte(value))
}

func (m *Manager) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}
	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		if subtle.ConstantTimeCompare([]byte(signature), []byte(mac(secret, value))) == 1 {
			return string(value), nil
		}
	}
	return "", ErrInvalidSignature
}
