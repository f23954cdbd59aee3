package cookie

import (
	"net/http"

	"github.com/google/uuid"
)

// DefaultSessionName is the cookie holding the anonymous browser session id
// that pending notifications are keyed by.
const DefaultSessionName = "donorkit_sid"

// SessionID returns the signed session id of the browser, issuing a new one
// when the cookie is missing or fails verification.
func (m *Manager) SessionID(w http.ResponseWriter, r *http.Request) string {
	if id, err := m.GetSigned(r, m.sessionName()); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	m.SetSigned(w, m.sessionName(), id)
	return id
}

func (m *Manager) sessionName() string {
	if m.defaults.SessionName != "" {
		return m.defaults.SessionName
	}
	return DefaultSessionName
}
