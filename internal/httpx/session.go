package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "kiosk_session"

// sessionID returns the caller's session id, minting a cookie when the
// request has none. Cart and flash state are keyed by this id.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400,
	})
	return id
}
