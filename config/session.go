package config

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
)

// SessionStore builds the cookie store backing the session middleware.
// The session carries the authenticated identity and the in-flight
// booking/payment drafts.
func SessionStore() sessions.Store {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "glamora-dev-session-secret"
	}

	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   24 * 3600,
		HttpOnly: true,
	})
	return store
}
