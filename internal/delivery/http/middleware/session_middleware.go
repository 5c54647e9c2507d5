package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionHeader carries the opaque session ID that scopes carts, view
	// preferences and the admin flag.
	SessionHeader = "X-Session-Id"

	// SessionContextKey is where the resolved session ID is stored on the
	// Echo context.
	SessionContextKey = "sessionID"
)

// SessionMiddleware resolves the caller's session ID, minting one for
// first-time callers.
type SessionMiddleware struct{}

// NewSessionMiddleware creates the session resolution middleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Resolve reads the session header, generates a fresh ID when absent, and
// echoes the ID back so the client can persist it.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(SessionContextKey, sessionID)
		c.Response().Header().Set(SessionHeader, sessionID)

		return next(c)
	}
}

// SessionID extracts the resolved session ID from the Echo context.
func SessionID(c echo.Context) string {
	if id, ok := c.Get(SessionContextKey).(string); ok {
		return id
	}

	return ""
}
