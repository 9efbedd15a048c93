package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const contextKey = "uts.session"

// Middleware resolves the session cookie to a *Data and stores it in
// the echo context. Requests without a valid session pass through;
// handlers decide whether authentication is required.
func Middleware(store *Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				if data, err := store.Get(cookie.Value); err == nil {
					c.Set(contextKey, data)
				}
			}
			return next(c)
		}
	}
}

// FromContext returns the current session, or nil when the request is
// not authenticated.
func FromContext(c echo.Context) *Data {
	data, _ := c.Get(contextKey).(*Data)
	return data
}

// SetCookie attaches the session cookie to the response.
func SetCookie(c echo.Context, cookieName string, data *Data) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    data.Token,
		Path:     "/",
		Expires:  data.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context, cookieName string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
