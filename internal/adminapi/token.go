package adminapi

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerTokenRoutes() {
	webserver.PubPOST("/api/token", issueToken)
}

type tokenPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// issueToken exchanges admin credentials for a bearer token usable on
// the /api mirror of the admin routes.
func issueToken(c echo.Context) error {
	var payload tokenPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse token parameters", err.Error())
	}
	user, err := authSvc.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return failErr(c, err)
	}
	if !user.IsAdmin {
		return fail(c, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"level": "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(8 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(appConfig.Web.JwtSecret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to sign token", err.Error())
	}
	return ok(c, map[string]interface{}{
		"token":      signed,
		"expires_at": now.Add(8 * time.Hour).Unix(),
	})
}
