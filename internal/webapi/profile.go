package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerProfileRoutes() {
	webserver.ApiGET("/profile", getProfile)
	webserver.ApiPOST("/profile", updateProfile)
	webserver.ApiPOST("/profile/password", changePassword)
}

func getProfile(c echo.Context) error {
	sess := session.FromContext(c)
	overview, err := profileSvc.Overview(c.Request().Context(), sess.UserID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, overview)
}

func updateProfile(c echo.Context) error {
	sess := session.FromContext(c)
	var payload shop.ProfileUpdateInput
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse profile parameters", err.Error())
	}
	user, err := profileSvc.UpdateProfile(c.Request().Context(), sess.UserID, payload)
	if err != nil {
		return failErr(c, err)
	}
	// keep the session copy in sync for display
	sess.Firstname = user.Firstname
	sess.Lastname = user.Lastname
	sess.Address = user.Address
	if err := sessionStore.Save(sess); err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Profile updated", user)
}

func changePassword(c echo.Context) error {
	sess := session.FromContext(c)
	var payload struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse password parameters", err.Error())
	}
	if err := profileSvc.ChangePassword(c.Request().Context(), sess.UserID, payload.CurrentPassword, payload.NewPassword); err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Password changed", nil)
}
