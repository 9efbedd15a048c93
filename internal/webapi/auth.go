package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerAuthRoutes() {
	webserver.PubPOST("/login", login)
	webserver.PubPOST("/register", register)
	webserver.PubGET("/logout", logout)
}

type loginPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login parameters", err.Error())
	}
	user, err := authSvc.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return failErr(c, err)
	}
	sess, err := sessionStore.Create(user)
	if err != nil {
		return failErr(c, err)
	}
	session.SetCookie(c, appConfig.Session.CookieName, sess)
	return okMessage(c, "Login successful", map[string]interface{}{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}

func register(c echo.Context) error {
	var payload struct {
		Email     string `json:"email" form:"email"`
		Password  string `json:"password" form:"password"`
		Firstname string `json:"firstname" form:"firstname"`
		Lastname  string `json:"lastname" form:"lastname"`
		Address   string `json:"address" form:"address"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse register parameters", err.Error())
	}
	user, err := authSvc.Register(c.Request().Context(), shop.RegisterInput{
		Email:     payload.Email,
		Password:  payload.Password,
		Firstname: payload.Firstname,
		Lastname:  payload.Lastname,
		Address:   payload.Address,
	})
	if err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Account created", map[string]interface{}{"user_id": user.ID})
}

func logout(c echo.Context) error {
	if sess := session.FromContext(c); sess != nil {
		_ = sessionStore.Destroy(sess.Token)
	}
	session.ClearCookie(c, appConfig.Session.CookieName)
	return okMessage(c, "Logged out", nil)
}
