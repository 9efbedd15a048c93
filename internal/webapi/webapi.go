// Package webapi contains the storefront JSON endpoints: catalog,
// session cart, wishlist, profile and authentication.
package webapi

import (
	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/config"
	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

var (
	appConfig    *config.AppConfig
	sessionStore *session.Store
	catalogSvc   *shop.CatalogService
	cartSvc      *shop.CartService
	wishlistSvc  *shop.WishlistService
	profileSvc   *shop.ProfileService
	authSvc      *shop.AuthService
)

// Deps carries everything the storefront handlers need.
type Deps struct {
	Config   *config.AppConfig
	Sessions *session.Store
	Catalog  *shop.CatalogService
	Cart     *shop.CartService
	Wishlist *shop.WishlistService
	Profile  *shop.ProfileService
	Auth     *shop.AuthService
}

// Init stores the dependencies and registers all storefront routes.
func Init(deps Deps) {
	appConfig = deps.Config
	sessionStore = deps.Sessions
	catalogSvc = deps.Catalog
	cartSvc = deps.Cart
	wishlistSvc = deps.Wishlist
	profileSvc = deps.Profile
	authSvc = deps.Auth

	registerAuthRoutes()
	registerProductRoutes()
	registerCartRoutes()
	registerWishlistRoutes()
	registerProfileRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return webserver.Ok(c, data)
}

func okMessage(c echo.Context, message string, data interface{}) error {
	return webserver.OkMessage(c, message, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return webserver.Fail(c, status, code, message, detail)
}

func failErr(c echo.Context, err error) error {
	return webserver.FailFromError(c, err)
}
