package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerWishlistRoutes() {
	webserver.ApiPOST("/wishlist", setWishlist)
	webserver.ApiGET("/wishlist", listWishlist)
}

type wishlistPayload struct {
	ProductID int64  `json:"product_id" form:"product_id"`
	Action    string `json:"action" form:"action"`
}

func setWishlist(c echo.Context) error {
	sess := session.FromContext(c)
	var payload wishlistPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse wishlist parameters", err.Error())
	}
	member, err := wishlistSvc.Set(c.Request().Context(), sess.UserID, payload.ProductID, shop.WishlistAction(payload.Action))
	if err != nil {
		return failErr(c, err)
	}
	msg := "Removed from wishlist"
	if member {
		msg = "Added to wishlist"
	}
	return okMessage(c, msg, map[string]interface{}{"in_wishlist": member})
}

func listWishlist(c echo.Context) error {
	sess := session.FromContext(c)
	rows, err := wishlistSvc.List(c.Request().Context(), sess.UserID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}
