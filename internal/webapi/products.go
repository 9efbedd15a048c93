package webapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerProductRoutes() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/:id", getProduct)
}

func listProducts(c echo.Context) error {
	filter := shop.ProductFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}
	rows, err := catalogSvc.List(c.Request().Context(), filter)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failErr(c, shop.ErrNotFound)
	}
	p, err := catalogSvc.Get(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	// annotate wishlist membership for logged-in browsers
	if sess := session.FromContext(c); sess != nil {
		member, err := wishlistSvc.Contains(c.Request().Context(), sess.UserID, p.ID)
		if err == nil {
			return ok(c, map[string]interface{}{"product": p, "in_wishlist": member})
		}
	}
	return ok(c, map[string]interface{}{"product": p})
}
