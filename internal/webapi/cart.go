package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerCartRoutes() {
	webserver.ApiPOST("/cart/add", addToCart)
	webserver.ApiPOST("/cart/update", updateCart)
	webserver.ApiPOST("/cart/remove", removeFromCart)
	webserver.ApiGET("/cart", getCart)
}

type cartPayload struct {
	ProductID int64  `json:"product_id" form:"product_id"`
	Quantity  int    `json:"quantity" form:"quantity"`
	Size      string `json:"size" form:"size"`
}

func addToCart(c echo.Context) error {
	sess := session.FromContext(c)
	var payload cartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart parameters", err.Error())
	}
	summary, err := cartSvc.AddToCart(c.Request().Context(), sess, shop.AddToCartInput{
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		Size:      payload.Size,
	})
	if err != nil {
		return failErr(c, err)
	}
	if err := sessionStore.Save(sess); err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Product added to cart", summary)
}

func updateCart(c echo.Context) error {
	sess := session.FromContext(c)
	var payload cartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart parameters", err.Error())
	}
	summary, err := cartSvc.UpdateQuantity(c.Request().Context(), sess, payload.ProductID, payload.Size, payload.Quantity)
	if err != nil {
		return failErr(c, err)
	}
	if err := sessionStore.Save(sess); err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Cart updated", summary)
}

func removeFromCart(c echo.Context) error {
	sess := session.FromContext(c)
	var payload cartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart parameters", err.Error())
	}
	summary := cartSvc.RemoveFromCart(sess, payload.ProductID, payload.Size)
	if err := sessionStore.Save(sess); err != nil {
		return failErr(c, err)
	}
	return okMessage(c, "Product removed from cart", summary)
}

func getCart(c echo.Context) error {
	sess := session.FromContext(c)
	return ok(c, map[string]interface{}{
		"lines":   sess.Cart,
		"summary": cartSvc.Summary(sess),
	})
}
