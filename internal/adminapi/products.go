package adminapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// allowed product image extensions
var imageExtensions = []string{"jpg", "jpeg", "png", "gif"}

const defaultProductImage = "default.jpg"

func registerProductRoutes() {
	webserver.AdminGET("/admin/products", listInventory)
	webserver.AdminPOST("/admin/products", createProduct)
	webserver.AdminPOST("/admin/stock", adjustStock)
}

func listInventory(c echo.Context) error {
	rows, err := adminSvc.Inventory(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}

// createProduct accepts a multipart form: name, description, price,
// category, stock and an optional image file.
func createProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must be a number", nil)
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Stock must be an integer", nil)
	}

	image := defaultProductImage
	if file, err := c.FormFile("image"); err == nil {
		image, err = storeProductImage(file)
		if err != nil {
			return failErr(c, err)
		}
	}

	p, err := adminSvc.CreateProduct(c.Request().Context(), shop.CreateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Category:    c.FormValue("category"),
		Stock:       stock,
		Image:       image,
	})
	if err != nil {
		return failErr(c, err)
	}
	oprlog(c, "create_product", fmt.Sprintf("product %d (%s)", p.ID, p.Name))
	return okMessage(c, "Product created", p)
}

// storeProductImage validates the upload against the extension
// allow-list and writes it under the public assets path with a
// server-generated filename. The client filename is never reused.
func storeProductImage(file *multipart.FileHeader) (string, error) {
	ext := common.FileExt(file.Filename)
	if !common.InSlice(ext, imageExtensions) {
		return "", errors.Wrap(shop.ErrInvalidInput, "image must be one of jpg, jpeg, png, gif")
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(appConfig.GetPublicDir(), "images", "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s.%s", common.UUID(), ext)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

type stockPayload struct {
	ProductID  int64 `json:"product_id" form:"product_id"`
	StockDelta int   `json:"stock_delta" form:"stock_delta"`
}

func adjustStock(c echo.Context) error {
	var payload stockPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse stock parameters", err.Error())
	}
	newStock, err := adminSvc.AdjustStock(c.Request().Context(), payload.ProductID, payload.StockDelta)
	if err != nil {
		return failErr(c, err)
	}
	oprlog(c, "adjust_stock", fmt.Sprintf("product %d delta %d -> %d", payload.ProductID, payload.StockDelta, newStock))
	return okMessage(c, "Stock updated", map[string]interface{}{
		"product_id": payload.ProductID,
		"stock":      newStock,
	})
}
