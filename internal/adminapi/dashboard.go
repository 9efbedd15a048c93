package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
	"github.com/AkilCDE/urban-trends-apparel/pkg/metrics"
)

func registerDashboardRoutes() {
	webserver.AdminGET("/admin/dashboard", getDashboard)
	webserver.AdminGET("/admin/export/orders.csv", exportOrdersCSV)
	webserver.AdminGET("/admin/export/sales.xlsx", exportSalesXLSX)
	webserver.AdminGET("/admin/system/metrics", getSystemMetrics)
}

func getDashboard(c echo.Context) error {
	stats, err := adminSvc.Dashboard(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, stats)
}

// parseRange reads optional from/to query params; dateparse accepts
// most common formats.
func parseRange(c echo.Context) (from, to time.Time, err error) {
	if v := strings.TrimSpace(c.QueryParam("from")); v != "" {
		from, err = dateparse.ParseAny(v)
		if err != nil {
			return from, to, err
		}
	}
	if v := strings.TrimSpace(c.QueryParam("to")); v != "" {
		to, err = dateparse.ParseAny(v)
		if err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func exportOrdersCSV(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse date range", err.Error())
	}
	rows, err := adminSvc.ExportOrders(c.Request().Context(), from, to)
	if err != nil {
		return failErr(c, err)
	}
	oprlog(c, "export_orders", fmt.Sprintf("%d rows", len(rows)))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(rows, c.Response())
}

func exportSalesXLSX(c echo.Context) error {
	stats, err := adminSvc.Dashboard(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	oprlog(c, "export_sales", "sales workbook")
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return shop.WriteSalesReport(c.Response(), stats, time.Now())
}

// getSystemMetrics returns the local time-series for one metric name,
// covering the trailing window given by last (default 1h).
func getSystemMetrics(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Metric name is required", nil)
	}
	last := time.Hour
	if v := c.QueryParam("last"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse duration", err.Error())
		}
		last = d
	}
	end := time.Now()
	points, err := metrics.Query(name, end.Add(-last), end)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"name": name, "points": points})
}
