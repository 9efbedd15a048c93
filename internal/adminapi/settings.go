package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

func registerSettingsRoutes() {
	webserver.AdminGET("/admin/settings", getSettings)
	webserver.AdminPOST("/admin/settings", saveSettings)
}

// storeSettings is the typed view of the tunable store settings.
type storeSettings struct {
	StoreName         string `json:"store_name" mapstructure:"store_name"`
	LowStockThreshold int    `json:"low_stock_threshold" mapstructure:"low_stock_threshold"`
	AlertEmail        string `json:"alert_email" mapstructure:"alert_email"`
}

func getSettings(c echo.Context) error {
	return ok(c, storeSettings{
		StoreName:         settings.GetString("store", "StoreName"),
		LowStockThreshold: settings.GetInt("store", "LowStockThreshold"),
		AlertEmail:        settings.GetString("store", "AlertEmail"),
	})
}

func saveSettings(c echo.Context) error {
	var raw map[string]interface{}
	if err := c.Bind(&raw); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}
	// decode loosely-typed form values into the typed settings struct
	var in storeSettings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &in,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DECODE_ERROR", "Failed to build decoder", err.Error())
	}
	if err := decoder.Decode(raw); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to decode settings", err.Error())
	}
	if in.LowStockThreshold < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Low stock threshold must be >= 0", nil)
	}
	err = settings.Save(map[string]interface{}{
		"store.StoreName":         in.StoreName,
		"store.LowStockThreshold": in.LowStockThreshold,
		"store.AlertEmail":        in.AlertEmail,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save settings", err.Error())
	}
	oprlog(c, "save_settings", "store settings")
	return okMessage(c, "Settings saved", in)
}
