// Package adminapi contains the admin dashboard endpoints: inventory
// and stock writes, sales reporting, exports and maintenance tasks.
package adminapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/config"
	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// SchedulerRunner triggers a registered maintenance task immediately.
type SchedulerRunner interface {
	RunSchedulerNow(id int64) error
}

// Settings reads and writes runtime-tunable configuration.
type Settings interface {
	GetString(category, name string) string
	GetInt(category, name string) int
	Save(values map[string]interface{}) error
}

var (
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	adminSvc  *shop.AdminService
	authSvc   *shop.AuthService
	runner    SchedulerRunner
	settings  Settings
)

// Deps carries everything the admin handlers need.
type Deps struct {
	Config   *config.AppConfig
	DB       *gorm.DB
	Admin    *shop.AdminService
	Auth     *shop.AuthService
	Runner   SchedulerRunner
	Settings Settings
}

// Init stores the dependencies and registers all admin routes.
func Init(deps Deps) {
	appConfig = deps.Config
	gormDB = deps.DB
	adminSvc = deps.Admin
	authSvc = deps.Auth
	runner = deps.Runner
	settings = deps.Settings

	registerTokenRoutes()
	registerProductRoutes()
	registerDashboardRoutes()
	registerSchedulerRoutes()
	registerSettingsRoutes()
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

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// oprlog records an admin action in the audit table. Failures are
// logged and otherwise ignored, auditing never blocks the action.
func oprlog(c echo.Context, action, desc string) {
	name := "api-token"
	if sess := session.FromContext(c); sess != nil {
		name = sess.Email
	}
	err := gormDB.Create(&domain.SysOprLog{
		ID:        common.UUIDint64(),
		OprName:   name,
		OprIp:     c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	}).Error
	if err != nil {
		zap.L().Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
