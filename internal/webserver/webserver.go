package webserver

import (
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/AkilCDE/urban-trends-apparel/config"
	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/pkg/metrics"
)

// WebServer wraps the echo instance and the route groups handlers
// register into.
type WebServer struct {
	root      *echo.Echo
	appConfig *config.AppConfig
	pub       *echo.Group // no auth
	api       *echo.Group // session required
	admin     *echo.Group // admin session required
	machine   *echo.Group // bearer JWT (machine access to admin data)
}

var server *WebServer

// Init builds the echo server, middleware chain and route groups.
func Init(cfg *config.AppConfig, store *session.Store) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())
	e.Use(session.Middleware(store, cfg.Session.CookieName))

	e.Static("/public", cfg.GetPublicDir())

	s := &WebServer{
		root:      e,
		appConfig: cfg,
		pub:       e.Group(""),
		api:       e.Group("", requireSession),
		admin:     e.Group("", requireAdmin),
		machine: e.Group("/api", echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.Web.JwtSecret),
		})),
	}
	server = s
	return s
}

// Listen starts the HTTP listener and blocks.
func Listen() error {
	cfg := server.appConfig
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))
	return server.root.Start(addr)
}

// Shutdown stops the HTTP listener.
func Shutdown() error {
	return server.root.Close()
}

// Echo exposes the underlying instance (tests).
func Echo() *echo.Echo {
	return server.root
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.CounterInc("http_requests")
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	}
}

func requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session.FromContext(c) == nil {
			return Fail(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Please login first", nil)
		}
		return next(c)
	}
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := session.FromContext(c)
		if sess == nil {
			return Fail(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Please login first", nil)
		}
		if !sess.IsAdmin {
			return Fail(c, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
		}
		return next(c)
	}
}

// Public routes.

func PubGET(path string, h echo.HandlerFunc)  { server.pub.GET(path, h) }
func PubPOST(path string, h echo.HandlerFunc) { server.pub.POST(path, h) }

// Session-authenticated storefront routes.

func ApiGET(path string, h echo.HandlerFunc)  { server.api.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc) { server.api.POST(path, h) }

// Admin routes; registered under the session-admin group and mirrored
// under /api for bearer-token machine access.

func AdminGET(path string, h echo.HandlerFunc) {
	server.admin.GET(path, h)
	server.machine.GET(path, h)
}

func AdminPOST(path string, h echo.HandlerFunc) {
	server.admin.POST(path, h)
	server.machine.POST(path, h)
}
