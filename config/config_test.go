package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "UrbanTrends", cfg.System.Appid)
	assert.Equal(t, 1816, cfg.Web.Port)
	assert.Equal(t, "uts_session", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.ExpireHour)
}

func TestLoadConfigReturnsFreshCopy(t *testing.T) {
	cfg := LoadConfig("")
	cfg.Database.Type = "mysql"
	cfg.Web.Port = 1

	assert.Equal(t, "postgres", DefaultAppConfig.Database.Type)
	assert.Equal(t, 1816, DefaultAppConfig.Web.Port)

	fresh := LoadConfig("")
	assert.Equal(t, "postgres", fresh.Database.Type)
	assert.Equal(t, 1816, fresh.Web.Port)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
system:
  appid: TestShop
  workdir: /tmp/testshop
web:
  host: 127.0.0.1
  port: 9090
  secret: topsecret
database:
  type: postgres
  name: testdb
session:
  expire_hour: 48
`
	cfile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "TestShop", cfg.System.Appid)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "testdb", cfg.Database.Name)
	assert.Equal(t, 48, cfg.Session.ExpireHour)
	// jwt secret falls back to the web secret
	assert.Equal(t, "topsecret", cfg.Web.JwtSecret)
	// cookie name defaults when omitted
	assert.Equal(t, "uts_session", cfg.Session.CookieName)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("UTS_WEB_PORT", "8081")
	t.Setenv("UTS_DB_HOST", "db.internal")
	t.Setenv("UTS_SYSTEM_DEBUG", "false")

	cfg := LoadConfig("")
	assert.Equal(t, 8081, cfg.Web.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.False(t, cfg.System.Debug)
}

func TestDirHelpers(t *testing.T) {
	cfg := &AppConfig{System: SysConfig{Workdir: "/srv/shop"}}
	assert.Equal(t, filepath.Join("/srv/shop", "logs"), cfg.GetLogDir())
	assert.Equal(t, filepath.Join("/srv/shop", "data"), cfg.GetDataDir())
	assert.Equal(t, filepath.Join("/srv/shop", "public"), cfg.GetPublicDir())
}
