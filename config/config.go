package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Secret    string `yaml:"secret"`
	JwtSecret string `yaml:"jwt_secret"`
}

type DBConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	ExpireHour int    `yaml:"expire_hour"`
}

type SmtpConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	AlertTo  string `yaml:"alert_to"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system"`
	Web      WebConfig     `yaml:"web"`
	Database DBConfig      `yaml:"database"`
	Session  SessionConfig `yaml:"session"`
	Smtp     SmtpConfig    `yaml:"smtp"`
	Logger   LoggerConfig  `yaml:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetPublicDir() string {
	return filepath.Join(c.System.Workdir, "public")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "UrbanTrends",
		Location: "Asia/Manila",
		Workdir:  "/var/urbantrends",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1816,
		Secret:    "9b6de5cc-0731-1203-xxtt-0f568ac9da37",
		JwtSecret: "9b6de5cc-0731-1203-xxtt-0f568ac9da37",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "urbantrends",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Session: SessionConfig{
		CookieName: "uts_session",
		ExpireHour: 24,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/urbantrends/urbantrends.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig loads the yaml configuration file and applies
// UTS_-prefixed environment overrides on top of it.
func LoadConfig(cfile string) *AppConfig {
	// parse config file
	cfg := new(AppConfig)
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	} else {
		// copy so callers cannot mutate the package-level defaults
		defaults := *DefaultAppConfig
		cfg = &defaults
	}

	setEnvValue("UTS_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("UTS_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("UTS_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("UTS_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("UTS_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("UTS_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvValue("UTS_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("UTS_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("UTS_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("UTS_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("UTS_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("UTS_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvIntValue("UTS_SMTP_PORT", func(v int) { cfg.Smtp.Port = v })
	setEnvValue("UTS_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("UTS_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })

	if cfg.Web.JwtSecret == "" {
		cfg.Web.JwtSecret = cfg.Web.Secret
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "uts_session"
	}
	if cfg.Session.ExpireHour <= 0 {
		cfg.Session.ExpireHour = 24
	}
	return cfg
}
