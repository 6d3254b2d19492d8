package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host       string `json:"host"`       // The public domain name of the API.
	ServerAddr string `json:"serverAddr"` // The address the server endpoint binds to.

	// Origins allowed to call the API from the browser (the Next.js frontend).
	CORSOrigins []string `json:"corsOrigins"`

	Auth struct {
		AccessTokenSecret      string `json:"accessTokenSecret"`
		RefreshTokenSecret     string `json:"refreshTokenSecret"`
		AccessTokenExpiryHour  int    `json:"accessTokenExpiryHour"`
		RefreshTokenExpiryHour int    `json:"refreshTokenExpiryHour"`
	} `json:"auth"`

	// Admin account seeded on first migration.
	Admin struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"` // overridden by ADMIN_PASSWORD if set
	} `json:"admin"`

	// DB Settings. Postgres when host is set, sqlite otherwise.
	Postgres struct {
		Host     string   `json:"host"`
		Port     string   `json:"port"`
		DBName   string   `json:"dbname"`
		User     string   `json:"user"`
		Password string   `json:"password"`
		SSLMode  string   `json:"sslmode"`
		TimeZone string   `json:"TimeZone"`
		Replicas []string `json:"replicas"` // optional read-replica DSNs
	} `json:"postgres"`

	SQLite struct {
		Path string `json:"path"`
	} `json:"sqlite"`

	SMTP struct {
		Enable   bool   `json:"enable"`
		Host     string `json:"host"`
		Port     int    `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Notify   string `json:"notify"` // recipient for contact notifications
	} `json:"smtp"`

	// Frontend ISR revalidation webhook, fired after content mutations.
	Revalidate struct {
		URL    string `json:"url"`
		Secret string `json:"secret"`
	} `json:"revalidate"`

	// Retention job for read contact submissions.
	Retention struct {
		Enable     bool   `json:"enable"`
		Spec       string `json:"spec"`       // cron spec, e.g. "0 3 * * *"
		MaxAgeDays int    `json:"maxAgeDays"` // prune read messages older than this
	} `json:"retention"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode it reads
// ./etc/debug-config.yaml (or PORTFOLIO_DEBUG_CONFIG_PATH); otherwise the
// path mounted by the deployment, /etc/config/config.yaml (or
// PORTFOLIO_CONFIG_PATH). Secrets may be overridden via environment.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("PORTFOLIO_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("PORTFOLIO_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		if os.Getenv("PORTFOLIO_CONFIG_PATH") != "" {
			configPath = os.Getenv("PORTFOLIO_CONFIG_PATH")
		} else {
			configPath = "/etc/config/config.yaml"
		}
	}
	klog.Info("config path: ", configPath)

	if err := readConfig(configPath, config); err != nil {
		klog.Error("init config", err)
		panic(err)
	}

	applyEnvOverrides(config)
	setDefaults(config)
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		config.Auth.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		config.Auth.RefreshTokenSecret = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		config.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		config.Admin.Password = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		config.Postgres.Password = v
	}
}

func setDefaults(config *Config) {
	if config.ServerAddr == "" {
		config.ServerAddr = ":8088"
	}
	if config.Auth.AccessTokenExpiryHour == 0 {
		config.Auth.AccessTokenExpiryHour = 1
	}
	if config.Auth.RefreshTokenExpiryHour == 0 {
		config.Auth.RefreshTokenExpiryHour = 168
	}
	if config.SQLite.Path == "" {
		config.SQLite.Path = "./portfolio.db"
	}
	if config.Retention.Spec == "" {
		config.Retention.Spec = "0 3 * * *"
	}
	if config.Retention.MaxAgeDays == 0 {
		config.Retention.MaxAgeDays = 90
	}
}
