package helper

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"

	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/handler"
	"github.com/ezedin-dev/portfolio-backend/internal/util"
	"github.com/ezedin-dev/portfolio-backend/pkg/alert"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
	"github.com/ezedin-dev/portfolio-backend/pkg/revalidate"
)

const (
	listCacheTTL     = 5 * time.Minute
	listCacheCleanup = 10 * time.Minute
)

// ConfigInitializer wires the configuration into the runtime dependencies.
type ConfigInitializer struct {
	backendConfig *config.Config
}

func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment reads .debug.env in debug mode so local runs can keep
// secrets out of the config file.
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	if _, err := os.Stat(".debug.env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(".debug.env"); err != nil {
		return err
	}

	if port := os.Getenv("PORTFOLIO_BE_PORT"); port != "" {
		ci.backendConfig.ServerAddr = ":" + port
	}

	return nil
}

// InitializeRegisterConfig opens the database, runs migrations and builds the
// dependency set handed to the handler managers.
func (ci *ConfigInitializer) InitializeRegisterConfig() (*handler.RegisterConfig, error) {
	if err := query.Init(ci.backendConfig); err != nil {
		return nil, err
	}
	if err := query.Migrate(query.DB(), ci.backendConfig); err != nil {
		return nil, err
	}

	registerConfig := &handler.RegisterConfig{
		TokenMgr:    util.NewTokenManager(ci.backendConfig),
		Revalidator: revalidate.New(ci.backendConfig.Revalidate.URL, ci.backendConfig.Revalidate.Secret),
		ListCache:   cache.New(listCacheTTL, listCacheCleanup),
	}
	// Keep the interface nil when SMTP is disabled, a typed nil would defeat
	// the handler's nil check.
	if alerter := alert.NewSMTPAlerter(ci.backendConfig); alerter != nil {
		registerConfig.Alerter = alerter
	}

	return registerConfig, nil
}
