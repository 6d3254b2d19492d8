package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/ezedin-dev/portfolio-backend/internal/util"
	"github.com/ezedin-dev/portfolio-backend/pkg/alert"
	"github.com/ezedin-dev/portfolio-backend/pkg/revalidate"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the dependencies handed to every manager. Optional
// collaborators (Alerter, Revalidator) may be nil.
type RegisterConfig struct {
	TokenMgr    *util.TokenManager
	Alerter     alert.Alerter
	Revalidator *revalidate.Notifier
	ListCache   *cache.Cache
}

// Registers collects the manager constructors; each handler file appends its
// own in init().
var Registers []func(*RegisterConfig) Manager
