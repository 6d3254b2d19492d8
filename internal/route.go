package internal

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/ezedin-dev/portfolio-backend/docs"
	"github.com/ezedin-dev/portfolio-backend/internal/handler"
	"github.com/ezedin-dev/portfolio-backend/internal/middleware"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
	"github.com/ezedin-dev/portfolio-backend/pkg/constants"
)

type Backend struct {
	R *gin.Engine
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.R.ServeHTTP(w, r)
}

func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()

	// Deployment health check
	s.R.GET(constants.HealthzPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	s.RegisterService(conf)

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

func (b *Backend) RegisterService(conf *handler.RegisterConfig) {
	// The browser talks to this API from the frontend's origin.
	if origins := config.GetConfig().CORSOrigins; len(origins) > 0 {
		corsConf := cors.DefaultConfig()
		corsConf.AllowOrigins = origins
		corsConf.AddAllowHeaders("Authorization")
		b.R.Use(cors.New(corsConf))
	}

	managers := registerManagers(conf)

	// Three groups on the same prefix: admin-ness is per method, not per
	// path (POST /api/projects is admin, GET /api/projects is public).
	publicRouter := b.R.Group(constants.APIPrefix)

	protectedRouter := b.R.Group(constants.APIPrefix)
	protectedRouter.Use(middleware.AuthProtected(conf.TokenMgr))

	adminRouter := b.R.Group(constants.APIPrefix)
	adminRouter.Use(middleware.AuthProtected(conf.TokenMgr), middleware.AuthAdmin())

	for _, mgr := range managers {
		mgr.RegisterPublic(publicRouter)
		mgr.RegisterProtected(protectedRouter)
		mgr.RegisterAdmin(adminRouter)
	}
}
