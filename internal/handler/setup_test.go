package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/middleware"
	"github.com/ezedin-dev/portfolio-backend/internal/util"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

// handlerTest is the shared fixture: an in-memory store, a router with the
// same three route groups the server builds, and a signed admin token.
type handlerTest struct {
	router     *gin.Engine
	db         *gorm.DB
	conf       *RegisterConfig
	adminToken string
}

func setupHandlerTest(t *testing.T, newMgrs ...func(*RegisterConfig) Manager) *handlerTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Skill{},
		&model.Experience{},
		&model.Testimonial{},
		&model.ContactSubmission{},
	))
	query.Set(db)
	t.Cleanup(func() { query.Set(nil) })

	cfg := &config.Config{}
	cfg.Auth.AccessTokenSecret = "access-secret"
	cfg.Auth.RefreshTokenSecret = "refresh-secret"
	cfg.Auth.AccessTokenExpiryHour = 1
	cfg.Auth.RefreshTokenExpiryHour = 168

	conf := &RegisterConfig{
		TokenMgr:  util.NewTokenManager(cfg),
		ListCache: cache.New(cache.NoExpiration, 0),
	}

	admin := model.User{Email: "admin@example.com", Name: "Admin", Password: "x", Role: model.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	adminToken, _, err := conf.TokenMgr.CreateTokens(&util.JWTMessage{
		UserID: admin.ID,
		Email:  admin.Email,
		Name:   admin.Name,
		Role:   admin.Role,
	})
	require.NoError(t, err)

	r := gin.New()
	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middleware.AuthProtected(conf.TokenMgr))
	adminGroup := r.Group("/api")
	adminGroup.Use(middleware.AuthProtected(conf.TokenMgr), middleware.AuthAdmin())
	for _, newMgr := range newMgrs {
		mgr := newMgr(conf)
		mgr.RegisterPublic(public)
		mgr.RegisterProtected(protected)
		mgr.RegisterAdmin(adminGroup)
	}

	return &handlerTest{router: r, db: db, conf: conf, adminToken: adminToken}
}

func (h *handlerTest) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
