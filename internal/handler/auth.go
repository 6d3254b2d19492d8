package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
	"github.com/ezedin-dev/portfolio-backend/internal/util"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name     string
	tokenMgr *util.TokenManager
}

func NewAuthMgr(conf *RegisterConfig) Manager {
	return &AuthMgr{
		name:     "auth",
		tokenMgr: conf.TokenMgr,
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/auth/login", mgr.Login)
	g.POST("/auth/refresh", mgr.RefreshToken)
}

func (mgr *AuthMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/auth/me", mgr.Me)
}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	LoginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	RefreshReq struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	UserSummary struct {
		Email string     `json:"email"`
		Name  string     `json:"name"`
		Role  model.Role `json:"role"`
	}

	LoginResp struct {
		AccessToken  string      `json:"accessToken"`
		RefreshToken string      `json:"refreshToken"`
		User         UserSummary `json:"user"`
	}
)

// Login godoc
// @Summary Log in with the admin credentials
// @Description Verifies email/password and returns the JWT token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body LoginReq true "credentials"
// @Success 200 {object} LoginResp
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	l := logutils.Log.WithFields(logutils.Fields{"email": req.Email})

	var user model.User
	if err := query.DB().WithContext(c).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Errorf("load user: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		l.Error("invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	mgr.issueTokens(c, &user)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body RefreshReq true "refresh token"
// @Success 200 {object} LoginResp
// @Failure 401 {object} map[string]string
// @Router /api/auth/refresh [post]
func (mgr *AuthMgr) RefreshToken(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	msg, err := mgr.tokenMgr.CheckRefreshToken(req.RefreshToken)
	if err != nil {
		resputil.Unauthorized(c)
		return
	}

	// Reload the account so a role change takes effect on refresh.
	var user model.User
	if err := query.DB().WithContext(c).First(&user, "id = ?", msg.UserID).Error; err != nil {
		resputil.Unauthorized(c)
		return
	}

	mgr.issueTokens(c, &user)
}

// Me godoc
// @Summary Current session info
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} UserSummary
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (mgr *AuthMgr) Me(c *gin.Context) {
	token := util.GetToken(c)
	resputil.Success(c, UserSummary{
		Email: token.Email,
		Name:  token.Name,
		Role:  token.Role,
	})
}

func (mgr *AuthMgr) issueTokens(c *gin.Context, user *model.User) {
	msg := util.JWTMessage{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	access, refresh, err := mgr.tokenMgr.CreateTokens(&msg)
	if err != nil {
		logutils.Log.Errorf("create tokens: %v", err)
		resputil.Error(c, "Failed to create session")
		return
	}

	resputil.Success(c, LoginResp{
		AccessToken:  access,
		RefreshToken: refresh,
		User: UserSummary{
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}
