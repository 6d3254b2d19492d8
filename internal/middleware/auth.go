package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
	"github.com/ezedin-dev/portfolio-backend/internal/util"
)

// AuthProtected verifies the bearer token and stores its claims on the
// request context. Mutating requests re-check the account against the store
// so a stale token cannot outlive a deleted or demoted user.
func AuthProtected(tokenMgr *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) < 2 || t[0] != "Bearer" {
			resputil.Unauthorized(c)
			c.Abort()
			return
		}

		token, err := tokenMgr.CheckToken(t[1])
		if err != nil {
			resputil.Unauthorized(c)
			c.Abort()
			return
		}

		if c.Request.Method != http.MethodGet {
			var user model.User
			if err := query.DB().Where("id = ?", token.UserID).First(&user).Error; err != nil {
				resputil.Unauthorized(c)
				c.Abort()
				return
			}
			if user.Role != token.Role {
				resputil.Unauthorized(c)
				c.Abort()
				return
			}
		}

		util.SetJWTContext(c, token)
		c.Next()
	}
}

// AuthAdmin rejects any session that does not carry the admin role. A
// missing session and an insufficient one are indistinguishable to the
// caller.
func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.GetToken(c)
		if token.Role != model.RoleAdmin {
			resputil.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
