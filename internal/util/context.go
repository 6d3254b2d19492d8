package util

import (
	"github.com/gin-gonic/gin"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

const (
	UserIDKey    = "x-user-id"
	UserEmailKey = "x-user-email"
	UserNameKey  = "x-user-name"
	UserRoleKey  = "x-user-role"
)

// SetJWTContext stores the verified token claims on the request context.
func SetJWTContext(c *gin.Context, msg JWTMessage) {
	c.Set(UserIDKey, msg.UserID)
	c.Set(UserEmailKey, msg.Email)
	c.Set(UserNameKey, msg.Name)
	c.Set(UserRoleKey, msg.Role)
}

// GetToken reads the claims a preceding auth middleware stored.
func GetToken(c *gin.Context) JWTMessage {
	var msg JWTMessage
	msg.UserID = c.GetString(UserIDKey)
	msg.Email = c.GetString(UserEmailKey)
	msg.Name = c.GetString(UserNameKey)

	if role, ok := c.Get(UserRoleKey); ok {
		msg.Role = role.(model.Role)
	}
	return msg
}
