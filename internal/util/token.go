package util

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

type (
	JWTClaims struct {
		UserID string     `json:"ui"`
		Email  string     `json:"em"`
		Name   string     `json:"nm"`
		Role   model.Role `json:"rl"`
		jwt.RegisteredClaims
	}
	JWTMessage struct {
		UserID string     `json:"userID"`
		Email  string     `json:"email"`
		Name   string     `json:"name"`
		Role   model.Role `json:"role"`
	}
)

// TokenManager signs and verifies the access/refresh token pair. It is
// constructed once in main and handed to the handlers and middleware that
// need it, so the authorization dependency stays explicit and testable.
type TokenManager struct {
	accessSecret  string
	refreshSecret string
	accessTTL     int
	refreshTTL    int
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		accessSecret:  cfg.Auth.AccessTokenSecret,
		refreshSecret: cfg.Auth.RefreshTokenSecret,
		accessTTL:     cfg.Auth.AccessTokenExpiryHour,
		refreshTTL:    cfg.Auth.RefreshTokenExpiryHour,
	}
}

func (tm *TokenManager) createToken(msg *JWTMessage, secret string, ttl int) (string, error) {
	expiresAt := time.Now().Add(time.Hour * time.Duration(ttl))

	claims := &JWTClaims{
		UserID: msg.UserID,
		Email:  msg.Email,
		Name:   msg.Name,
		Role:   msg.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateTokens creates a new access token and a new refresh token.
func (tm *TokenManager) CreateTokens(msg *JWTMessage) (accessToken, refreshToken string, err error) {
	accessToken, err = tm.createToken(msg, tm.accessSecret, tm.accessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = tm.createToken(msg, tm.refreshSecret, tm.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (tm *TokenManager) checkToken(requestToken, secret string) (JWTMessage, error) {
	claims := JWTClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	return JWTMessage{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}, err
}

// CheckToken verifies an access token.
func (tm *TokenManager) CheckToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.accessSecret)
}

// CheckRefreshToken verifies a refresh token.
func (tm *TokenManager) CheckRefreshToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.refreshSecret)
}
