package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

func setupAuthHandlerTest(t *testing.T) *handlerTest {
	t.Helper()
	h := setupHandlerTest(t, NewAuthMgr)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, h.db.Model(&model.User{}).
		Where("email = ?", "admin@example.com").
		Update("password", string(hash)).Error)
	return h
}

func TestLogin(t *testing.T) {
	h := setupAuthHandlerTest(t)

	w := h.do(t, http.MethodPost, "/api/auth/login", LoginReq{
		Email:    "admin@example.com",
		Password: "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[LoginResp](t, w)
	assert.NotEmpty(t, got.AccessToken)
	assert.NotEmpty(t, got.RefreshToken)
	assert.Equal(t, "admin@example.com", got.User.Email)
	assert.Equal(t, model.RoleAdmin, got.User.Role)

	// The issued access token must open the protected routes.
	w = h.do(t, http.MethodGet, "/api/auth/me", nil, got.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody[UserSummary](t, w)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := setupAuthHandlerTest(t)

	tests := []struct {
		name string
		req  LoginReq
	}{
		{name: "wrong password", req: LoginReq{Email: "admin@example.com", Password: "nope"}},
		{name: "unknown account", req: LoginReq{Email: "ghost@example.com", Password: "admin123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(t, http.MethodPost, "/api/auth/login", tt.req, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
		})
	}
}

func TestLoginValidation(t *testing.T) {
	h := setupAuthHandlerTest(t)

	w := h.do(t, http.MethodPost, "/api/auth/login", LoginReq{Email: "admin@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshToken(t *testing.T) {
	h := setupAuthHandlerTest(t)

	w := h.do(t, http.MethodPost, "/api/auth/login", LoginReq{
		Email:    "admin@example.com",
		Password: "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody[LoginResp](t, w)

	w = h.do(t, http.MethodPost, "/api/auth/refresh", RefreshReq{RefreshToken: session.RefreshToken}, "")
	require.Equal(t, http.StatusOK, w.Code)
	renewed := decodeBody[LoginResp](t, w)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.Equal(t, "admin@example.com", renewed.User.Email)

	// An access token is signed with the other secret and must be refused.
	w = h.do(t, http.MethodPost, "/api/auth/refresh", RefreshReq{RefreshToken: session.AccessToken}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	h := setupAuthHandlerTest(t)

	w := h.do(t, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}
