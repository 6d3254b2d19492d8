package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

func TestGetProfile(t *testing.T) {
	h := setupHandlerTest(t, NewProfileMgr)

	w := h.do(t, http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[ProfileResp](t, w)
	assert.Equal(t, "Admin", got.Name)
	assert.Equal(t, model.UserAttribute{}, got.Attributes)
}

func TestUpdateProfileAttributes(t *testing.T) {
	h := setupHandlerTest(t, NewProfileMgr)

	attrs := model.UserAttribute{
		Headline: "Full-Stack Developer",
		Bio:      "I build things for the web.",
		Github:   "https://github.com/ezedin",
	}
	w := h.do(t, http.MethodPut, "/api/profile/attributes", attrs, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, attrs, decodeBody[ProfileResp](t, w).Attributes)

	// The public profile reflects the change.
	w = h.do(t, http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, attrs, decodeBody[ProfileResp](t, w).Attributes)

	w = h.do(t, http.MethodPut, "/api/profile/attributes", attrs, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
