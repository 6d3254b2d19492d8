package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

// recordingAlerter captures notifications instead of sending mail.
type recordingAlerter struct {
	received []*model.ContactSubmission
	err      error
}

func (a *recordingAlerter) ContactReceived(_ context.Context, s *model.ContactSubmission) error {
	a.received = append(a.received, s)
	return a.err
}

func validContactBody() ContactCreateReq {
	return ContactCreateReq{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to work with you.",
	}
}

func TestCreateSubmission(t *testing.T) {
	h := setupHandlerTest(t, NewContactMgr)

	w := h.do(t, http.MethodPost, "/api/contact", validContactBody(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	got := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Message sent successfully", got["message"])
	assert.NotEmpty(t, got["id"])

	var stored model.ContactSubmission
	require.NoError(t, h.db.First(&stored, "id = ?", got["id"]).Error)
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.False(t, stored.IsRead)
}

func TestCreateSubmissionValidation(t *testing.T) {
	h := setupHandlerTest(t, NewContactMgr)

	blankEmail := validContactBody()
	blankEmail.Email = ""
	blankMessage := validContactBody()
	blankMessage.Message = ""

	tests := []struct {
		name string
		body any
	}{
		{name: "blank email", body: blankEmail},
		{name: "blank message", body: blankMessage},
		{name: "not json", body: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(t, http.MethodPost, "/api/contact", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, h.db.Model(&model.ContactSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}

// A failing mail notification must not fail the submission itself.
func TestCreateSubmissionNotifies(t *testing.T) {
	h := setupHandlerTest(t)
	alerter := &recordingAlerter{err: errors.New("smtp down")}
	h.conf.Alerter = alerter
	mgr := NewContactMgr(h.conf)
	mgr.RegisterPublic(h.router.Group("/api"))

	w := h.do(t, http.MethodPost, "/api/contact", validContactBody(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, alerter.received, 1)
	assert.Equal(t, "Project inquiry", alerter.received[0].Subject)
}

func TestListSubmissions(t *testing.T) {
	h := setupHandlerTest(t, NewContactMgr)

	older := model.ContactSubmission{
		Base: model.Base{ID: "m-old", CreatedAt: time.Now().Add(-time.Hour)},
		Name: "Old", Email: "old@example.com", Subject: "s", Message: "m",
	}
	newer := model.ContactSubmission{
		Base: model.Base{ID: "m-new", CreatedAt: time.Now()},
		Name: "New", Email: "new@example.com", Subject: "s", Message: "m",
	}
	require.NoError(t, h.db.Create(&older).Error)
	require.NoError(t, h.db.Create(&newer).Error)

	w := h.do(t, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/api/contact", nil, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[[]model.ContactSubmission](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "m-new", got[0].ID)
	assert.Equal(t, "m-old", got[1].ID)
}

func TestSetReadFlag(t *testing.T) {
	h := setupHandlerTest(t, NewContactMgr)

	submission := model.ContactSubmission{
		Base: model.Base{ID: "m-1"},
		Name: "Jane", Email: "jane@example.com", Subject: "s", Message: "m",
	}
	require.NoError(t, h.db.Create(&submission).Error)

	w := h.do(t, http.MethodPut, "/api/contact/m-1/read", ContactReadReq{IsRead: true}, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[model.ContactSubmission](t, w)
	assert.True(t, got.IsRead)

	w = h.do(t, http.MethodPut, "/api/contact/m-1/read", ContactReadReq{IsRead: false}, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	got = decodeBody[model.ContactSubmission](t, w)
	assert.False(t, got.IsRead)

	w = h.do(t, http.MethodPut, "/api/contact/missing/read", ContactReadReq{IsRead: true}, h.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSubmission(t *testing.T) {
	h := setupHandlerTest(t, NewContactMgr)

	submission := model.ContactSubmission{
		Base: model.Base{ID: "m-1"},
		Name: "Jane", Email: "jane@example.com", Subject: "s", Message: "m",
	}
	require.NoError(t, h.db.Create(&submission).Error)

	w := h.do(t, http.MethodDelete, "/api/contact/m-1", nil, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Deleted successfully"}`, w.Body.String())

	w = h.do(t, http.MethodDelete, "/api/contact/m-1", nil, h.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
