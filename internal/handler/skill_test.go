package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
)

func insertRawSkill(t *testing.T, db *gorm.DB, id, technologies string, order int) {
	t.Helper()
	now := time.Now()
	err := db.Exec(
		`INSERT INTO skills (id, created_at, updated_at, category, description, technologies, "order") VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, now, now, "Category "+id, "d", technologies, order,
	).Error
	require.NoError(t, err)
}

// A corrupt technologies column must not blank the public skills section: the
// listing succeeds and the bad row renders with an empty list.
func TestListSkillsToleratesMalformedRow(t *testing.T) {
	h := setupHandlerTest(t, NewSkillMgr)

	insertRawSkill(t, h.db, "s-good", `["React","Next.js"]`, 1)
	insertRawSkill(t, h.db, "s-corrupt", `corrupt{`, 2)

	w := h.do(t, http.MethodGet, "/api/skills", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[[]model.Skill](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, model.LenientStringList{"React", "Next.js"}, got[0].Technologies)
	assert.Equal(t, "s-corrupt", got[1].ID)
	assert.Empty(t, got[1].Technologies)
}

func TestSkillCRUD(t *testing.T) {
	h := setupHandlerTest(t, NewSkillMgr)

	w := h.do(t, http.MethodPost, "/api/skills", SkillCreateReq{
		Category:     "Frontend Development",
		Description:  "Building responsive user interfaces",
		Technologies: []string{"React", "TypeScript"},
		Order:        1,
	}, h.adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[model.Skill](t, w)
	require.NotEmpty(t, created.ID)

	desc := "Updated description"
	w = h.do(t, http.MethodPut, "/api/skills/"+created.ID, SkillUpdateReq{Description: &desc}, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[model.Skill](t, w)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, model.LenientStringList{"React", "TypeScript"}, updated.Technologies)

	w = h.do(t, http.MethodDelete, "/api/skills/"+created.ID, nil, h.adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodDelete, "/api/skills/"+created.ID, nil, h.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillMutationNotFound(t *testing.T) {
	h := setupHandlerTest(t, NewSkillMgr)

	category := "x"
	w := h.do(t, http.MethodPut, "/api/skills/missing", SkillUpdateReq{Category: &category}, h.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}
