package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
	"github.com/ezedin-dev/portfolio-backend/pkg/revalidate"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewExperienceMgr)
}

type ExperienceMgr struct {
	name        string
	cache       *cache.Cache
	revalidator *revalidate.Notifier
}

func NewExperienceMgr(conf *RegisterConfig) Manager {
	return &ExperienceMgr{
		name:        "experiences",
		cache:       conf.ListCache,
		revalidator: conf.Revalidator,
	}
}

func (mgr *ExperienceMgr) GetName() string { return mgr.name }

func (mgr *ExperienceMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/experiences", mgr.ListExperiences)
}

func (mgr *ExperienceMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *ExperienceMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/experiences", mgr.CreateExperience)
	g.PUT("/experiences/:id", mgr.UpdateExperience)
	g.DELETE("/experiences/:id", mgr.DeleteExperience)
}

type (
	ExperienceCreateReq struct {
		Title        string              `json:"title" binding:"required"`
		Company      string              `json:"company" binding:"required"`
		Location     string              `json:"location" binding:"required"`
		Type         string              `json:"type" binding:"required"`
		Period       string              `json:"period" binding:"required"`
		Description  string              `json:"description" binding:"required"`
		Achievements []model.Achievement `json:"achievements"`
		Technologies []string            `json:"technologies"`
		Highlights   []string            `json:"highlights"`
		Order        int                 `json:"order"`
	}

	ExperienceUpdateReq struct {
		Title        *string              `json:"title"`
		Company      *string              `json:"company"`
		Location     *string              `json:"location"`
		Type         *string              `json:"type"`
		Period       *string              `json:"period"`
		Description  *string              `json:"description"`
		Achievements *[]model.Achievement `json:"achievements"`
		Technologies *[]string            `json:"technologies"`
		Highlights   *[]string            `json:"highlights"`
		Order        *int                 `json:"order"`
	}
)

// ListExperiences godoc
// @Summary List experience entries
// @Tags Experience
// @Produce json
// @Success 200 {array} model.Experience
// @Failure 500 {object} map[string]string
// @Router /api/experiences [get]
func (mgr *ExperienceMgr) ListExperiences(c *gin.Context) {
	experiences, err := cachedList(mgr.cache, "experiences", func() ([]model.Experience, error) {
		var experiences []model.Experience
		err := query.DB().WithContext(c).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
			Find(&experiences).Error
		return experiences, err
	})
	if err != nil {
		logutils.Log.Errorf("list experiences: %v", err)
		resputil.Error(c, "Failed to fetch experiences")
		return
	}
	resputil.Success(c, experiences)
}

// CreateExperience godoc
// @Summary Create an experience entry
// @Tags Experience
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body ExperienceCreateReq true "experience draft"
// @Success 201 {object} model.Experience
// @Failure 401 {object} map[string]string
// @Router /api/experiences [post]
func (mgr *ExperienceMgr) CreateExperience(c *gin.Context) {
	var req ExperienceCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	experience := model.Experience{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Period:       req.Period,
		Description:  req.Description,
		Achievements: model.AchievementList(req.Achievements),
		Technologies: model.StringList(req.Technologies),
		Highlights:   model.StringList(req.Highlights),
		Order:        req.Order,
	}
	if err := query.DB().WithContext(c).Create(&experience).Error; err != nil {
		logutils.Log.Errorf("create experience: %v", err)
		resputil.Error(c, "Failed to create experience")
		return
	}

	mgr.contentChanged()
	resputil.Created(c, experience)
}

// UpdateExperience godoc
// @Summary Update an experience entry
// @Tags Experience
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "experience id"
// @Param data body ExperienceUpdateReq true "partial experience draft"
// @Success 200 {object} model.Experience
// @Failure 404 {object} map[string]string
// @Router /api/experiences/{id} [put]
func (mgr *ExperienceMgr) UpdateExperience(c *gin.Context) {
	var req ExperienceUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	var experience model.Experience
	if err := query.DB().WithContext(c).First(&experience, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.NotFound(c)
			return
		}
		logutils.Log.Errorf("load experience: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	applyIfSet(&experience.Title, req.Title)
	applyIfSet(&experience.Company, req.Company)
	applyIfSet(&experience.Location, req.Location)
	applyIfSet(&experience.Type, req.Type)
	applyIfSet(&experience.Period, req.Period)
	applyIfSet(&experience.Description, req.Description)
	if req.Achievements != nil {
		experience.Achievements = model.AchievementList(*req.Achievements)
	}
	if req.Technologies != nil {
		experience.Technologies = model.StringList(*req.Technologies)
	}
	if req.Highlights != nil {
		experience.Highlights = model.StringList(*req.Highlights)
	}
	applyIfSet(&experience.Order, req.Order)

	if err := query.DB().WithContext(c).Save(&experience).Error; err != nil {
		logutils.Log.Errorf("update experience: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	mgr.contentChanged()
	resputil.Success(c, experience)
}

// DeleteExperience godoc
// @Summary Delete an experience entry
// @Tags Experience
// @Produce json
// @Security Bearer
// @Param id path string true "experience id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/experiences/{id} [delete]
func (mgr *ExperienceMgr) DeleteExperience(c *gin.Context) {
	result := query.DB().WithContext(c).Delete(&model.Experience{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logutils.Log.Errorf("delete experience: %v", result.Error)
		resputil.Error(c, "Failed to delete")
		return
	}
	if result.RowsAffected == 0 {
		resputil.NotFound(c)
		return
	}

	mgr.contentChanged()
	resputil.Deleted(c)
}

func (mgr *ExperienceMgr) contentChanged() {
	flushListCache(mgr.cache)
	if mgr.revalidator != nil {
		mgr.revalidator.ContentChanged("experiences")
	}
}
