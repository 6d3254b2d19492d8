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
	Registers = append(Registers, NewSkillMgr)
}

type SkillMgr struct {
	name        string
	cache       *cache.Cache
	revalidator *revalidate.Notifier
}

func NewSkillMgr(conf *RegisterConfig) Manager {
	return &SkillMgr{
		name:        "skills",
		cache:       conf.ListCache,
		revalidator: conf.Revalidator,
	}
}

func (mgr *SkillMgr) GetName() string { return mgr.name }

func (mgr *SkillMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/skills", mgr.ListSkills)
}

func (mgr *SkillMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *SkillMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/skills", mgr.CreateSkill)
	g.PUT("/skills/:id", mgr.UpdateSkill)
	g.DELETE("/skills/:id", mgr.DeleteSkill)
}

type (
	SkillCreateReq struct {
		Category     string   `json:"category" binding:"required"`
		Description  string   `json:"description" binding:"required"`
		Technologies []string `json:"technologies"`
		Order        int      `json:"order"`
	}

	SkillUpdateReq struct {
		Category     *string   `json:"category"`
		Description  *string   `json:"description"`
		Technologies *[]string `json:"technologies"`
		Order        *int      `json:"order"`
	}
)

// ListSkills godoc
// @Summary List skill categories
// @Description Skill technologies decode leniently: a corrupt row renders with an empty list instead of failing the listing
// @Tags Skill
// @Produce json
// @Success 200 {array} model.Skill
// @Router /api/skills [get]
func (mgr *SkillMgr) ListSkills(c *gin.Context) {
	skills, err := cachedList(mgr.cache, "skills", func() ([]model.Skill, error) {
		var skills []model.Skill
		err := query.DB().WithContext(c).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
			Find(&skills).Error
		return skills, err
	})
	if err != nil {
		logutils.Log.Errorf("list skills: %v", err)
		resputil.Error(c, "Failed to fetch skills")
		return
	}
	resputil.Success(c, skills)
}

// CreateSkill godoc
// @Summary Create a skill category
// @Tags Skill
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body SkillCreateReq true "skill draft"
// @Success 201 {object} model.Skill
// @Failure 401 {object} map[string]string
// @Router /api/skills [post]
func (mgr *SkillMgr) CreateSkill(c *gin.Context) {
	var req SkillCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	skill := model.Skill{
		Category:     req.Category,
		Description:  req.Description,
		Technologies: model.LenientStringList(req.Technologies),
		Order:        req.Order,
	}
	if err := query.DB().WithContext(c).Create(&skill).Error; err != nil {
		logutils.Log.Errorf("create skill: %v", err)
		resputil.Error(c, "Failed to create skill")
		return
	}

	mgr.contentChanged()
	resputil.Created(c, skill)
}

// UpdateSkill godoc
// @Summary Update a skill category
// @Tags Skill
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "skill id"
// @Param data body SkillUpdateReq true "partial skill draft"
// @Success 200 {object} model.Skill
// @Failure 404 {object} map[string]string
// @Router /api/skills/{id} [put]
func (mgr *SkillMgr) UpdateSkill(c *gin.Context) {
	var req SkillUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	var skill model.Skill
	if err := query.DB().WithContext(c).First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.NotFound(c)
			return
		}
		logutils.Log.Errorf("load skill: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	applyIfSet(&skill.Category, req.Category)
	applyIfSet(&skill.Description, req.Description)
	if req.Technologies != nil {
		skill.Technologies = model.LenientStringList(*req.Technologies)
	}
	applyIfSet(&skill.Order, req.Order)

	if err := query.DB().WithContext(c).Save(&skill).Error; err != nil {
		logutils.Log.Errorf("update skill: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	mgr.contentChanged()
	resputil.Success(c, skill)
}

// DeleteSkill godoc
// @Summary Delete a skill category
// @Tags Skill
// @Produce json
// @Security Bearer
// @Param id path string true "skill id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/skills/{id} [delete]
func (mgr *SkillMgr) DeleteSkill(c *gin.Context) {
	result := query.DB().WithContext(c).Delete(&model.Skill{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logutils.Log.Errorf("delete skill: %v", result.Error)
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

func (mgr *SkillMgr) contentChanged() {
	flushListCache(mgr.cache)
	if mgr.revalidator != nil {
		mgr.revalidator.ContentChanged("skills")
	}
}
