package handler

import (
	"errors"
	"fmt"

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
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name        string
	cache       *cache.Cache
	revalidator *revalidate.Notifier
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:        "projects",
		cache:       conf.ListCache,
		revalidator: conf.Revalidator,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/projects", mgr.ListProjects)
}

func (mgr *ProjectMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *ProjectMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/projects", mgr.CreateProject)
	g.PUT("/projects/:id", mgr.UpdateProject)
	g.DELETE("/projects/:id", mgr.DeleteProject)
}

type (
	ProjectCreateReq struct {
		Title           string   `json:"title" binding:"required"`
		Description     string   `json:"description" binding:"required"`
		LongDescription *string  `json:"longDescription"`
		Image           *string  `json:"image"`
		Technologies    []string `json:"technologies" binding:"required"`
		Features        []string `json:"features"`
		Category        string   `json:"category" binding:"required"`
		Status          string   `json:"status" binding:"required"`
		LiveURL         *string  `json:"liveUrl"`
		GithubURL       *string  `json:"githubUrl"`
		IsFeatured      bool     `json:"isFeatured"`
		Order           int      `json:"order"`
	}

	// ProjectUpdateReq is the partial draft for PUT. Absent fields keep
	// their stored values.
	ProjectUpdateReq struct {
		Title           *string   `json:"title"`
		Description     *string   `json:"description"`
		LongDescription *string   `json:"longDescription"`
		Image           *string   `json:"image"`
		Technologies    *[]string `json:"technologies"`
		Features        *[]string `json:"features"`
		Category        *string   `json:"category"`
		Status          *string   `json:"status"`
		LiveURL         *string   `json:"liveUrl"`
		GithubURL       *string   `json:"githubUrl"`
		IsFeatured      *bool     `json:"isFeatured"`
		Order           *int      `json:"order"`
	}
)

// ListProjects godoc
// @Summary List projects
// @Description List projects, optionally filtered by featured flag and category
// @Tags Project
// @Produce json
// @Param featured query bool false "only featured projects"
// @Param category query string false "project category, 'All' disables the filter"
// @Success 200 {array} model.Project
// @Failure 500 {object} map[string]string
// @Router /api/projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	featured := c.Query("featured")
	category := c.Query("category")

	key := fmt.Sprintf("projects:featured=%s:category=%s", featured, category)
	projects, err := cachedList(mgr.cache, key, func() ([]model.Project, error) {
		tx := query.DB().WithContext(c)
		if featured == "true" {
			tx = tx.Where("is_featured = ?", true)
		}
		if category != "" && category != "All" {
			tx = tx.Where("category = ?", category)
		}
		var projects []model.Project
		err := tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "is_featured"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
			Find(&projects).Error
		return projects, err
	})
	if err != nil {
		logutils.Log.Errorf("list projects: %v", err)
		resputil.Error(c, "Failed to fetch projects")
		return
	}
	resputil.Success(c, projects)
}

// CreateProject godoc
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body ProjectCreateReq true "project draft"
// @Success 201 {object} model.Project
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	project := model.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Technologies:    model.StringList(req.Technologies),
		Features:        model.StringList(req.Features),
		Category:        req.Category,
		Status:          req.Status,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		IsFeatured:      req.IsFeatured,
		Order:           req.Order,
	}
	if err := query.DB().WithContext(c).Create(&project).Error; err != nil {
		logutils.Log.Errorf("create project: %v", err)
		resputil.Error(c, "Failed to create project")
		return
	}

	mgr.contentChanged()
	resputil.Created(c, project)
}

// UpdateProject godoc
// @Summary Update a project
// @Description Partial update; fields absent from the body keep their stored values
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "project id"
// @Param data body ProjectUpdateReq true "partial project draft"
// @Success 200 {object} model.Project
// @Failure 404 {object} map[string]string
// @Router /api/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	var req ProjectUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	var project model.Project
	if err := query.DB().WithContext(c).First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.NotFound(c)
			return
		}
		logutils.Log.Errorf("load project: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	applyIfSet(&project.Title, req.Title)
	applyIfSet(&project.Description, req.Description)
	applyPtrIfSet(&project.LongDescription, req.LongDescription)
	applyPtrIfSet(&project.Image, req.Image)
	if req.Technologies != nil {
		project.Technologies = model.StringList(*req.Technologies)
	}
	if req.Features != nil {
		project.Features = model.StringList(*req.Features)
	}
	applyIfSet(&project.Category, req.Category)
	applyIfSet(&project.Status, req.Status)
	applyPtrIfSet(&project.LiveURL, req.LiveURL)
	applyPtrIfSet(&project.GithubURL, req.GithubURL)
	applyIfSet(&project.IsFeatured, req.IsFeatured)
	applyIfSet(&project.Order, req.Order)

	if err := query.DB().WithContext(c).Save(&project).Error; err != nil {
		logutils.Log.Errorf("update project: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	mgr.contentChanged()
	resputil.Success(c, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags Project
// @Produce json
// @Security Bearer
// @Param id path string true "project id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	result := query.DB().WithContext(c).Delete(&model.Project{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logutils.Log.Errorf("delete project: %v", result.Error)
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

func (mgr *ProjectMgr) contentChanged() {
	flushListCache(mgr.cache)
	if mgr.revalidator != nil {
		mgr.revalidator.ContentChanged("projects")
	}
}
