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
	Registers = append(Registers, NewTestimonialMgr)
}

type TestimonialMgr struct {
	name        string
	cache       *cache.Cache
	revalidator *revalidate.Notifier
}

func NewTestimonialMgr(conf *RegisterConfig) Manager {
	return &TestimonialMgr{
		name:        "testimonials",
		cache:       conf.ListCache,
		revalidator: conf.Revalidator,
	}
}

func (mgr *TestimonialMgr) GetName() string { return mgr.name }

func (mgr *TestimonialMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/testimonials", mgr.ListTestimonials)
}

func (mgr *TestimonialMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *TestimonialMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/testimonials", mgr.CreateTestimonial)
	g.PUT("/testimonials/:id", mgr.UpdateTestimonial)
	g.DELETE("/testimonials/:id", mgr.DeleteTestimonial)
}

type (
	TestimonialCreateReq struct {
		Name     string  `json:"name" binding:"required"`
		Role     string  `json:"role" binding:"required"`
		Company  string  `json:"company" binding:"required"`
		Image    *string `json:"image"`
		Content  string  `json:"content" binding:"required"`
		Rating   int     `json:"rating" binding:"required,min=1,max=5"`
		Linkedin *string `json:"linkedin"`
		Order    int     `json:"order"`
		IsActive *bool   `json:"isActive"`
	}

	TestimonialUpdateReq struct {
		Name     *string `json:"name"`
		Role     *string `json:"role"`
		Company  *string `json:"company"`
		Image    *string `json:"image"`
		Content  *string `json:"content"`
		Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Linkedin *string `json:"linkedin"`
		Order    *int    `json:"order"`
		IsActive *bool   `json:"isActive"`
	}
)

// ListTestimonials godoc
// @Summary List testimonials
// @Description The public carousel passes active=true; the dashboard lists everything
// @Tags Testimonial
// @Produce json
// @Param active query bool false "only active testimonials"
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} map[string]string
// @Router /api/testimonials [get]
func (mgr *TestimonialMgr) ListTestimonials(c *gin.Context) {
	active := c.Query("active")

	key := fmt.Sprintf("testimonials:active=%s", active)
	testimonials, err := cachedList(mgr.cache, key, func() ([]model.Testimonial, error) {
		tx := query.DB().WithContext(c)
		if active == "true" {
			tx = tx.Where("is_active = ?", true)
		}
		var testimonials []model.Testimonial
		err := tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
			Find(&testimonials).Error
		return testimonials, err
	})
	if err != nil {
		logutils.Log.Errorf("list testimonials: %v", err)
		resputil.Error(c, "Failed to fetch testimonials")
		return
	}
	resputil.Success(c, testimonials)
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags Testimonial
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body TestimonialCreateReq true "testimonial draft"
// @Success 201 {object} model.Testimonial
// @Failure 401 {object} map[string]string
// @Router /api/testimonials [post]
func (mgr *TestimonialMgr) CreateTestimonial(c *gin.Context) {
	var req TestimonialCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	testimonial := model.Testimonial{
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Image:    req.Image,
		Content:  req.Content,
		Rating:   req.Rating,
		Linkedin: req.Linkedin,
		Order:    req.Order,
		IsActive: true,
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	if err := query.DB().WithContext(c).Create(&testimonial).Error; err != nil {
		logutils.Log.Errorf("create testimonial: %v", err)
		resputil.Error(c, "Failed to create testimonial")
		return
	}

	mgr.contentChanged()
	resputil.Created(c, testimonial)
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags Testimonial
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "testimonial id"
// @Param data body TestimonialUpdateReq true "partial testimonial draft"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} map[string]string
// @Router /api/testimonials/{id} [put]
func (mgr *TestimonialMgr) UpdateTestimonial(c *gin.Context) {
	var req TestimonialUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	var testimonial model.Testimonial
	if err := query.DB().WithContext(c).First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.NotFound(c)
			return
		}
		logutils.Log.Errorf("load testimonial: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	applyIfSet(&testimonial.Name, req.Name)
	applyIfSet(&testimonial.Role, req.Role)
	applyIfSet(&testimonial.Company, req.Company)
	applyPtrIfSet(&testimonial.Image, req.Image)
	applyIfSet(&testimonial.Content, req.Content)
	applyIfSet(&testimonial.Rating, req.Rating)
	applyPtrIfSet(&testimonial.Linkedin, req.Linkedin)
	applyIfSet(&testimonial.Order, req.Order)
	applyIfSet(&testimonial.IsActive, req.IsActive)

	if err := query.DB().WithContext(c).Save(&testimonial).Error; err != nil {
		logutils.Log.Errorf("update testimonial: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}

	mgr.contentChanged()
	resputil.Success(c, testimonial)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags Testimonial
// @Produce json
// @Security Bearer
// @Param id path string true "testimonial id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/testimonials/{id} [delete]
func (mgr *TestimonialMgr) DeleteTestimonial(c *gin.Context) {
	result := query.DB().WithContext(c).Delete(&model.Testimonial{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logutils.Log.Errorf("delete testimonial: %v", result.Error)
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

func (mgr *TestimonialMgr) contentChanged() {
	flushListCache(mgr.cache)
	if mgr.revalidator != nil {
		mgr.revalidator.ContentChanged("testimonials")
	}
}
