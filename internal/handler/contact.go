package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
	"github.com/ezedin-dev/portfolio-backend/pkg/alert"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewContactMgr)
}

type ContactMgr struct {
	name    string
	alerter alert.Alerter
}

func NewContactMgr(conf *RegisterConfig) Manager {
	return &ContactMgr{
		name:    "contact",
		alerter: conf.Alerter,
	}
}

func (mgr *ContactMgr) GetName() string { return mgr.name }

func (mgr *ContactMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/contact", mgr.CreateSubmission)
}

func (mgr *ContactMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *ContactMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("/contact", mgr.ListSubmissions)
	g.PUT("/contact/:id/read", mgr.SetReadFlag)
	g.DELETE("/contact/:id", mgr.DeleteSubmission)
}

type (
	ContactCreateReq struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	ContactReadReq struct {
		IsRead bool `json:"isRead"`
	}
)

// CreateSubmission godoc
// @Summary Submit a contact message
// @Description Public contact form endpoint; all four fields are required
// @Tags Contact
// @Accept json
// @Produce json
// @Param data body ContactCreateReq true "contact message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/contact [post]
func (mgr *ContactMgr) CreateSubmission(c *gin.Context) {
	var req ContactCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, "All fields are required")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		resputil.BadRequest(c, "All fields are required")
		return
	}

	submission := model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := query.DB().WithContext(c).Create(&submission).Error; err != nil {
		logutils.Log.Errorf("create contact submission: %v", err)
		resputil.Error(c, "Failed to send message")
		return
	}

	if mgr.alerter != nil {
		if err := mgr.alerter.ContactReceived(c, &submission); err != nil {
			logutils.Log.Errorf("contact notification: %v", err)
		}
	}

	resputil.Created(c, gin.H{
		"message": "Message sent successfully",
		"id":      submission.ID,
	})
}

// ListSubmissions godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Security Bearer
// @Success 200 {array} model.ContactSubmission
// @Failure 401 {object} map[string]string
// @Router /api/contact [get]
func (mgr *ContactMgr) ListSubmissions(c *gin.Context) {
	var submissions []model.ContactSubmission
	err := query.DB().WithContext(c).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Find(&submissions).Error
	if err != nil {
		logutils.Log.Errorf("list contact submissions: %v", err)
		resputil.Error(c, "Failed to fetch messages")
		return
	}
	resputil.Success(c, submissions)
}

// SetReadFlag godoc
// @Summary Set the read flag on a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "message id"
// @Param data body ContactReadReq true "read flag"
// @Success 200 {object} model.ContactSubmission
// @Failure 404 {object} map[string]string
// @Router /api/contact/{id}/read [put]
func (mgr *ContactMgr) SetReadFlag(c *gin.Context) {
	var req ContactReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequest(c, err.Error())
		return
	}

	result := query.DB().WithContext(c).
		Model(&model.ContactSubmission{}).
		Where("id = ?", c.Param("id")).
		Update("is_read", req.IsRead)
	if result.Error != nil {
		logutils.Log.Errorf("update contact submission: %v", result.Error)
		resputil.Error(c, "Failed to update")
		return
	}
	if result.RowsAffected == 0 {
		resputil.NotFound(c)
		return
	}

	var submission model.ContactSubmission
	if err := query.DB().WithContext(c).First(&submission, "id = ?", c.Param("id")).Error; err != nil {
		logutils.Log.Errorf("reload contact submission: %v", err)
		resputil.Error(c, "Failed to update")
		return
	}
	resputil.Success(c, submission)
}

// DeleteSubmission godoc
// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Security Bearer
// @Param id path string true "message id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/contact/{id} [delete]
func (mgr *ContactMgr) DeleteSubmission(c *gin.Context) {
	result := query.DB().WithContext(c).Delete(&model.ContactSubmission{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logutils.Log.Errorf("delete contact submission: %v", result.Error)
		resputil.Error(c, "Failed to delete")
		return
	}
	if result.RowsAffected == 0 {
		resputil.NotFound(c)
		return
	}
	resputil.Deleted(c)
}
