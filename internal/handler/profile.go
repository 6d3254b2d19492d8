package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
	"github.com/ezedin-dev/portfolio-backend/internal/util"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProfileMgr)
}

// ProfileMgr serves the hero/about content: the site owner's display name
// plus the attributes blob on the admin account.
type ProfileMgr struct {
	name string
}

func NewProfileMgr(_ *RegisterConfig) Manager {
	return &ProfileMgr{
		name: "profile",
	}
}

func (mgr *ProfileMgr) GetName() string { return mgr.name }

func (mgr *ProfileMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/profile", mgr.GetProfile)
}

func (mgr *ProfileMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *ProfileMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.PUT("/profile/attributes", mgr.UpdateAttributes)
}

type ProfileResp struct {
	Name       string              `json:"name"`
	Attributes model.UserAttribute `json:"attributes"`
}

// GetProfile godoc
// @Summary Public profile for the hero/about sections
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResp
// @Failure 500 {object} map[string]string
// @Router /api/profile [get]
func (mgr *ProfileMgr) GetProfile(c *gin.Context) {
	var user model.User
	if err := query.DB().WithContext(c).Where("role = ?", model.RoleAdmin).First(&user).Error; err != nil {
		logutils.Log.Errorf("load profile: %v", err)
		resputil.Error(c, "Failed to fetch profile")
		return
	}
	resputil.Success(c, ProfileResp{
		Name:       user.Name,
		Attributes: user.Attributes.Data(),
	})
}

// UpdateAttributes godoc
// @Summary Update the profile attributes of the current user
// @Tags Profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param attributes body model.UserAttribute true "profile attributes"
// @Success 200 {object} ProfileResp
// @Failure 401 {object} map[string]string
// @Router /api/profile/attributes [put]
func (mgr *ProfileMgr) UpdateAttributes(c *gin.Context) {
	token := util.GetToken(c)

	var attributes model.UserAttribute
	if err := c.ShouldBindJSON(&attributes); err != nil {
		resputil.BadRequest(c, "Invalid request body")
		return
	}

	var user model.User
	if err := query.DB().WithContext(c).First(&user, "id = ?", token.UserID).Error; err != nil {
		resputil.NotFound(c)
		return
	}

	user.Attributes = datatypes.NewJSONType(attributes)
	if err := query.DB().WithContext(c).Save(&user).Error; err != nil {
		logutils.Log.Errorf("update profile attributes: %v", err)
		resputil.Error(c, "Failed to update profile")
		return
	}

	resputil.Success(c, ProfileResp{
		Name:       user.Name,
		Attributes: user.Attributes.Data(),
	})
}
