package query

import (
	"errors"
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

// Migrate runs versioned schema migrations and seeds the admin account.
func Migrate(d *gorm.DB, cfg *config.Config) error {
	m := gormigrate.New(d, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250110_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.User{},
					&model.Project{},
					&model.Skill{},
					&model.Experience{},
					&model.Testimonial{},
					&model.ContactSubmission{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&model.ContactSubmission{},
					&model.Testimonial{},
					&model.Experience{},
					&model.Skill{},
					&model.Project{},
					&model.User{},
				)
			},
		},
	})
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return seedAdmin(d, cfg)
}

// seedAdmin creates the admin account on first start. Existing accounts are
// left untouched so a changed config password never silently rotates
// credentials.
func seedAdmin(d *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logutils.Log.Warn("admin credentials not configured, skipping admin seed")
		return nil
	}

	var user model.User
	err := d.Where("email = ?", cfg.Admin.Email).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	name := cfg.Admin.Name
	if name == "" {
		name = "Admin"
	}
	user = model.User{
		Email:    cfg.Admin.Email,
		Name:     name,
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	if err := d.Create(&user).Error; err != nil {
		return err
	}
	logutils.Log.Infof("admin user created: %s", user.Email)
	return nil
}
