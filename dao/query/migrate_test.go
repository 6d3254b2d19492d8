package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func adminConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Name = "Admin"
	cfg.Admin.Password = "admin123"
	return cfg
}

func TestMigrateCreatesSchemaAndAdmin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db, adminConfig()))

	for _, table := range []string{"users", "projects", "skills", "experiences", "testimonials", "contact_submissions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	var admin model.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}

// A changed config password must never silently rotate an existing account.
func TestMigrateNeverOverwritesAdmin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db, adminConfig()))

	var before model.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&before).Error)

	rotated := adminConfig()
	rotated.Admin.Password = "different"
	require.NoError(t, Migrate(db, rotated))

	var after model.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&after).Error)
	assert.Equal(t, before.Password, after.Password)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMigrateSkipsSeedWithoutCredentials(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db, &config.Config{}))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
