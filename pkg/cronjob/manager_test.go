package cronjob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	require.NoError(t, db.AutoMigrate(&model.ContactSubmission{}))
	return db
}

func submission(id string, age time.Duration, read bool) *model.ContactSubmission {
	return &model.ContactSubmission{
		Base:    model.Base{ID: id, CreatedAt: time.Now().Add(-age)},
		Name:    "n",
		Email:   "e@example.com",
		Subject: "s",
		Message: "m",
		IsRead:  read,
	}
}

func TestPruneReadSubmissions(t *testing.T) {
	db := newTestDB(t)
	maxAge := 90 * 24 * time.Hour

	rows := []*model.ContactSubmission{
		submission("old-read", 100*24*time.Hour, true),    // pruned
		submission("old-unread", 100*24*time.Hour, false), // unread is never touched
		submission("recent-read", 10*24*time.Hour, true),  // too young
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}

	m := NewCronJobManager(db)
	m.pruneReadSubmissions(maxAge)

	var remaining []model.ContactSubmission
	require.NoError(t, db.Order("id").Find(&remaining).Error)
	require.Len(t, remaining, 2)
	assert.Equal(t, "old-unread", remaining[0].ID)
	assert.Equal(t, "recent-read", remaining[1].ID)
}

func TestStartDisabledByDefault(t *testing.T) {
	db := newTestDB(t)
	m := NewCronJobManager(db)

	cfg := &config.Config{}
	require.NoError(t, m.Start(cfg))
	assert.Empty(t, m.cron.Entries())
	m.Stop()
}

func TestStartSchedulesWhenEnabled(t *testing.T) {
	db := newTestDB(t)
	m := NewCronJobManager(db)

	cfg := &config.Config{}
	cfg.Retention.Enable = true
	cfg.Retention.Spec = "0 3 * * *"
	cfg.Retention.MaxAgeDays = 90
	require.NoError(t, m.Start(cfg))
	assert.Len(t, m.cron.Entries(), 1)
	m.Stop()
}

func TestStartRejectsBadSpec(t *testing.T) {
	db := newTestDB(t)
	m := NewCronJobManager(db)

	cfg := &config.Config{}
	cfg.Retention.Enable = true
	cfg.Retention.Spec = "not a cron spec"
	cfg.Retention.MaxAgeDays = 90
	assert.Error(t, m.Start(cfg))
}
