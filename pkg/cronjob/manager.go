// Package cronjob runs the optional retention job: read contact submissions
// older than the configured age are pruned on a cron schedule.
package cronjob

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

type CronJobManager struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewCronJobManager(db *gorm.DB) *CronJobManager {
	return &CronJobManager{
		db:   db,
		cron: cron.New(cron.WithLocation(time.Local)),
	}
}

// Start schedules the retention job when enabled. No-op otherwise.
func (m *CronJobManager) Start(cfg *config.Config) error {
	if !cfg.Retention.Enable {
		return nil
	}
	maxAge := time.Duration(cfg.Retention.MaxAgeDays) * 24 * time.Hour
	_, err := m.cron.AddFunc(cfg.Retention.Spec, func() {
		m.pruneReadSubmissions(maxAge)
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	logutils.Log.Infof("retention job scheduled: %s", cfg.Retention.Spec)
	return nil
}

func (m *CronJobManager) Stop() {
	m.cron.Stop()
}

// pruneReadSubmissions deletes read messages older than maxAge. Unread
// messages are never touched.
func (m *CronJobManager) pruneReadSubmissions(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)
	result := m.db.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.ContactSubmission{})
	if result.Error != nil {
		logutils.Log.Errorf("retention prune: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logutils.Log.Infof("retention prune removed %d read messages", result.RowsAffected)
	}
}
