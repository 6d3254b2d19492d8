package query

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/ezedin-dev/portfolio-backend/pkg/config"
	"github.com/ezedin-dev/portfolio-backend/pkg/logutils"
)

var db *gorm.DB

// DB returns the database handle. Init (or Set, in tests) must run first.
func DB() *gorm.DB {
	if db == nil {
		panic("query: database not initialized")
	}
	return db
}

// Set replaces the database handle. Tests use it with an in-memory store.
func Set(d *gorm.DB) {
	db = d
}

// Init opens the store described by the configuration: postgres when a host
// is configured, a local sqlite file otherwise (development).
func Init(cfg *config.Config) error {
	var err error
	if cfg.Postgres.Host != "" {
		db, err = openPostgres(cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLite.Path), &gorm.Config{})
		if err == nil {
			logutils.Log.Warnf("no postgres host configured, using sqlite at %s", cfg.SQLite.Path)
		}
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	return nil
}

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	pg := cfg.Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		pg.Host, pg.User, pg.Password, pg.DBName, pg.Port, pg.SSLMode, pg.TimeZone)
	instance, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if len(pg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(pg.Replicas))
		for _, r := range pg.Replicas {
			replicas = append(replicas, postgres.Open(r))
		}
		if err := instance.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, err
		}
	}

	maxIdleConns := 5
	maxOpenConns := 10
	sqlDB, err := instance.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logutils.Log.Info("Postgres init success!")
	return instance, nil
}
