package database

import (
	"strings"

	"buymyshop/config"
	"buymyshop/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the connection pool. The driver is picked from the DSN form:
// managed deployments hand us a postgres:// DATABASE_URL, local development
// uses a mysql DSN.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return mysql.Open(dsn)
}

// AutoMigrate ensures the three owned tables exist. Repeated startups are
// safe. A failure here is returned to the caller, which treats it as fatal
// rather than degrading into a half-initialized schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.WebsitePayment{},
		&models.UserSetting{},
		&models.SiteMetric{},
	)
}
