package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/services/social-service/internal/config"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

// Tables probed by Diagnose, in report order.
var Tables = []string{"users", "sessions", "posts", "likes"}

// Dialector picks the gorm driver for driverName.
func Dialector(driverName, dsn string) (gorm.Dialector, error) {
	switch driverName {
	case "postgres", "postgresql", "":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driverName)
	}
}

// Open connects to the configured database and sizes the connection pool.
func Open(conf *config.SocialConfig, log *logger.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(conf.DBDriver, conf.DBDSN)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if log.IsDebug() {
		level = gormlogger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(conf.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Infof("connected to %s database", conf.DBDriver)
	return db, nil
}

// Migrate creates or updates the schema. Order matters for the foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Session{}, &domain.Post{}, &domain.Like{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Report is the outcome of a Diagnose call.
type Report struct {
	Reachable bool
	Tables    map[string]bool
}

// Diagnose pings the database and checks that every table exists.
// An unreachable database yields Reachable=false and no table results.
func Diagnose(ctx context.Context, db *gorm.DB) Report {
	report := Report{Tables: map[string]bool{}}
	sqlDB, err := db.DB()
	if err != nil {
		return report
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return report
	}
	report.Reachable = true
	migrator := db.WithContext(ctx).Migrator()
	for _, table := range Tables {
		report.Tables[table] = migrator.HasTable(table)
	}
	return report
}
