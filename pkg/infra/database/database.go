package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/meplus/tasks-api/pkg/domain/plan"
	"github.com/meplus/tasks-api/pkg/domain/superprompt"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"github.com/meplus/tasks-api/pkg/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB represents the database connection
type DB struct {
	logger *logrus.Logger
	*gorm.DB
}

// Config holds database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewDB opens the connection, configures pooling and applies the schema.
func NewDB(logger *logrus.Logger, cfg *Config) (*DB, error) {
	logger.WithFields(logrus.Fields{
		"host":    cfg.Host,
		"port":    cfg.Port,
		"db":      cfg.DBName,
		"user":    cfg.User,
		"sslmode": cfg.SSLMode,
	}).Info("connecting to database")

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := &DB{logger: logger, DB: gormDB}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	if err := db.AutoMigrate(
		&user.User{},
		&plan.Plan{},
		&task.Task{},
		&template.Template{},
		&superprompt.SuperPrompt{},
	); err != nil {
		return err
	}
	return db.seedPlans()
}

// seedPlans inserts the default tiers if they are missing. A nil limit
// means unlimited.
func (db *DB) seedPlans() error {
	baseTasks, baseExports := 10, 2
	defaults := []plan.Plan{
		{Name: plan.Base, TaskLimit: &baseTasks, ExportLimit: &baseExports},
		{Name: plan.Pro},
	}
	for _, p := range defaults {
		var count int64
		if err := db.Model(&plan.Plan{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
			db.logger.WithField("plan", p.Name).Info("seeded default plan")
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
