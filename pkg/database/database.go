package database

import (
	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if shouldMigrate(cfg) {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

// shouldMigrate release 模式下结构变更走显式的 --migrate / --migrate-only
func shouldMigrate(cfg *config.Config) bool {
	return cfg.Server.Mode != "release" || cfg.ForceMigrate
}

// Migrate 建表；启动时统一迁移全部模型
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.UserPreferences{},
		&model.Problem{},
		&model.Chapter{},
		&model.StudySession{},
		&model.Goal{},
		&model.ScheduleEntry{},
		&model.CodeSnippet{},
		&model.AchievementUnlock{},
	)
}
