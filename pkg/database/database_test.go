package database

import (
	"testing"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestShouldMigrate(t *testing.T) {
	cfg := &config.Config{}

	cfg.Server.Mode = "debug"
	assert.True(t, shouldMigrate(cfg))

	cfg.Server.Mode = "release"
	assert.False(t, shouldMigrate(cfg))

	cfg.ForceMigrate = true
	assert.True(t, shouldMigrate(cfg))
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{
		model.User{}.TableName(),
		model.UserPreferences{}.TableName(),
		model.Problem{}.TableName(),
		model.Chapter{}.TableName(),
		model.StudySession{}.TableName(),
		model.Goal{}.TableName(),
		model.ScheduleEntry{}.TableName(),
		model.CodeSnippet{}.TableName(),
		model.AchievementUnlock{}.TableName(),
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
