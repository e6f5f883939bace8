package service

import (
	"testing"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/pkg/database"
	"dsa_tracker_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{Name: "Tester", Email: "tester@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}
