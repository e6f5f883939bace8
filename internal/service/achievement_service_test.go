package service

import (
	"context"
	"testing"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAchievementService(t *testing.T) (*AchievementService, *gorm.DB, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)

	svc := NewAchievementService(
		repository.NewProblemRepository(db),
		repository.NewChapterRepository(db),
		repository.NewStudySessionRepository(db),
		repository.NewPreferencesRepository(db),
		repository.NewAchievementRepository(db),
		365,
	)
	return svc, db, user.ID
}

func TestEvaluateAllLocked(t *testing.T) {
	svc, _, userID := newAchievementService(t)

	summary, err := svc.Evaluate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalCount)
	assert.Zero(t, summary.UnlockedCount)
	assert.Zero(t, summary.TotalPoints)
	for _, a := range summary.Achievements {
		assert.False(t, a.IsUnlocked)
		assert.Nil(t, a.UnlockedAt)
	}
}

func TestEvaluateUnlocksFirstProblem(t *testing.T) {
	svc, db, userID := newAchievementService(t)

	require.NoError(t, db.Create(&model.Problem{
		UserID:     userID,
		Title:      "Two Sum",
		Difficulty: model.DifficultyEasy,
		Status:     model.ProblemCompleted,
	}).Error)

	summary, err := svc.Evaluate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.UnlockedCount)
	assert.Equal(t, 10, summary.TotalPoints)

	var first *AchievementView
	for i := range summary.Achievements {
		if summary.Achievements[i].ID == 1 {
			first = &summary.Achievements[i]
		}
	}
	require.NotNil(t, first)
	assert.True(t, first.IsUnlocked)
	require.NotNil(t, first.UnlockedAt)
}

func TestEvaluateKeepsFirstUnlockTime(t *testing.T) {
	svc, db, userID := newAchievementService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Problem{
		UserID:     userID,
		Title:      "Two Sum",
		Difficulty: model.DifficultyEasy,
		Status:     model.ProblemCompleted,
	}).Error)

	first, err := svc.Evaluate(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, first.UnlockedCount)

	var firstUnlocked *AchievementView
	for i := range first.Achievements {
		if first.Achievements[i].IsUnlocked {
			firstUnlocked = &first.Achievements[i]
		}
	}
	require.NotNil(t, firstUnlocked)

	second, err := svc.Evaluate(ctx, userID)
	require.NoError(t, err)
	for _, a := range second.Achievements {
		if a.ID == firstUnlocked.ID {
			require.NotNil(t, a.UnlockedAt)
			// 时间戳保持首次解锁时的值
			assert.WithinDuration(t, *firstUnlocked.UnlockedAt, *a.UnlockedAt, 0)
		}
	}

	// 解锁记录表里只有一条
	var count int64
	require.NoError(t, db.Model(&model.AchievementUnlock{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEvaluateRefreshesTotalPoints(t *testing.T) {
	svc, db, userID := newAchievementService(t)

	require.NoError(t, db.Create(&model.Problem{
		UserID:     userID,
		Title:      "Two Sum",
		Difficulty: model.DifficultyEasy,
		Status:     model.ProblemCompleted,
	}).Error)

	_, err := svc.Evaluate(context.Background(), userID)
	require.NoError(t, err)

	prefs, err := svc.PrefsRepo.FindOrCreateByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, 10, prefs.TotalPoints)
}

func TestEvaluateProgressBelowThreshold(t *testing.T) {
	svc, db, userID := newAchievementService(t)

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, db.Create(&model.Problem{
			UserID:     userID,
			Title:      title,
			Difficulty: model.DifficultyMedium,
			Status:     model.ProblemCompleted,
		}).Error)
	}

	summary, err := svc.Evaluate(context.Background(), userID)
	require.NoError(t, err)

	for _, a := range summary.Achievements {
		// ID 2: 完成10题
		if a.ID == 2 {
			assert.False(t, a.IsUnlocked)
			assert.Equal(t, 3, a.Progress)
		}
	}
}
