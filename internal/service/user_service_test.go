package service

import (
	"context"
	"testing"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)

	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewProblemRepository(db),
		repository.NewChapterRepository(db),
		repository.NewStudySessionRepository(db),
		repository.NewPreferencesRepository(db),
		repository.NewAchievementRepository(db),
		nil,
		365,
	)
	return svc, db, user.ID
}

func TestUserStatsEmpty(t *testing.T) {
	svc, _, userID := newUserService(t)

	out, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, out.TotalProblems)
	assert.Zero(t, out.CompletionRate)
	assert.Zero(t, out.CurrentStreak)
	assert.Equal(t, 1, out.Level)
}

func TestUserStatsRollup(t *testing.T) {
	svc, db, userID := newUserService(t)

	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "A", Difficulty: model.DifficultyEasy,
		Status: model.ProblemCompleted, TimeSpent: 20,
	}).Error)
	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "B", Difficulty: model.DifficultyHard,
		Status: model.ProblemInProgress, TimeSpent: 45,
	}).Error)
	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "C", Difficulty: model.DifficultyMedium,
		Status: model.ProblemNotStarted,
	}).Error)

	require.NoError(t, db.Create(&model.Chapter{
		UserID: userID, Title: "Arrays", IsCompleted: true, Progress: 100,
	}).Error)
	require.NoError(t, db.Create(&model.Chapter{
		UserID: userID, Title: "Trees",
	}).Error)

	today := stats.Today("UTC")
	require.NoError(t, db.Create(&model.StudySession{
		UserID: userID, Date: today, Duration: 90, Difficulty: model.DifficultyMedium,
	}).Error)

	out, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProblems)
	assert.Equal(t, 1, out.CompletedProblems)
	assert.Equal(t, 33, out.CompletionRate)
	assert.Equal(t, 65, out.TotalTimeSpent)
	assert.Equal(t, 90, out.TotalStudyTime)
	assert.Equal(t, 1, out.CompletedChapters)
	assert.Equal(t, 2, out.TotalChapters)
	assert.Equal(t, 1, out.CurrentStreak)
	assert.Equal(t, 1, out.WeeklyGoalProgress)
}

func TestUserStatsPointsFromPersistedUnlocks(t *testing.T) {
	svc, db, userID := newUserService(t)

	// 对应成就目录里 ID 1（10分）和 ID 8（100分）
	for _, id := range []int{1, 8} {
		require.NoError(t, db.Create(&model.AchievementUnlock{
			UserID: userID, AchievementID: id,
		}).Error)
	}

	out, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 110, out.TotalPoints)
	assert.Equal(t, 2, out.UnlockedAchievements)
	assert.Equal(t, 2, out.Level)
}

func TestUpdatePreferences(t *testing.T) {
	svc, _, userID := newUserService(t)
	ctx := context.Background()

	enabled := true
	goal := 5
	prefs, err := svc.UpdatePreferences(ctx, userID, PreferencesRequest{
		EmailEnabled:      &enabled,
		DailyReminderTime: "08:30",
		Timezone:          "Asia/Tokyo",
		WeeklyGoal:        &goal,
	})
	require.NoError(t, err)
	assert.True(t, prefs.EmailEnabled)
	assert.Equal(t, "08:30", prefs.DailyReminderTime)
	assert.Equal(t, "Asia/Tokyo", prefs.Timezone)
	assert.Equal(t, 5, prefs.WeeklyGoal)

	// 未提供的字段保持原值
	prefs, err = svc.UpdatePreferences(ctx, userID, PreferencesRequest{Timezone: "UTC"})
	require.NoError(t, err)
	assert.True(t, prefs.EmailEnabled)
	assert.Equal(t, "08:30", prefs.DailyReminderTime)
}
