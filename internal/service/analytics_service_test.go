package service

import (
	"context"
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *gorm.DB, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)

	svc := NewAnalyticsService(
		repository.NewProblemRepository(db),
		repository.NewChapterRepository(db),
		repository.NewStudySessionRepository(db),
		repository.NewPreferencesRepository(db),
		nil,
		365,
	)
	return svc, db, user.ID
}

func TestOverviewEmpty(t *testing.T) {
	svc, _, userID := newAnalyticsService(t)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, overview.TotalProblems)
	assert.Zero(t, overview.CompletionRate)
	assert.Len(t, overview.WeeklyProgress, 7)
	assert.Len(t, overview.MonthlyGoals, 3)
	for _, g := range overview.MonthlyGoals {
		assert.Equal(t, 30, g.Target)
		assert.Zero(t, g.Completed)
	}
}

func TestOverviewBreakdownAndWeekly(t *testing.T) {
	svc, db, userID := newAnalyticsService(t)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "A", Difficulty: model.DifficultyEasy,
		Status: model.ProblemCompleted, CompletedAt: &now, TimeSpent: 15,
	}).Error)
	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "B", Difficulty: model.DifficultyEasy,
		Status: model.ProblemCompleted, CompletedAt: &yesterday,
	}).Error)
	require.NoError(t, db.Create(&model.Problem{
		UserID: userID, Title: "C", Difficulty: model.DifficultyHard,
		Status: model.ProblemInProgress,
	}).Error)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalProblems)
	assert.Equal(t, 2, overview.CompletedProblems)
	assert.Equal(t, 1, overview.InProgressProblems)
	assert.Equal(t, 67, overview.CompletionRate)
	assert.Equal(t, 2, overview.Difficulty.Easy)
	assert.Zero(t, overview.Difficulty.Hard)
	assert.Equal(t, 15, overview.TotalTimeSpent)

	require.Len(t, overview.WeeklyProgress, 7)
	last := overview.WeeklyProgress[6]
	assert.Equal(t, stats.Today("UTC"), last.Date)
	assert.Equal(t, 1, last.Problems)

	// 本月完成2题
	current := overview.MonthlyGoals[2]
	assert.GreaterOrEqual(t, current.Completed, 1)
}

func TestOverviewTopicProgress(t *testing.T) {
	svc, db, userID := newAnalyticsService(t)

	require.NoError(t, db.Create(&model.Chapter{
		UserID: userID,
		Title:  "Arrays",
		Topics: []model.ChapterTopic{
			{Name: "Two Pointers", IsCompleted: true},
			{Name: "Sliding Window"},
		},
	}).Error)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, overview.TopicProgress, 1)
	assert.Equal(t, "Arrays", overview.TopicProgress[0].Topic)
	assert.Equal(t, 1, overview.TopicProgress[0].Solved)
	assert.Equal(t, 2, overview.TopicProgress[0].Total)
}

func TestOverviewChapterCounts(t *testing.T) {
	svc, db, userID := newAnalyticsService(t)

	require.NoError(t, db.Create(&model.Chapter{
		UserID: userID, Title: "Arrays", IsCompleted: true, Progress: 100,
	}).Error)
	require.NoError(t, db.Create(&model.Chapter{
		UserID: userID, Title: "Trees",
	}).Error)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.ChaptersCompleted)
	assert.Equal(t, 2, overview.TotalChapters)
}

func TestLastMonthsAtMonthEnd(t *testing.T) {
	// 3月31日回退：2月没有31号，裸AddDate会归一到3月
	now := time.Date(2025, time.March, 31, 15, 0, 0, 0, time.UTC)
	months := lastMonths(now, 3)
	require.Len(t, months, 3)
	assert.Equal(t, time.January, months[0].Month())
	assert.Equal(t, time.February, months[1].Month())
	assert.Equal(t, time.March, months[2].Month())

	// 普通日期行为不变
	months = lastMonths(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), 3)
	assert.Equal(t, time.April, months[0].Month())
	assert.Equal(t, time.June, months[2].Month())
}

func TestOverviewStreakFromSessions(t *testing.T) {
	svc, db, userID := newAnalyticsService(t)

	today := stats.Today("UTC")
	require.NoError(t, db.Create(&model.StudySession{
		UserID: userID, Date: today, Duration: 30, Difficulty: model.DifficultyMedium,
	}).Error)

	overview, err := svc.Overview(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.StreakDays)
}
