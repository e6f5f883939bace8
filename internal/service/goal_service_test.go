package service

import (
	"testing"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalService(t *testing.T) (*GoalService, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)
	return NewGoalService(repository.NewGoalRepository(db)), user.ID
}

func TestGoalCreateDefaults(t *testing.T) {
	svc, userID := newGoalService(t)

	goal, err := svc.Create(userID, GoalRequest{
		Title: "Weekly grind", Target: 15, Deadline: "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, model.GoalWeekly, goal.Type)
	assert.Equal(t, model.GoalActive, goal.Status)
	assert.Equal(t, "problems", goal.Unit)
	assert.Equal(t, "medium", goal.Priority)
}

func TestGoalCreateRejectsBadDeadline(t *testing.T) {
	svc, userID := newGoalService(t)

	_, err := svc.Create(userID, GoalRequest{
		Title: "Bad", Target: 5, Deadline: "31/12/2025",
	})
	assert.Error(t, err)
}

func TestGoalAutoCompletesAtTarget(t *testing.T) {
	svc, userID := newGoalService(t)

	goal, err := svc.Create(userID, GoalRequest{
		Title: "Ten problems", Target: 10, Deadline: "2025-12-31",
	})
	require.NoError(t, err)
	require.Equal(t, model.GoalActive, goal.Status)

	goal, err = svc.UpdateProgress(userID, goal.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, model.GoalActive, goal.Status)

	goal, err = svc.UpdateProgress(userID, goal.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCompleted, goal.Status)
}

func TestGoalPausedDoesNotAutoComplete(t *testing.T) {
	svc, userID := newGoalService(t)

	goal, err := svc.Create(userID, GoalRequest{
		Title: "Paused", Target: 5, Deadline: "2025-12-31", Status: "active",
	})
	require.NoError(t, err)

	goal, err = svc.Update(userID, goal.ID, GoalRequest{
		Title: "Paused", Target: 5, Deadline: "2025-12-31", Status: "paused",
	})
	require.NoError(t, err)
	require.Equal(t, model.GoalPaused, goal.Status)

	goal, err = svc.UpdateProgress(userID, goal.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, model.GoalPaused, goal.Status)
}

func TestGoalListFilters(t *testing.T) {
	svc, userID := newGoalService(t)

	_, err := svc.Create(userID, GoalRequest{Title: "A", Target: 5, Deadline: "2025-12-31", Type: "daily"})
	require.NoError(t, err)
	_, err = svc.Create(userID, GoalRequest{Title: "B", Target: 5, Deadline: "2025-12-31", Type: "monthly"})
	require.NoError(t, err)

	daily, err := svc.List(userID, "", "daily", nil)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "A", daily[0].Title)

	all, err := svc.List(userID, "active", "", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
