package service

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProblemService(t *testing.T) (*ProblemService, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)
	return NewProblemService(repository.NewProblemRepository(db)), user.ID
}

func TestProblemCreateDefaultsToNotStarted(t *testing.T) {
	svc, userID := newProblemService(t)

	problem, err := svc.Create(userID, ProblemRequest{Title: "Two Sum", Difficulty: "Easy"})
	require.NoError(t, err)
	assert.Equal(t, model.ProblemNotStarted, problem.Status)
	assert.Nil(t, problem.CompletedAt)
}

func TestProblemCompletedAtStampedOnce(t *testing.T) {
	svc, userID := newProblemService(t)

	problem, err := svc.Create(userID, ProblemRequest{Title: "Two Sum", Difficulty: "Easy"})
	require.NoError(t, err)

	done, err := svc.Update(userID, problem.ID, ProblemRequest{
		Title: "Two Sum", Difficulty: "Easy", Status: "Completed",
	})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	time.Sleep(10 * time.Millisecond)

	again, err := svc.Update(userID, problem.ID, ProblemRequest{
		Title: "Two Sum", Difficulty: "Easy", Status: "Completed", Notes: "revisited",
	})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, first.Unix(), again.CompletedAt.Unix())
}

func TestProblemCreateCompletedStampsImmediately(t *testing.T) {
	svc, userID := newProblemService(t)

	problem, err := svc.Create(userID, ProblemRequest{
		Title: "Two Sum", Difficulty: "Easy", Status: "Completed",
	})
	require.NoError(t, err)
	assert.NotNil(t, problem.CompletedAt)
}

func TestProblemListFilters(t *testing.T) {
	svc, userID := newProblemService(t)

	_, err := svc.Create(userID, ProblemRequest{Title: "Two Sum", Difficulty: "Easy", Status: "Completed", Topics: []string{"arrays"}})
	require.NoError(t, err)
	_, err = svc.Create(userID, ProblemRequest{Title: "LRU Cache", Difficulty: "Hard", Topics: []string{"design"}})
	require.NoError(t, err)

	hard, err := svc.List(userID, repository.ProblemFilter{Difficulty: "Hard"})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "LRU Cache", hard[0].Title)

	completed, err := svc.List(userID, repository.ProblemFilter{Status: "Completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Two Sum", completed[0].Title)
}

func TestProblemAddAttachment(t *testing.T) {
	svc, userID := newProblemService(t)

	problem, err := svc.Create(userID, ProblemRequest{Title: "Two Sum", Difficulty: "Easy"})
	require.NoError(t, err)

	updated, err := svc.AddAttachment(userID, problem.ID, "/uploads/attachments/1/a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/attachments/1/a.png"}, updated.Attachments)
}

func TestProblemDeleteNotFound(t *testing.T) {
	svc, userID := newProblemService(t)

	err := svc.Delete(userID, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
