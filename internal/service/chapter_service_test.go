package service

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChapterService(t *testing.T) (*ChapterService, uint) {
	t.Helper()

	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewChapterService(repository.NewChapterRepository(db), repository.NewPreferencesRepository(db))
	return svc, user.ID
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestChapterCreateDefaultsEstimatedDays(t *testing.T) {
	svc, userID := newChapterService(t)

	chapter, err := svc.Create(userID, ChapterRequest{Title: "Arrays"})
	require.NoError(t, err)
	assert.Equal(t, 7, chapter.EstimatedDays)
	assert.Zero(t, chapter.Progress)
}

func TestUpdateProgressRecalculates(t *testing.T) {
	svc, userID := newChapterService(t)

	chapter, err := svc.Create(userID, ChapterRequest{
		Title: "Trees",
		Topics: []model.ChapterTopic{
			{Name: "BFS", TotalProblems: 5},
			{Name: "DFS", TotalProblems: 5},
			{Name: "Tries", TotalProblems: 4},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(userID, chapter.ID, ChapterProgressRequest{
		TopicIndex:        intPtr(0),
		IsCompleted:       boolPtr(true),
		CompletedProblems: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 33, updated.Progress)
	assert.False(t, updated.IsCompleted)
	assert.NotNil(t, updated.StartedAt)
	assert.Nil(t, updated.CompletedAt)
	assert.Equal(t, 5, updated.Topics[0].CompletedProblems)
}

func TestUpdateProgressStampsCompletionOnce(t *testing.T) {
	svc, userID := newChapterService(t)

	chapter, err := svc.Create(userID, ChapterRequest{
		Title:  "Linked Lists",
		Topics: []model.ChapterTopic{{Name: "Singly", TotalProblems: 3}},
	})
	require.NoError(t, err)

	done, err := svc.UpdateProgress(userID, chapter.ID, ChapterProgressRequest{
		TopicIndex:  intPtr(0),
		IsCompleted: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, done.Progress)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)
	firstCompleted := *done.CompletedAt

	time.Sleep(10 * time.Millisecond)

	again, err := svc.UpdateProgress(userID, chapter.ID, ChapterProgressRequest{
		TopicIndex:  intPtr(0),
		IsCompleted: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, firstCompleted.Unix(), again.CompletedAt.Unix())
}

func TestUpdateProgressRejectsBadIndex(t *testing.T) {
	svc, userID := newChapterService(t)

	chapter, err := svc.Create(userID, ChapterRequest{
		Title:  "Graphs",
		Topics: []model.ChapterTopic{{Name: "BFS"}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(userID, chapter.ID, ChapterProgressRequest{
		TopicIndex: intPtr(5), IsCompleted: boolPtr(true),
	})
	assert.ErrorIs(t, err, util.ErrTopicIndexOutOfRange)

	_, err = svc.UpdateProgress(userID, chapter.ID, ChapterProgressRequest{
		TopicIndex: intPtr(-1), IsCompleted: boolPtr(true),
	})
	assert.ErrorIs(t, err, util.ErrTopicIndexOutOfRange)
}

func TestChapterOwnershipIsolated(t *testing.T) {
	svc, userID := newChapterService(t)

	chapter, err := svc.Create(userID, ChapterRequest{Title: "Arrays"})
	require.NoError(t, err)

	_, err = svc.Get(userID+1, chapter.ID)
	assert.Error(t, err)
}
