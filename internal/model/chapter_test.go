package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalcProgressRounding(t *testing.T) {
	now := time.Now()

	c := &Chapter{Topics: []ChapterTopic{
		{IsCompleted: true},
		{IsCompleted: false},
		{IsCompleted: false},
	}}
	c.RecalcProgress(now)
	assert.Equal(t, 33, c.Progress)

	c.Topics[1].IsCompleted = true
	c.RecalcProgress(now)
	assert.Equal(t, 67, c.Progress)
	assert.False(t, c.IsCompleted)
}

func TestRecalcProgressNoTopics(t *testing.T) {
	c := &Chapter{}
	c.RecalcProgress(time.Now())
	assert.Zero(t, c.Progress)
	assert.Nil(t, c.CompletedAt)
}

func TestRecalcProgressStampsCompletionOnce(t *testing.T) {
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)

	c := &Chapter{Topics: []ChapterTopic{{IsCompleted: true}}}
	c.RecalcProgress(first)

	require.True(t, c.IsCompleted)
	require.NotNil(t, c.CompletedAt)
	assert.Equal(t, first, *c.CompletedAt)

	// 再次重算不覆盖首次完成时间
	c.RecalcProgress(later)
	assert.Equal(t, first, *c.CompletedAt)
}
