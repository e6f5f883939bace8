package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateInclusiveBounds(t *testing.T) {
	records := []ActivityRecord{
		{Date: "2025-06-01", DurationMinutes: 30, ProblemsSolved: 1},
		{Date: "2025-06-05", DurationMinutes: 60, ProblemsSolved: 2},
		{Date: "2025-06-07", DurationMinutes: 45, ProblemsSolved: 3},
		{Date: "2025-06-08", DurationMinutes: 90, ProblemsSolved: 4},
	}

	// 首末日都应计入
	w, err := Aggregate(records, "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	assert.Equal(t, 135, w.TotalDuration)
	assert.Equal(t, 6, w.TotalProblems)
	assert.Equal(t, 3, w.SessionCount)
}

func TestAggregateEmptyWindow(t *testing.T) {
	records := []ActivityRecord{
		{Date: "2025-06-01", DurationMinutes: 30},
	}

	w, err := Aggregate(records, "2025-07-01", "2025-07-31")
	require.NoError(t, err)
	assert.Zero(t, w.TotalDuration)
	assert.Zero(t, w.SessionCount)
}

func TestAggregateRejectsNegative(t *testing.T) {
	_, err := Aggregate([]ActivityRecord{{Date: "2025-06-01", DurationMinutes: -5}}, "2025-06-01", "2025-06-02")
	assert.ErrorIs(t, err, ErrNegativeDuration)

	_, err = Aggregate([]ActivityRecord{{Date: "2025-06-01", ProblemsSolved: -1}}, "2025-06-01", "2025-06-02")
	assert.ErrorIs(t, err, ErrNegativeProblems)
}

func TestSeriesZeroFilled(t *testing.T) {
	records := []ActivityRecord{
		{Date: "2025-06-08", DurationMinutes: 30, ProblemsSolved: 1},
		{Date: "2025-06-10", DurationMinutes: 60, ProblemsSolved: 2},
	}

	series, err := Series(records, 7, "2025-06-10")
	require.NoError(t, err)
	require.Len(t, series, 7)

	// 升序，缺失日补零
	assert.Equal(t, "2025-06-04", series[0].Date)
	assert.Equal(t, "2025-06-10", series[6].Date)
	assert.Zero(t, series[0].Duration)
	assert.Equal(t, 30, series[4].Duration)
	assert.Equal(t, 60, series[6].Duration)
	assert.Equal(t, 2, series[6].Problems)
}

func TestMonthlyCompleted(t *testing.T) {
	loc := time.UTC
	completedAt := []time.Time{
		time.Date(2025, 5, 31, 23, 59, 0, 0, loc),
		time.Date(2025, 6, 1, 0, 0, 0, 0, loc),
		time.Date(2025, 6, 15, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 30, 23, 59, 59, 0, loc),
		time.Date(2025, 7, 1, 0, 0, 0, 0, loc),
		{},
	}

	assert.Equal(t, 3, MonthlyCompleted(completedAt, 2025, time.June, loc))
	assert.Equal(t, 1, MonthlyCompleted(completedAt, 2025, time.May, loc))
	assert.Equal(t, 1, MonthlyCompleted(completedAt, 2025, time.July, loc))
}

func TestMonthlyCompletedTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// UTC 5月31日 20:00 = 东京 6月1日 05:00
	completedAt := []time.Time{time.Date(2025, 5, 31, 20, 0, 0, 0, time.UTC)}

	assert.Equal(t, 0, MonthlyCompleted(completedAt, 2025, time.June, time.UTC))
	assert.Equal(t, 1, MonthlyCompleted(completedAt, 2025, time.June, tokyo))
}
