package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSumsAndUnions(t *testing.T) {
	base := &StudySession{
		Date:           "2025-06-10",
		Duration:       30,
		Topics:         []string{"arrays", "graphs"},
		Notes:          "morning session",
		ProblemsSolved: 2,
		Difficulty:     DifficultyEasy,
	}

	base.Merge(&StudySession{
		Duration:       45,
		Topics:         []string{"graphs", "dp"},
		Notes:          "evening session",
		ProblemsSolved: 3,
		Difficulty:     DifficultyHard,
	})

	assert.Equal(t, 75, base.Duration)
	assert.Equal(t, 5, base.ProblemsSolved)
	assert.Equal(t, []string{"arrays", "graphs", "dp"}, base.Topics)
	assert.Equal(t, "morning session\n\n---\n\nevening session", base.Notes)
	assert.Equal(t, DifficultyHard, base.Difficulty)
}

func TestMergeEmptyNotes(t *testing.T) {
	base := &StudySession{Duration: 10}
	base.Merge(&StudySession{Duration: 5, Notes: "only note"})
	assert.Equal(t, "only note", base.Notes)

	base2 := &StudySession{Duration: 10, Notes: "kept"}
	base2.Merge(&StudySession{Duration: 5})
	assert.Equal(t, "kept", base2.Notes)
}

func TestMergeKeepsDifficultyWhenIncomingEmpty(t *testing.T) {
	base := &StudySession{Difficulty: DifficultyMedium}
	base.Merge(&StudySession{})
	assert.Equal(t, DifficultyMedium, base.Difficulty)
}
