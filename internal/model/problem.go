package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type ProblemStatus string

const (
	ProblemNotStarted ProblemStatus = "Not Started"
	ProblemInProgress ProblemStatus = "In Progress"
	ProblemCompleted  ProblemStatus = "Completed"
)

// Problem 练习题目
// CompletedAt 在首次转为 Completed 时写入，之后不再变更
type Problem struct {
	BaseModel
	UserID      uint          `gorm:"index;not null" json:"userId"`
	Title       string        `gorm:"size:200;not null" json:"title"`
	Difficulty  Difficulty    `gorm:"size:10;index;not null" json:"difficulty"`
	Topics      []string      `gorm:"serializer:json;type:json" json:"topics"`
	ChapterID   *uint         `gorm:"index" json:"chapterId,omitempty"`
	Status      ProblemStatus `gorm:"size:20;index;default:'Not Started'" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes"`
	URL         string        `gorm:"size:500" json:"url"`
	TimeSpent   int           `gorm:"default:0" json:"timeSpent"` // 分钟
	Attachments []string      `gorm:"serializer:json;type:json" json:"attachments"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

func (Problem) TableName() string {
	return "problems"
}
