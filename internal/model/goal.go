package model

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

type GoalType string

const (
	GoalDaily   GoalType = "daily"
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalYearly  GoalType = "yearly"
)

// Goal 学习目标，当前值达到目标值后自动完成
type Goal struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Type        GoalType   `gorm:"size:20;default:'weekly'" json:"type"`
	Target      int        `gorm:"not null" json:"target"`
	Current     int        `gorm:"default:0" json:"current"`
	Unit        string     `gorm:"size:50;default:'problems'" json:"unit"`
	Deadline    time.Time  `json:"deadline"`
	Status      GoalStatus `gorm:"size:20;index;default:'active'" json:"status"`
	Priority    string     `gorm:"size:20;default:'medium'" json:"priority"`
	ChapterID   *uint      `gorm:"index" json:"chapterId,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
