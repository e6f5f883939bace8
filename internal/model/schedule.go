package model

import "time"

// ScheduleEntry 学习日程，每用户每天唯一
type ScheduleEntry struct {
	BaseModel
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_schedule_date" json:"userId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_user_schedule_date" json:"date"`
	Tasks     []string  `gorm:"serializer:json;type:json" json:"tasks"`
	Completed bool      `gorm:"default:false" json:"completed"`
	Notes     string    `gorm:"size:500" json:"notes"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
