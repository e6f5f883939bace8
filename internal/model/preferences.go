package model

import "time"

// UserPreferences 用户偏好及冗余统计计数
// currentStreak/longestStreak 是派生缓存：每次学习记录写入后由统计引擎
// 重算刷新，展示接口可以直接读，但校验口径始终以重算结果为准
type UserPreferences struct {
	BaseModel
	UserID             uint      `gorm:"uniqueIndex;not null" json:"userId"`
	EmailEnabled       bool      `gorm:"default:true" json:"emailEnabled"`
	DailyReminderTime  string    `gorm:"size:5;default:'09:00'" json:"dailyReminderTime"`  // HH:MM
	ProgressReportTime string    `gorm:"size:5;default:'18:00'" json:"progressReportTime"` // HH:MM
	WeeklyReportDay    int       `gorm:"default:0" json:"weeklyReportDay"`                 // 0=周日
	Timezone           string    `gorm:"size:50;default:'UTC'" json:"timezone"`
	WeeklyGoal         int       `gorm:"default:5" json:"weeklyGoal"`
	LastLoginDate      time.Time `json:"lastLoginDate"`
	LastProgressUpdate time.Time `json:"lastProgressUpdate"`
	CurrentStreak      int       `gorm:"default:0" json:"currentStreak"`
	LongestStreak      int       `gorm:"default:0" json:"longestStreak"`
	TotalPoints        int       `gorm:"default:0" json:"totalPoints"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
