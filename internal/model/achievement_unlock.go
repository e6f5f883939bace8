package model

import "time"

// AchievementUnlock 成就的首次解锁记录
// 成就目录本身是静态配置（见 internal/stats），这里只持久化解锁时刻，
// 保证 unlockedAt 一次写入后不再变化
type AchievementUnlock struct {
	BaseModel
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"userId"`
	AchievementID int       `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (AchievementUnlock) TableName() string {
	return "achievement_unlocks"
}
