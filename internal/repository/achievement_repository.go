package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

// FindUnlocksByUserID 获取用户已持久化的解锁记录，按成就ID索引
func (r *AchievementRepository) FindUnlocksByUserID(userID uint) (map[int]model.AchievementUnlock, error) {
	var unlocks []model.AchievementUnlock
	if err := r.DB.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		return nil, err
	}

	out := make(map[int]model.AchievementUnlock, len(unlocks))
	for _, u := range unlocks {
		out[u.AchievementID] = u
	}
	return out, nil
}

// RecordUnlock 写入首次解锁记录；已存在时不更新，保持首次时间不变
func (r *AchievementRepository) RecordUnlock(unlock *model.AchievementUnlock) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(unlock).Error
}
