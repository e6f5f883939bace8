package repository

import (
	"dsa_tracker_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PreferencesRepository struct {
	DB *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{DB: db}
}

// FindOrCreateByUserID 获取用户偏好，不存在时创建默认值
func (r *PreferencesRepository) FindOrCreateByUserID(userID uint) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	err := r.DB.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = model.UserPreferences{
			UserID:             userID,
			EmailEnabled:       true,
			DailyReminderTime:  "09:00",
			ProgressReportTime: "18:00",
			Timezone:           "UTC",
			WeeklyGoal:         5,
			LastLoginDate:      time.Now(),
			LastProgressUpdate: time.Now(),
		}
		if err := r.DB.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferencesRepository) Update(prefs *model.UserPreferences) error {
	return r.DB.Save(prefs).Error
}

// RefreshStreaks 用统计引擎的重算结果刷新冗余计数
func (r *PreferencesRepository) RefreshStreaks(userID uint, current, longest int) error {
	return r.DB.Model(&model.UserPreferences{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":       current,
			"longest_streak":       longest,
			"last_progress_update": time.Now(),
		}).Error
}

// FindAllWithEmailEnabled 获取所有开启邮件提醒的用户偏好
func (r *PreferencesRepository) FindAllWithEmailEnabled() ([]model.UserPreferences, error) {
	var prefs []model.UserPreferences
	err := r.DB.Where("email_enabled = ?", true).Find(&prefs).Error
	return prefs, err
}
