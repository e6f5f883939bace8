package repository

import (
	"dsa_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

func (r *ScheduleRepository) Create(entry *model.ScheduleEntry) error {
	return r.DB.Create(entry).Error
}

func (r *ScheduleRepository) Update(entry *model.ScheduleEntry) error {
	return r.DB.Save(entry).Error
}

func (r *ScheduleRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ScheduleEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleRepository) FindByIDAndUserID(id, userID uint) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	return &entry, err
}

// FindByUserID 获取某个日期范围内的日程，按日期升序
func (r *ScheduleRepository) FindByUserID(userID uint, from, to time.Time) ([]model.ScheduleEntry, error) {
	query := r.DB.Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	var entries []model.ScheduleEntry
	err := query.Order("date").Find(&entries).Error
	return entries, err
}
