package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 处理学习目标的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Save(goal).Error
}

func (r *GoalRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}

// FindByUserID 按筛选条件获取用户目标，按创建时间倒序
func (r *GoalRepository) FindByUserID(userID uint, status, goalType string, chapterID *uint) ([]model.Goal, error) {
	query := r.DB.Where("user_id = ?", userID)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if goalType != "" && goalType != "all" {
		query = query.Where("type = ?", goalType)
	}
	if chapterID != nil {
		query = query.Where("chapter_id = ?", *chapterID)
	}

	var goals []model.Goal
	err := query.Order("created_at DESC").Find(&goals).Error
	return goals, err
}
