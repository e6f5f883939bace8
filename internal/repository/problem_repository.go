package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

// ProblemFilter 题目列表筛选条件
type ProblemFilter struct {
	Status     string
	Difficulty string
	Topic      string
	Search     string
	ChapterID  *uint
}

func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

func (r *ProblemRepository) Update(problem *model.Problem) error {
	return r.DB.Save(problem).Error
}

func (r *ProblemRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Problem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProblemRepository) FindByIDAndUserID(id, userID uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&problem).Error
	return &problem, err
}

func (r *ProblemRepository) FindByUserID(userID uint, filter ProblemFilter) ([]model.Problem, error) {
	query := r.DB.Where("user_id = ?", userID)
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Difficulty != "" && filter.Difficulty != "all" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.ChapterID != nil {
		query = query.Where("chapter_id = ?", *filter.ChapterID)
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var problems []model.Problem
	err := query.Order("created_at DESC").Find(&problems).Error
	return problems, err
}

// FindCompletedByUserID 获取用户所有已完成的题目
func (r *ProblemRepository) FindCompletedByUserID(userID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.ProblemCompleted).
		Find(&problems).Error
	return problems, err
}
