package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) Update(session *model.StudySession) error {
	return r.DB.Save(session).Error
}

func (r *StudySessionRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.StudySession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StudySessionRepository) FindByIDAndUserID(id, userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

// FindByUserAndDate 查找用户某一天的学习记录，同日合并写入前用
func (r *StudySessionRepository) FindByUserAndDate(userID uint, date string) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("user_id = ? AND date = ?", userID, date).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByUserID 按日期范围获取学习记录，日期倒序
func (r *StudySessionRepository) FindByUserID(userID uint, startDate, endDate string, limit int) ([]model.StudySession, error) {
	query := r.DB.Where("user_id = ?", userID)
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []model.StudySession
	err := query.Order("date DESC, created_at DESC").Find(&sessions).Error
	return sessions, err
}

// FindAllByUserID 获取用户全部学习记录，统计引擎的输入
func (r *StudySessionRepository) FindAllByUserID(userID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}
