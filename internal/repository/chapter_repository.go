package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}

func (r *ChapterRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Chapter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ChapterRepository) FindByIDAndUserID(id, userID uint) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&chapter).Error
	return &chapter, err
}

func (r *ChapterRepository) FindByUserID(userID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("user_id = ?", userID).Order("sort_order").Find(&chapters).Error
	return chapters, err
}
