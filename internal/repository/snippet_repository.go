package repository

import (
	"dsa_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type SnippetRepository struct {
	DB *gorm.DB
}

func NewSnippetRepository(db *gorm.DB) *SnippetRepository {
	return &SnippetRepository{DB: db}
}

// SnippetFilter 代码片段筛选条件
type SnippetFilter struct {
	Language  string
	Topic     string
	ChapterID *uint
	Search    string
}

func (r *SnippetRepository) Create(snippet *model.CodeSnippet) error {
	return r.DB.Create(snippet).Error
}

func (r *SnippetRepository) Update(snippet *model.CodeSnippet) error {
	return r.DB.Save(snippet).Error
}

func (r *SnippetRepository) Delete(id, userID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.CodeSnippet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SnippetRepository) FindByIDAndUserID(id, userID uint) (*model.CodeSnippet, error) {
	var snippet model.CodeSnippet
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&snippet).Error
	return &snippet, err
}

func (r *SnippetRepository) FindByUserID(userID uint, filter SnippetFilter) ([]model.CodeSnippet, error) {
	query := r.DB.Where("user_id = ?", userID)
	if filter.Language != "" && filter.Language != "all" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Topic != "" && filter.Topic != "all" {
		query = query.Where("topic = ?", filter.Topic)
	}
	if filter.ChapterID != nil {
		query = query.Where("chapter_id = ?", *filter.ChapterID)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", term, term)
	}

	var snippets []model.CodeSnippet
	err := query.Order("created_at DESC").Find(&snippets).Error
	return snippets, err
}
