package service

import (
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
)

type SnippetService struct {
	SnippetRepo *repository.SnippetRepository
}

func NewSnippetService(snippetRepo *repository.SnippetRepository) *SnippetService {
	return &SnippetService{SnippetRepo: snippetRepo}
}

type SnippetRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	Code        string   `json:"code" binding:"required"`
	Language    string   `json:"language" binding:"required,max=30"`
	ChapterID   *uint    `json:"chapterId"`
	Topic       string   `json:"topic" binding:"required,max=100"`
	Difficulty  string   `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Tags        []string `json:"tags"`
}

func (s *SnippetService) Create(userID uint, req SnippetRequest) (*model.CodeSnippet, error) {
	snippet := &model.CodeSnippet{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Language:    req.Language,
		ChapterID:   req.ChapterID,
		Topic:       req.Topic,
		Difficulty:  model.DifficultyMedium,
		Tags:        req.Tags,
	}
	if req.Difficulty != "" {
		snippet.Difficulty = model.Difficulty(req.Difficulty)
	}

	if err := s.SnippetRepo.Create(snippet); err != nil {
		return nil, err
	}
	return snippet, nil
}

func (s *SnippetService) Update(userID, id uint, req SnippetRequest) (*model.CodeSnippet, error) {
	snippet, err := s.SnippetRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	snippet.Title = req.Title
	snippet.Description = req.Description
	snippet.Code = req.Code
	snippet.Language = req.Language
	snippet.ChapterID = req.ChapterID
	snippet.Topic = req.Topic
	snippet.Tags = req.Tags
	if req.Difficulty != "" {
		snippet.Difficulty = model.Difficulty(req.Difficulty)
	}

	if err := s.SnippetRepo.Update(snippet); err != nil {
		return nil, err
	}
	return snippet, nil
}

func (s *SnippetService) Delete(userID, id uint) error {
	return s.SnippetRepo.Delete(id, userID)
}

func (s *SnippetService) Get(userID, id uint) (*model.CodeSnippet, error) {
	return s.SnippetRepo.FindByIDAndUserID(id, userID)
}

func (s *SnippetService) List(userID uint, filter repository.SnippetFilter) ([]model.CodeSnippet, error) {
	return s.SnippetRepo.FindByUserID(userID, filter)
}
